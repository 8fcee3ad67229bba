package usecase

import (
	"context"
	"fmt"
	"strings"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultDepositPercent is the share of the total collected up front.
const DefaultDepositPercent = 50

var priceTolerance = decimal.RequireFromString("0.01")

// PriceInput is the pricing request for a product or custom form.
//
// Answers is keyed by form field id. ClientTotal is only used to log
// discrepancies; the server value always wins.
type PriceInput struct {
	BasePrice   decimal.Decimal
	FormID      string
	Answers     map[string]any
	ClientTotal *decimal.Decimal
}

type PriceQuote struct {
	Total   decimal.Decimal
	Deposit decimal.Decimal
	Fields  []entities.FormField
}

// IPricingUseCase recomputes order prices from authoritative field definitions.
type IPricingUseCase interface {
	Resolve(ctx context.Context, in PriceInput) (PriceQuote, error)
	Deposit(total decimal.Decimal) decimal.Decimal
}

type PricingUseCase struct {
	catalog        interfaces.ICatalogRepository
	depositPercent decimal.Decimal
	logger         *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.ICatalogRepository, depositPercent int, logger *zap.Logger) *PricingUseCase {
	if depositPercent <= 0 || depositPercent > 100 {
		depositPercent = DefaultDepositPercent
	}
	return &PricingUseCase{
		catalog:        catalog,
		depositPercent: decimal.NewFromInt(int64(depositPercent)),
		logger:         logger,
	}
}

// Resolve returns base price plus the price of every matched option.
//
// Unknown field ids and option labels are ignored rather than rejected.
func (u *PricingUseCase) Resolve(ctx context.Context, in PriceInput) (PriceQuote, error) {
	total := in.BasePrice
	var fields []entities.FormField

	if in.FormID != "" && len(in.Answers) > 0 {
		var err error
		fields, err = u.catalog.GetFormFields(ctx, in.FormID)
		if err != nil {
			return PriceQuote{}, fmt.Errorf("load form fields: %w", err)
		}
		total = total.Add(optionsTotal(fields, in.Answers))
	}
	total = total.Round(2)

	if in.ClientTotal != nil && in.ClientTotal.Sub(total).Abs().GreaterThan(priceTolerance) {
		u.logger.Warn("[pricing][usecase] client total differs from server total",
			zap.String("form_id", in.FormID),
			zap.String("client_total", in.ClientTotal.StringFixed(2)),
			zap.String("server_total", total.StringFixed(2)))
	}

	return PriceQuote{Total: total, Deposit: u.Deposit(total), Fields: fields}, nil
}

func (u *PricingUseCase) Deposit(total decimal.Decimal) decimal.Decimal {
	return total.Mul(u.depositPercent).Div(decimal.NewFromInt(100)).Round(2)
}

func optionsTotal(fields []entities.FormField, answers map[string]any) decimal.Decimal {
	sum := decimal.Zero
	for _, f := range fields {
		answer, ok := answers[f.ID]
		if !ok {
			continue
		}
		switch f.Type {
		case entities.FieldTypeSingleSelect:
			if v, ok := answer.(string); ok {
				if opt, found := findOption(f.Options, v); found {
					sum = sum.Add(opt.Price)
				}
			}
		case entities.FieldTypeMultiSelect:
			for _, v := range answerValues(answer) {
				if opt, found := findOption(f.Options, v); found {
					sum = sum.Add(opt.Price)
				}
			}
		}
	}
	return sum
}

func findOption(options []entities.CustomizationOption, label string) (entities.CustomizationOption, bool) {
	label = strings.TrimSpace(label)
	for _, o := range options {
		if o.Label == label {
			return o, true
		}
	}
	return entities.CustomizationOption{}, false
}

// answerValues flattens a multi-select answer decoded from JSON.
func answerValues(answer any) []string {
	switch v := answer.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// TranslateCustomization re-keys answers by field label for the durable order.
// Answers whose field id is unknown are dropped.
func TranslateCustomization(fields []entities.FormField, answers map[string]any) map[string]any {
	if len(answers) == 0 {
		return nil
	}
	out := make(map[string]any, len(answers))
	for _, f := range fields {
		if v, ok := answers[f.ID]; ok {
			out[f.Label] = v
		}
	}
	return out
}
