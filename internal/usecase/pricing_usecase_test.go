package usecase

import (
	"context"
	"errors"
	"testing"

	"patisserie_marketplace/internal/domain/entities"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cakeFormFields() []entities.FormField {
	return []entities.FormField{
		{ID: "f-size", FormID: "form-1", Label: "Taille", Type: entities.FieldTypeSingleSelect, Options: []entities.CustomizationOption{
			{Label: "6 parts", Price: dec("0")},
			{Label: "12 parts", Price: dec("15.50")},
		}},
		{ID: "f-toppings", FormID: "form-1", Label: "Décorations", Type: entities.FieldTypeMultiSelect, Options: []entities.CustomizationOption{
			{Label: "Fruits rouges", Price: dec("4")},
			{Label: "Macarons", Price: dec("6.25")},
		}},
		{ID: "f-text", FormID: "form-1", Label: "Message", Type: entities.FieldTypeShortText},
	}
}

func TestPricingUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		answers     map[string]any
		clientTotal *decimal.Decimal
		wantTotal   string
		wantDeposit string
	}{
		{name: "no answers", answers: nil, wantTotal: "30", wantDeposit: "15"},
		{name: "single select", answers: map[string]any{"f-size": "12 parts"}, wantTotal: "45.5", wantDeposit: "22.75"},
		{name: "multi select from json", answers: map[string]any{"f-toppings": []any{"Fruits rouges", "Macarons"}}, wantTotal: "40.25", wantDeposit: "20.13"},
		{name: "text adds nothing", answers: map[string]any{"f-text": "Joyeux anniversaire"}, wantTotal: "30", wantDeposit: "15"},
		{name: "unknown field and option ignored", answers: map[string]any{"f-ghost": "x", "f-size": "24 parts"}, wantTotal: "30", wantDeposit: "15"},
		{
			name:        "client total is ignored",
			answers:     map[string]any{"f-size": "12 parts", "f-toppings": []string{"Macarons"}},
			clientTotal: decimalPtr(dec("1.00")),
			wantTotal:   "51.75",
			wantDeposit: "25.88",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
			if len(tt.answers) > 0 {
				catalog.EXPECT().GetFormFields(gomock.Any(), "form-1").Return(cakeFormFields(), nil)
			}
			uc := NewPricingUseCase(catalog, DefaultDepositPercent, zap.NewNop())

			quote, err := uc.Resolve(context.Background(), PriceInput{
				BasePrice:   dec("30"),
				FormID:      "form-1",
				Answers:     tt.answers,
				ClientTotal: tt.clientTotal,
			})
			require.NoError(t, err)
			assert.True(t, quote.Total.Equal(dec(tt.wantTotal)), "total = %s", quote.Total)
			assert.True(t, quote.Deposit.Equal(dec(tt.wantDeposit)), "deposit = %s", quote.Deposit)
		})
	}
}

func TestPricingUseCase_ResolveFormError(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	catalog.EXPECT().GetFormFields(gomock.Any(), "form-1").Return(nil, errors.New("db down"))
	uc := NewPricingUseCase(catalog, DefaultDepositPercent, zap.NewNop())

	_, err := uc.Resolve(context.Background(), PriceInput{BasePrice: dec("10"), FormID: "form-1", Answers: map[string]any{"f-size": "12 parts"}})
	require.Error(t, err)
}

func TestPricingUseCase_DepositPercent(t *testing.T) {
	assert.True(t, NewPricingUseCase(nil, 30, zap.NewNop()).Deposit(dec("99.99")).Equal(dec("30")))
	assert.True(t, NewPricingUseCase(nil, 0, zap.NewNop()).Deposit(dec("10")).Equal(dec("5")), "invalid percent falls back to default")
}

func TestTranslateCustomization(t *testing.T) {
	out := TranslateCustomization(cakeFormFields(), map[string]any{
		"f-size":  "12 parts",
		"f-text":  "Bravo",
		"f-ghost": "dropped",
	})
	assert.Equal(t, map[string]any{"Taille": "12 parts", "Message": "Bravo"}, out)
	assert.Nil(t, TranslateCustomization(cakeFormFields(), nil))
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
