package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultPayoutDay  = 5
	payoutPeriodFmt   = "2006-01"
	payoutLockTimeout = 15 * time.Minute
)

const (
	PayoutSkipNotPayoutDay   = "not_payout_day"
	PayoutSkipAlreadyRunning = "already_running"
	PayoutSkipNoTransfers    = "transfers_not_configured"
	ReferrerSkipNotOnboarded = "stripe_not_onboarded"
	ReferrerSkipNothingDue   = "nothing_eligible"
)

// PayoutConfig tunes the payout job.
type PayoutConfig struct {
	Day      int
	Currency string
}

// ReferrerPayout is the outcome for one referrer. Skipped is set when no
// transfer was attempted.
type ReferrerPayout struct {
	ReferrerID    string          `json:"referrer_id"`
	Amount        decimal.Decimal `json:"amount"`
	AmountMinor   int64           `json:"amount_minor"`
	TransferID    string          `json:"transfer_id,omitempty"`
	CommissionIDs []string        `json:"commission_ids,omitempty"`
	MarkedPaid    int             `json:"marked_paid"`
	Skipped       string          `json:"skipped,omitempty"`
}

type ReferrerFailure struct {
	ReferrerID string `json:"referrer_id"`
	Error      string `json:"error"`
}

type PayoutReport struct {
	Skipped   bool              `json:"skipped"`
	Reason    string            `json:"reason,omitempty"`
	Period    string            `json:"period,omitempty"`
	Referrers []ReferrerPayout  `json:"referrers"`
	Failures  []ReferrerFailure `json:"failures"`
}

// IAffiliatePayoutUseCase pays last month's affiliate commissions once per month.
type IAffiliatePayoutUseCase interface {
	Run(ctx context.Context, now time.Time, force bool) (PayoutReport, error)
}

type AffiliatePayoutUseCase struct {
	commissions interfaces.ICommissionRepository
	payouts     interfaces.IPayoutRepository
	catalog     interfaces.ICatalogRepository
	transfers   interfaces.ITransferGateway
	lock        interfaces.IRunLock
	notifier    interfaces.INotifier
	audit       interfaces.IAuditLogger
	cfg         PayoutConfig
	logger      *zap.Logger
}

var _ IAffiliatePayoutUseCase = (*AffiliatePayoutUseCase)(nil)

// NewAffiliatePayoutUseCase builds the job. lock, notifier and audit may be nil.
func NewAffiliatePayoutUseCase(
	commissions interfaces.ICommissionRepository,
	payouts interfaces.IPayoutRepository,
	catalog interfaces.ICatalogRepository,
	transfers interfaces.ITransferGateway,
	lock interfaces.IRunLock,
	notifier interfaces.INotifier,
	audit interfaces.IAuditLogger,
	cfg PayoutConfig,
	logger *zap.Logger,
) *AffiliatePayoutUseCase {
	if cfg.Day < 1 || cfg.Day > 28 {
		cfg.Day = DefaultPayoutDay
	}
	if cfg.Currency == "" {
		cfg.Currency = "eur"
	}
	return &AffiliatePayoutUseCase{
		commissions: commissions,
		payouts:     payouts,
		catalog:     catalog,
		transfers:   transfers,
		lock:        lock,
		notifier:    notifier,
		audit:       audit,
		cfg:         cfg,
		logger:      logger,
	}
}

// PayoutIdempotencyKey is the provider idempotency key, also used as ledger id.
func PayoutIdempotencyKey(referrerID, period string) string {
	return fmt.Sprintf("affiliate_payout_%s_%s", referrerID, period)
}

func (u *AffiliatePayoutUseCase) Run(ctx context.Context, now time.Time, force bool) (PayoutReport, error) {
	local := now.In(businessLocation)
	if !force && local.Day() != u.cfg.Day {
		u.logger.Info("[payout][usecase] not payout day", zap.Int("day", local.Day()), zap.Int("payout_day", u.cfg.Day))
		return PayoutReport{Skipped: true, Reason: PayoutSkipNotPayoutDay}, nil
	}

	to := monthStart(local)
	from := to.AddDate(0, -1, 0)
	period := from.Format(payoutPeriodFmt)
	report := PayoutReport{Period: period, Referrers: []ReferrerPayout{}, Failures: []ReferrerFailure{}}
	log := u.logger.With(zap.String("period", period))

	if u.transfers == nil {
		log.Warn("[payout][usecase] no transfer gateway configured")
		report.Skipped, report.Reason = true, PayoutSkipNoTransfers
		return report, nil
	}

	if u.lock != nil {
		key := "affiliate_payout:" + period
		acquired, err := u.lock.Acquire(ctx, key, payoutLockTimeout)
		switch {
		case err != nil:
			log.Warn("[payout][usecase] run lock unavailable, continuing", zap.Error(err))
		case !acquired:
			log.Info("[payout][usecase] another run holds the lock")
			report.Skipped, report.Reason = true, PayoutSkipAlreadyRunning
			return report, nil
		default:
			defer func() {
				if err := u.lock.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Warn("[payout][usecase] run lock release failed", zap.Error(err))
				}
			}()
		}
	}

	commissions, err := u.commissions.ListEligible(ctx, from.UTC(), to.UTC())
	if err != nil {
		return report, fmt.Errorf("list eligible commissions: %w", err)
	}

	groups := groupByReferrer(commissions)
	referrers := make([]string, 0, len(groups))
	for id := range groups {
		referrers = append(referrers, id)
	}
	sort.Strings(referrers)
	log.Info("[payout][usecase] start", zap.Int("commissions", len(commissions)), zap.Int("referrers", len(referrers)))

	for _, referrerID := range referrers {
		result, err := u.payReferrer(ctx, referrerID, period, groups[referrerID], now.UTC())
		if err != nil {
			log.Error("[payout][usecase] referrer payout failed", zap.String("referrer_id", referrerID), zap.Error(err))
			report.Failures = append(report.Failures, ReferrerFailure{ReferrerID: referrerID, Error: err.Error()})
			continue
		}
		report.Referrers = append(report.Referrers, result)
	}

	log.Info("[payout][usecase] done", zap.Int("paid", len(report.Referrers)), zap.Int("failed", len(report.Failures)))
	return report, nil
}

func (u *AffiliatePayoutUseCase) payReferrer(ctx context.Context, referrerID, period string, group []entities.AffiliateCommission, now time.Time) (ReferrerPayout, error) {
	result := ReferrerPayout{ReferrerID: referrerID}

	ids := make([]string, 0, len(group))
	for _, c := range group {
		ids = append(ids, c.ID)
	}
	// Re-read: a concurrent run may have settled some rows since the listing.
	rechecked, err := u.commissions.ListEligibleByIDs(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("recheck eligibility: %w", err)
	}

	var eligible []entities.AffiliateCommission
	for _, c := range rechecked {
		if c.IsEligibleForPayout() && c.ReferrerProfileID == referrerID {
			eligible = append(eligible, c)
			result.Amount = result.Amount.Add(c.CommissionAmount)
			result.CommissionIDs = append(result.CommissionIDs, c.ID)
		}
	}
	result.AmountMinor = entities.ToMinorUnits(result.Amount)
	if len(eligible) == 0 || result.AmountMinor <= 0 {
		result.Skipped = ReferrerSkipNothingDue
		return result, nil
	}

	referrer, err := u.catalog.GetProfile(ctx, referrerID)
	if err != nil {
		return result, fmt.Errorf("load referrer: %w", err)
	}
	if referrer.StripeAccountID == "" || !referrer.StripeOnboarded {
		u.logger.Info("[payout][usecase] referrer has no onboarded stripe account", zap.String("referrer_id", referrerID))
		result.Skipped = ReferrerSkipNotOnboarded
		return result, nil
	}

	key := PayoutIdempotencyKey(referrerID, period)
	transfer, err := u.transfers.CreateTransfer(ctx, interfaces.TransferRequest{
		DestinationAccount: referrer.StripeAccountID,
		AmountMinor:        result.AmountMinor,
		Currency:           u.cfg.Currency,
		IdempotencyKey:     key,
		Description:        fmt.Sprintf("Affiliate commissions %s", period),
		Metadata: map[string]string{
			"referrer_id": referrerID,
			"period":      period,
			"commissions": fmt.Sprint(len(eligible)),
		},
	})
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	result.TransferID = transfer.ID

	for _, c := range eligible {
		ok, err := u.commissions.MarkPaid(ctx, c.ID, transfer.ID, now)
		if err != nil {
			u.logger.Error("[payout][usecase] mark paid failed", zap.String("commission_id", c.ID), zap.String("transfer_id", transfer.ID), zap.Error(err))
			continue
		}
		if !ok {
			u.logger.Warn("[payout][usecase] commission already settled", zap.String("commission_id", c.ID))
			continue
		}
		result.MarkedPaid++
	}

	payout := entities.AffiliatePayout{
		ID:                key,
		ReferrerProfileID: referrerID,
		Period:            period,
		Amount:            result.Amount,
		AmountMinor:       result.AmountMinor,
		StripeTransferID:  transfer.ID,
		CommissionIDs:     result.CommissionIDs,
		CreatedAt:         now,
	}
	if _, err := u.payouts.Create(ctx, payout); err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			u.logger.Info("[payout][usecase] ledger entry already recorded", zap.String("payout_id", key))
		} else {
			u.logger.Error("[payout][usecase] ledger write failed", zap.String("payout_id", key), zap.Error(err))
		}
	}

	if u.audit != nil {
		err := u.audit.Record(ctx, entities.AuditEntry{
			Service:  "affiliate_payouts",
			Action:   "payout.transferred",
			EntityID: key,
			Data: map[string]any{
				"transfer_id":  transfer.ID,
				"amount_minor": result.AmountMinor,
				"commissions":  result.CommissionIDs,
			},
			CreatedAt: now,
		})
		if err != nil {
			u.logger.Warn("[payout][usecase] audit failed", zap.String("payout_id", key), zap.Error(err))
		}
	}
	if u.notifier != nil {
		if err := u.notifier.PayoutSent(ctx, referrer, payout); err != nil {
			u.logger.Warn("[payout][usecase] payout email failed", zap.String("referrer_id", referrerID), zap.Error(err))
		}
	}

	u.logger.Info("[payout][usecase] referrer paid",
		zap.String("referrer_id", referrerID), zap.String("transfer_id", transfer.ID),
		zap.Int64("amount_minor", result.AmountMinor), zap.Int("marked_paid", result.MarkedPaid))
	return result, nil
}

func groupByReferrer(commissions []entities.AffiliateCommission) map[string][]entities.AffiliateCommission {
	groups := make(map[string][]entities.AffiliateCommission)
	for _, c := range commissions {
		if c.ReferrerProfileID == "" || !c.IsEligibleForPayout() {
			continue
		}
		groups[c.ReferrerProfileID] = append(groups[c.ReferrerProfileID], c)
	}
	return groups
}
