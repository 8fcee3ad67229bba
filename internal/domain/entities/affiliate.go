package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)

// AffiliateCommission is earned by a referrer for each payment made by a
// referred merchant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-created_at-index: status / created_at (payout eligibility)
//
// A commission is promoted to paid and stamped with a transfer id exactly once;
// the conditional update on (status = pending AND no transfer id) is the guard.
type AffiliateCommission struct {
	ID                string           `json:"id"`
	ReferrerProfileID string           `json:"referrer_profile_id"`
	ReferredProfileID string           `json:"referred_profile_id"`
	CommissionAmount  decimal.Decimal  `json:"commission_amount"`
	Status            CommissionStatus `json:"status"`
	StripeTransferID  string           `json:"stripe_transfer_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
}

// IsEligibleForPayout mirrors the storage-side eligibility filter.
func (c AffiliateCommission) IsEligibleForPayout() bool {
	return c.Status == CommissionStatusPending && c.StripeTransferID == ""
}

// AffiliatePayout is the ledger entry written once per referrer and period.
type AffiliatePayout struct {
	ID                string          `json:"id"`
	ReferrerProfileID string          `json:"referrer_profile_id"`
	Period            string          `json:"period"`
	Amount            decimal.Decimal `json:"amount"`
	AmountMinor       int64           `json:"amount_minor"`
	StripeTransferID  string          `json:"stripe_transfer_id"`
	CommissionIDs     []string        `json:"commission_ids"`
	CreatedAt         time.Time       `json:"created_at"`
}
