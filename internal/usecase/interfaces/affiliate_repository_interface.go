package interfaces

import (
	"context"
	"time"

	"patisserie_marketplace/internal/domain/entities"
)

//go:generate mockgen -source=affiliate_repository_interface.go -destination=mocks/affiliate_repository_mock.go -package=mock_interfaces

// ICommissionRepository reads and settles affiliate commissions.
//
// "Eligible" always means status = pending AND no transfer id.
// MarkPaid returns false when the row was no longer eligible.
type ICommissionRepository interface {
	ListEligible(ctx context.Context, from time.Time, to time.Time) ([]entities.AffiliateCommission, error)
	ListEligibleByIDs(ctx context.Context, ids []string) ([]entities.AffiliateCommission, error)
	MarkPaid(ctx context.Context, id string, transferID string, paidAt time.Time) (bool, error)
}

// IPayoutRepository is the payout ledger. Create rejects a second entry for the
// same referrer and period with ErrAlreadyExists.
type IPayoutRepository interface {
	Create(ctx context.Context, p entities.AffiliatePayout) (entities.AffiliatePayout, error)
}
