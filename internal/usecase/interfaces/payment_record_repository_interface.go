package interfaces

import (
	"context"

	"patisserie_marketplace/internal/domain/entities"
)

//go:generate mockgen -source=payment_record_repository_interface.go -destination=mocks/payment_record_repository_mock.go -package=mock_interfaces

// IPaymentRecordRepository keeps one capture record per reconciled payment.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
}
