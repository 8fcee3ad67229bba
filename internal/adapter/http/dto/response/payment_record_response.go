package response

import (
	"time"

	"patisserie_marketplace/internal/domain/entities"
)

type PaymentRecordResponse struct {
	PaymentID         string    `json:"payment_id"`
	OrderID           string    `json:"order_id"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	Amount            string    `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:          p.ID,
		OrderID:            p.OrderID,
		Provider:           string(p.Provider),
		ProviderPaymentID:  p.ProviderPaymentID,
		Amount:             p.Amount.StringFixed(2),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

// FromPaymentRecords keeps the repository order, newest first.
func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}
