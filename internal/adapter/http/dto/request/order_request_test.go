package request

import (
	"testing"

	"patisserie_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequest_Validate(t *testing.T) {
	deposit := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name string
		req  QuoteRequest
		want error
	}{
		{"valid without deposit", QuoteRequest{Total: decimal.RequireFromString("80")}, nil},
		{"valid with deposit", QuoteRequest{Total: decimal.RequireFromString("80"), Deposit: deposit("20")}, nil},
		{"zero total", QuoteRequest{Total: decimal.Zero}, ErrInvalidQuoteTotal},
		{"negative total", QuoteRequest{Total: decimal.RequireFromString("-1")}, ErrInvalidQuoteTotal},
		{"deposit above total", QuoteRequest{Total: decimal.RequireFromString("80"), Deposit: deposit("81")}, ErrInvalidQuoteDeposit},
		{"negative deposit", QuoteRequest{Total: decimal.RequireFromString("80"), Deposit: deposit("-5")}, ErrInvalidQuoteDeposit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.req.Validate(), tt.want)
		})
	}
}

func TestQuoteRequest_ToUseCaseRounds(t *testing.T) {
	d := decimal.RequireFromString("20.005")
	in := QuoteRequest{Total: decimal.RequireFromString("80.456"), Deposit: &d}.ToUseCase()
	assert.Equal(t, "80.46", in.Total.StringFixed(2))
	require.NotNil(t, in.Deposit)
	assert.Equal(t, "20.01", in.Deposit.StringFixed(2))
}

func TestRefuseRequest(t *testing.T) {
	t.Run("client refusal needs the customer email", func(t *testing.T) {
		assert.ErrorIs(t, RefuseRequest{RefusedBy: "client"}.Validate(), ErrMissingRefuseEmail)
	})

	t.Run("client actor is the email", func(t *testing.T) {
		in := RefuseRequest{RefusedBy: "client", CustomerEmail: "a@b.fr", Reason: " trop cher "}.ToUseCase("prof-1")
		assert.Equal(t, entities.RefusedByClient, in.By)
		assert.Equal(t, "a@b.fr", in.ActorID)
		assert.Equal(t, "trop cher", in.Reason)
	})

	t.Run("pastry chef actor is the profile", func(t *testing.T) {
		req := RefuseRequest{RefusedBy: "pastry_chef"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "prof-1", req.ToUseCase("prof-1").ActorID)
	})
}

func TestCheckoutRequest_ToUseCase(t *testing.T) {
	total := decimal.RequireFromString("42")
	req := CheckoutRequest{
		CustomerFields: CustomerFields{CustomerName: " Alice ", CustomerEmail: "alice@example.com", PickupDate: "2030-01-02"},
		ProductID:      " prod-1 ",
		Provider:       "paypal",
		Answers:        map[string]any{"f-size": "12 parts"},
		ClientTotal:    &total,
	}
	out := req.ToUseCase("chez-lou")
	assert.Equal(t, "chez-lou", out.ShopSlug)
	assert.Equal(t, "prod-1", out.ProductID)
	assert.Equal(t, "Alice", out.CustomerName)
	assert.Equal(t, entities.PaymentProviderPayPal, out.Provider)
	assert.Equal(t, &total, out.ClientTotal)
}
