package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"patisserie_marketplace/internal/adapter/http/handlers/mocks"
	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const validCheckoutBody = `{
	"product_id": "prod-1",
	"provider": "paypal",
	"customer_name": "Alice",
	"customer_email": "alice@example.com",
	"pickup_date": "2030-05-01",
	"pickup_time": "10:30",
	"customization_answers": {"f-size": "12 parts"},
	"client_total": "1.00"
}`

func newCheckoutRouter(uc *mocks.MockICheckoutUseCase) *gin.Engine {
	h := NewCheckoutHandler(uc, zap.NewNop())
	r := gin.New()
	r.POST("/v1/shops/:shop/checkout", h.StartCheckout)
	r.POST("/v1/orders/:order_id/pay", h.PayQuote)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCheckoutHandler_StartCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		w := postJSON(r, "/v1/shops/chez-lou/checkout", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation lists the offending fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		body := strings.Replace(validCheckoutBody, `"alice@example.com"`, `"not-an-email"`, 1)
		body = strings.Replace(body, `"paypal"`, `"bitcoin"`, 1)
		w := postJSON(r, "/v1/shops/chez-lou/checkout", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		got := decodeError(t, w)
		if got.Code != "INVALID_ORDER_INPUT" {
			t.Fatalf("unexpected code: %s", got.Code)
		}
		if !strings.Contains(got.Message, "customer_email (email)") || !strings.Contains(got.Message, "provider (oneof)") {
			t.Fatalf("unexpected message: %s", got.Message)
		}
	})

	t.Run("malformed pickup date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		body := strings.Replace(validCheckoutBody, `"2030-05-01"`, `"01/05/2030"`, 1)
		w := postJSON(r, "/v1/shops/chez-lou/checkout", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes slug and answers to the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.CheckoutRequest) (usecase.CheckoutResult, error) {
			if req.ShopSlug != "chez-lou" || req.ProductID != "prod-1" || req.Provider != entities.PaymentProviderPayPal {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.Answers["f-size"] != "12 parts" {
				t.Fatalf("answers not forwarded: %+v", req.Answers)
			}
			return usecase.CheckoutResult{
				PendingOrderID:  "pend-1",
				ProviderOrderID: "PP-1",
				RedirectURL:     "https://paypal.example/approve/PP-1",
				Total:           decimal.RequireFromString("42"),
				Deposit:         decimal.RequireFromString("42"),
			}, nil
		})

		w := postJSON(r, "/v1/shops/chez-lou/checkout", validCheckoutBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["pending_order_id"] != "pend-1" || body["redirect_url"] != "https://paypal.example/approve/PP-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["total"] != "42.00" {
			t.Fatalf("expected server total, got %v", body["total"])
		}
	})

	errorCases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrOrderLimitReached, http.StatusForbidden, "ORDER_LIMIT_REACHED"},
		{usecase.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{usecase.ErrShopNotFound, http.StatusNotFound, "SHOP_NOT_FOUND"},
		{usecase.ErrProviderNotAvailable, http.StatusBadRequest, "PROVIDER_NOT_AVAILABLE"},
		{fmt.Errorf("%w: customer email is invalid", usecase.ErrInvalidOrderInput), http.StatusBadRequest, "INVALID_ORDER_INPUT"},
		{fmt.Errorf("%w: boom", usecase.ErrPaymentProvider), http.StatusBadGateway, "PAYMENT_PROVIDER_ERROR"},
		{fmt.Errorf("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errorCases {
		t.Run("maps "+tc.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newCheckoutRouter(uc)

			uc.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, tc.err)

			w := postJSON(r, "/v1/shops/chez-lou/checkout", validCheckoutBody)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeError(t, w); got.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, got.Code)
			}
		})
	}

	t.Run("limit reached carries the upgrade message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrOrderLimitReached)

		w := postJSON(r, "/v1/shops/chez-lou/checkout", validCheckoutBody)
		if got := decodeError(t, w); got.Message != orderLimitUpgradeMessage {
			t.Fatalf("unexpected message: %s", got.Message)
		}
	})

	t.Run("internal errors hide the cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, fmt.Errorf("secret table name leaked"))

		w := postJSON(r, "/v1/shops/chez-lou/checkout", validCheckoutBody)
		if strings.Contains(w.Body.String(), "secret table name") {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_PayQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("manual is not a payable provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		w := postJSON(r, "/v1/orders/ord-1/pay", `{"provider":"manual","customer_email":"alice@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().
			StartQuotePayment(gomock.Any(), "ord-1", "alice@example.com", entities.PaymentProviderStripe).
			Return(usecase.CheckoutResult{PendingOrderID: "pend-2", RedirectURL: "https://checkout.stripe.example/cs_1"}, nil)

		w := postJSON(r, "/v1/orders/ord-1/pay", `{"provider":"stripe","customer_email":"alice@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("wrong status is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().StartQuotePayment(gomock.Any(), "ord-1", gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrInvalidTransition)

		w := postJSON(r, "/v1/orders/ord-1/pay", `{"provider":"paypal","customer_email":"alice@example.com"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("email mismatch is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().StartQuotePayment(gomock.Any(), "ord-1", gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrForbidden)

		w := postJSON(r, "/v1/orders/ord-1/pay", `{"provider":"paypal","customer_email":"mallory@example.com"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
