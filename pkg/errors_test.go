package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if !appErr.IsServerError() {
		t.Fatalf("expected 500 to be a server error")
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http body: %+v", body)
	}

	simple := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	if simple.IsServerError() {
		t.Fatalf("404 must not be a server error")
	}
	if simple.Error() != "ORDER_NOT_FOUND: Order not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
