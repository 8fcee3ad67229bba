package handlers

import (
	"errors"
	"net/http"
	"strings"

	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const codeInvalidOrderInput = "INVALID_ORDER_INPUT"

var errInvalidPayload = pkg.NewDomainErrorSimple(codeInvalidOrderInput, "Invalid request payload", http.StatusBadRequest)

// bindJSON decodes the body into dst. Validation failures list the offending
// json fields so storefront forms can highlight them.
func bindJSON(c *gin.Context, dst any) *pkg.AppError {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errPayloadTooLarge
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return pkg.NewDomainError(codeInvalidOrderInput, "Invalid fields: "+describeFields(verrs), err, http.StatusBadRequest)
	}
	return pkg.NewDomainError(errInvalidPayload.Code, errInvalidPayload.Message, err, errInvalidPayload.HTTPStatus)
}

func describeFields(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, jsonFieldName(fe)+" ("+fe.Tag()+")")
	}
	return strings.Join(parts, ", ")
}

// jsonFieldName turns CustomerEmail into customer_email and ProductID into
// product_id; gin's validator reports Go field names.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	var prev rune
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte('_')
			}
			prev = r
			r += 'a' - 'A'
		} else {
			prev = r
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// logFailure logs caller mistakes at info and service failures at error.
func logFailure(logger *zap.Logger, msg string, appErr *pkg.AppError, fields ...zap.Field) {
	fields = append(fields, zap.String("code", appErr.Code), zap.Error(appErr.Err))
	if appErr.IsServerError() {
		logger.Error(msg, fields...)
		return
	}
	logger.Info(msg, fields...)
}
