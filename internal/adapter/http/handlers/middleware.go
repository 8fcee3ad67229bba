package handlers

import (
	"net/http"
	"strings"

	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderProfileID carries the merchant identity set by the auth proxy.
	HeaderProfileID = "X-Profile-ID"
	profileIDKey    = "profile_id"
)

var (
	errMissingProfile  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing merchant identity", http.StatusUnauthorized)
	errPayloadTooLarge = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Request body too large", http.StatusRequestEntityTooLarge)
)

// RequireProfile rejects merchant routes without an identity header.
func RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.GetHeader(HeaderProfileID))
		if profileID == "" {
			c.AbortWithStatusJSON(errMissingProfile.HTTPStatus, errMissingProfile.ToHTTPError())
			return
		}
		c.Set(profileIDKey, profileID)
		c.Next()
	}
}

// profileID returns the identity stored by RequireProfile, falling back to
// the raw header on routes open to both merchants and customers.
func profileID(c *gin.Context) string {
	if v := c.GetString(profileIDKey); v != "" {
		return v
	}
	return strings.TrimSpace(c.GetHeader(HeaderProfileID))
}

// BodyLimit caps request bodies. Reads past the limit fail with
// http.MaxBytesError, which bindJSON maps to 413.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			if c.Request.ContentLength > maxBytes {
				c.AbortWithStatusJSON(errPayloadTooLarge.HTTPStatus, errPayloadTooLarge.ToHTTPError())
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
