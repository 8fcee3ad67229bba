package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cronSecretHeader = "x-cron-secret"

var errInvalidCronSecret = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron secret", http.StatusUnauthorized)

// CronHandler exposes scheduled jobs to the platform scheduler.
type CronHandler struct {
	payouts usecase.IAffiliatePayoutUseCase
	secret  string
	now     func() time.Time
	logger  *zap.Logger
}

func NewCronHandler(payouts usecase.IAffiliatePayoutUseCase, secret string, logger *zap.Logger) *CronHandler {
	return &CronHandler{payouts: payouts, secret: secret, now: time.Now, logger: logger}
}

// PayoutAffiliateCommissions godoc
// @Summary      Monthly affiliate payout
// @Description  Runs on the configured day of month unless force=true.
// @Tags         cron
// @Produce      json
// @Param        secret         query   string  false  "Cron secret"
// @Param        x-cron-secret  header  string  false  "Cron secret"
// @Param        force          query   bool    false  "Run regardless of the day"
// @Success      200  {object}  usecase.PayoutReport
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/cron/payout-affiliate-commissions [post]
func (h *CronHandler) PayoutAffiliateCommissions(c *gin.Context) {
	if !h.authorized(c) {
		h.logger.Warn("[payout][handler] rejected cron call", zap.String("client_ip", c.ClientIP()))
		writeError(c, errInvalidCronSecret)
		return
	}
	force, _ := strconv.ParseBool(c.Query("force"))

	report, err := h.payouts.Run(c.Request.Context(), h.now(), force)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Payout run failed", err, http.StatusInternalServerError)
		logFailure(h.logger, "[payout][handler] run failed", appErr, zap.Bool("force", force))
		writeError(c, appErr)
		return
	}
	h.logger.Info("[payout][handler] run finished",
		zap.Bool("skipped", report.Skipped),
		zap.String("period", report.Period),
		zap.Int("referrers", len(report.Referrers)),
		zap.Int("failures", len(report.Failures)),
	)

	c.JSON(http.StatusOK, report)
}

// authorized fails closed when no secret is configured.
func (h *CronHandler) authorized(c *gin.Context) bool {
	if h.secret == "" {
		return false
	}
	provided := c.GetHeader(cronSecretHeader)
	if provided == "" {
		provided = c.Query("secret")
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) == 1
}
