package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardsrv/mod"
)

const (
	serviceName    = "Stripe BIN Lookup Service"
	serviceVersion = "1.0.0"
)

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, mod.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: mod.Timestamp(),
	})
}

// info describes the service, its endpoints and its static configuration.
func (h *handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "An API for credit card validation, BIN lookup, and Stripe payment simulation.",
		"endpoints": gin.H{
			"GET /health":                                 "Health check endpoint",
			"GET /api/info":                               "API information and documentation",
			"GET /api/stripe?cc=<card_number>&name=<name>": "Full card validation, BIN lookup, and Stripe charge simulation",
			"GET /api/validate?cc=<card_number>":          "Card validation only",
			"POST /api/validate":                          "Card validation (POST method)",
			"GET /api/bin/<bin_code>":                     "BIN lookup only",
		},
		"configuration": gin.H{
			"stripe_charge_amount": h.cfg.ChargeAmount.StringFixed(2),
			"stripe_currency":      h.cfg.Currency,
			"binlist_api_url":      h.cfg.BinlistURL,
		},
		"timestamp": mod.Timestamp(),
	})
}
