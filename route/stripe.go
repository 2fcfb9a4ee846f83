package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardsrv/card"
	"git.thinkinpower.net/cardsrv/mod"
)

// stripe serves the full validation + BIN lookup + simulated charge
// endpoint. A card that fails the Luhn check is a client error here, unlike
// /api/validate which reports the raw outcome with 200.
func (h *handler) stripe(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("cc"))
	name := strings.TrimSpace(c.DefaultQuery("name", "Cardholder"))

	if raw == "" {
		c.JSON(http.StatusBadRequest, mod.NewError("Missing required parameter: 'cc' (credit card number)"))
		return
	}

	number := card.Normalize(raw)
	if !card.ValidateLuhn(number) {
		resp := mod.NewError("Invalid credit card number (Luhn check failed)")
		resp.CardNumber = card.DisplayNumber(number)
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	brand := card.Brand(number)
	bin := number[:6]

	// The client logs its own failures; an absent record renders every
	// bin_lookup field as the Unknown sentinel.
	info, _ := h.lookup.Lookup(c.Request.Context(), bin)

	c.JSON(http.StatusOK, mod.StripeResponse{
		Success: true,
		CardValidation: mod.ValidationResult{
			IsValid:    true,
			CardNumber: card.DisplayNumber(number),
			CardType:   brand,
			CardLength: len(number),
			LuhnCheck:  "passed",
		},
		BinLookup:    mod.NewBinLookup(bin, info),
		StripeCharge: h.simulator.Simulate(number, name, brand),
		Timestamp:    mod.Timestamp(),
	})
}
