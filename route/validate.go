package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardsrv/card"
	"git.thinkinpower.net/cardsrv/mod"
)

type validateRequest struct {
	Cc string `json:"cc"`
}

// validate serves the validation-only endpoint for both GET (query string)
// and POST (JSON body).
func (h *handler) validate(c *gin.Context) {
	var raw string
	if c.Request.Method == http.MethodPost {
		var req validateRequest
		// An empty or non-JSON body behaves like a missing parameter.
		_ = c.ShouldBindJSON(&req)
		raw = strings.TrimSpace(req.Cc)
	} else {
		raw = strings.TrimSpace(c.Query("cc"))
	}

	if raw == "" {
		c.JSON(http.StatusBadRequest, mod.NewError("Missing required parameter: 'cc' (credit card number)"))
		return
	}

	number := card.Normalize(raw)
	c.JSON(http.StatusOK, mod.ValidateResponse{
		Success:    true,
		CardNumber: card.DisplayNumber(number),
		IsValid:    card.ValidateLuhn(number),
		CardType:   card.Brand(number),
		CardLength: len(number),
		Timestamp:  mod.Timestamp(),
	})
}
