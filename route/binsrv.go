package route

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardsrv/mod"
)

// binQuery serves the lookup-only endpoint. An absent upstream record is a
// 404 here, unlike the full lookup where it degrades to sentinel values.
func (h *handler) binQuery(c *gin.Context) {
	binCode := c.Param("bin")
	if len(binCode) < 6 {
		c.JSON(http.StatusBadRequest, mod.NewError("Invalid BIN code. Must be at least 6 digits."))
		return
	}

	bin := binCode[:6]
	info, err := h.lookup.Lookup(c.Request.Context(), bin)
	if err != nil || info == nil {
		c.JSON(http.StatusNotFound, mod.NewError(fmt.Sprintf("BIN lookup failed for %s", binCode)))
		return
	}

	c.JSON(http.StatusOK, mod.BinResponse{
		Success:   true,
		Bin:       bin,
		Data:      info.Raw,
		Timestamp: mod.Timestamp(),
	})
}
