package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardsrv/mod"
)

// Recovery returns a middleware that converts any handler panic into the
// standard 500 failure envelope. No fault may crash the process or leave a
// request unanswered.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("panic recovered: %v\n%s", r, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					mod.NewError(fmt.Sprintf("Internal server error: %v", r)))
			}
		}()
		c.Next()
	}
}
