package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Log returns a middleware that records one logrus entry per request. The
// query string is deliberately left out: it may carry a full card number.
func Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		statusCode := c.Writer.Status()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		entry := logger.WithFields(logger.Fields{
			"statusCode": statusCode,
			"method":     c.Request.Method,
			"path":       path,
			"clientIp":   c.ClientIP(),
			"latency":    time.Since(start).Microseconds(),
			"dataLength": dataLength,
			"userAgent":  c.Request.UserAgent(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
			return
		}
		msg := ""
		if statusCode > 499 {
			entry.Error(msg)
		} else if statusCode > 399 {
			entry.Warn(msg)
		} else {
			entry.Info(msg)
		}
	}
}
