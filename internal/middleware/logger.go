package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request after it completes.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		default:
			mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		}
	}
}
