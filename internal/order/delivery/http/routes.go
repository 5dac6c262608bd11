package http

import (
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Writes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	orders := rg.Group("/orders")
	{
		orders.POST("", mw.RateLimit(), h.Create)
		orders.GET("/:id", h.Detail)
	}
}
