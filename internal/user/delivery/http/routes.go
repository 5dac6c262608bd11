package http

import (
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("", mw.RateLimit(), h.Create)
		users.GET("/:id", h.Detail)
	}
}
