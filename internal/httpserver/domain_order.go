package httpserver

import (
	"context"

	"storefront/internal/middleware"
	"storefront/internal/model"
	orderHTTP "storefront/internal/order/delivery/http"
	orderRepo "storefront/internal/order/repository/postgre"
	orderUC "storefront/internal/order/usecase"

	"github.com/gin-gonic/gin"
)

// setupOrderDomain initializes the order domain and registers its routes.
func (srv HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := orderRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := orderUC.New(repo, newCache[model.Order](srv, "orders"), srv.l)

	// 3. HTTP Handler
	h := orderHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/orders
	orderHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Order domain registered (cache=%s)", srv.cacheCfg.Backend)
	return nil
}
