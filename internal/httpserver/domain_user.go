package httpserver

import (
	"context"

	"storefront/internal/middleware"
	"storefront/internal/model"
	userHTTP "storefront/internal/user/delivery/http"
	userRepo "storefront/internal/user/repository/postgre"
	userUC "storefront/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// setupUserDomain initializes the user domain and registers its routes.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, newCache[model.User](srv, "users"), srv.l)
	h := userHTTP.New(srv.l, uc)

	// Registers /api/v1/users
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered (cache=%s)", srv.cacheCfg.Backend)
	return nil
}
