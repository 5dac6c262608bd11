package http

import (
	"errors"
	"net/http"

	"storefront/internal/user"
	pkgErrors "storefront/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrDuplicateKey):
		return pkgErrors.NewHTTPError(http.StatusConflict, user.ErrEmailTaken.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
