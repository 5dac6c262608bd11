package http

import (
	"errors"
	"net/http"

	"storefront/internal/order"
	pkgErrors "storefront/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Store and pool failures become a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "order not found")
	case errors.Is(err, order.ErrDuplicateKey):
		return pkgErrors.NewHTTPError(http.StatusConflict, "order already exists")
	case errors.Is(err, order.ErrInvalidReference):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "referenced record does not exist")
	case errors.Is(err, order.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
