package http

import (
	"errors"

	"estimate-srv/internal/estimate"
	pkgErrors "estimate-srv/pkg/errors"
)

var (
	errResultNotFound = pkgErrors.NewHTTPError(404, "Estimation result not found")
	errResultNotReady = pkgErrors.NewHTTPError(409, "Estimation result not ready yet")
	errUserRequired   = pkgErrors.NewHTTPError(400, "User ID is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, estimate.ErrResultNotFound):
		return errResultNotFound
	case errors.Is(err, estimate.ErrResultNotReady):
		return errResultNotReady
	case errors.Is(err, estimate.ErrUserRequired):
		return errUserRequired
	default:
		panic(err)
	}
}
