package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliverycontext "tasktrack/internal/delivery/context"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/errors"
)

// normalizer is implemented by requests that clean their fields before validation.
type normalizer interface {
	normalize()
}

// bindAndValidate binds the request into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}

	return c.Validate(req)
}

// ownerID returns the caller admitted by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrNoAuthToken)
	}

	return identity.UserID, nil
}
