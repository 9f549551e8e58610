package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

const identityKey = "identity"

// SetIdentity attaches the reloaded identity to the request.
func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(identityKey).(*domain.Identity)
	return id, ok && id != nil
}
