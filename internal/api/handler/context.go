package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/middleware"
	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// currentIdentity returns the identity attached by the Authenticate
// middleware. A missing identity means the route was wired without it.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Usuário não autenticado")
	}
	return id, nil
}

// pageParams reads the optional page and limit query parameters.
func pageParams(c echo.Context) (page, limit int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Parâmetros de paginação inválidos")
	}
	return page, limit, nil
}
