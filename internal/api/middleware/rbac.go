package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/metrics"
	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// Authorize lets the request through only when the attached identity holds one
// of the given perfis. It must run after Authenticate.
func Authorize(perfis ...domain.Perfil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return response.Fail(c, http.StatusUnauthorized, MsgTokenMissing, nil)
			}
			if !id.PerfilAcesso.In(perfis...) {
				metrics.TokenRejectionsTotal.WithLabelValues("forbidden").Inc()
				return response.Fail(c, http.StatusForbidden, MsgAccessDenied, nil)
			}
			return next(c)
		}
	}
}

func AdminOnly() echo.MiddlewareFunc {
	return Authorize(domain.PerfilAdmin)
}

func AdminOrCommander() echo.MiddlewareFunc {
	return Authorize(domain.PerfilAdmin, domain.PerfilComandante)
}
