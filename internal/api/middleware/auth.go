package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/api/metrics"
	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/token"
)

// Messages returned by the auth chain.
const (
	MsgTokenMissing   = "Token não fornecido"
	MsgTokenInvalid   = "Token inválido"
	MsgMilitarMissing = "Militar não encontrado"
	MsgAccessDenied   = "Acesso negado"
)

// TokenVerifier checks a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// MilitarFinder reloads the militar named by a token.
type MilitarFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Militar, error)
}

// Authenticate verifies the bearer token, reloads the militar it names and
// attaches the fresh identity to the request. Role changes and deletions
// therefore take effect on the next request.
func Authenticate(verifier TokenVerifier, militares MilitarFinder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return response.Fail(c, http.StatusUnauthorized, MsgTokenMissing, nil)
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return response.Fail(c, http.StatusUnauthorized, MsgTokenInvalid, nil)
			}

			m, err := militares.FindByID(c.Request().Context(), claims.ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("identity_missing").Inc()
					return response.Fail(c, http.StatusUnauthorized, MsgMilitarMissing, nil)
				}
				return err
			}

			SetIdentity(c, m.Identity())
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}
