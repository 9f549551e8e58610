package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// AuditLog hands an entry describing the request to recorder. Requests
// without an identity are not audited. A recorder failure is logged and never
// fails the request.
func AuditLog(label string, recorder ports.AuditRecorder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return next(c)
			}

			req := c.Request()
			entry := domain.LogAuditoria{
				ID:        uuid.NewString(),
				IDMilitar: id.ID,
				Matricula: id.Matricula,
				Nome:      id.Nome,
				Acao:      label + " - " + req.Method + " " + req.URL.Path,
				DataHora:  time.Now().UTC(),
				IPOrigem:  c.RealIP(),
			}
			if err := recorder.Record(entry); err != nil {
				log.Warn().Err(err).
					Str("militar_id", id.ID).
					Str("acao", entry.Acao).
					Msg("audit entry not recorded")
			}

			return next(c)
		}
	}
}
