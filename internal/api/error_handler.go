package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
)

const msgInternal = "Erro interno do servidor"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the response envelope with success=false.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = response.Fail(c, code, msg, detail)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, any) {
	// Echo's own errors (router 404/405, handler-level HTTP errors).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound && errors.Is(he, echo.ErrNotFound) {
			return http.StatusNotFound, "Endpoint não encontrado", nil
		}
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Dados inválidos", err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Matrícula ou senha inválida.", nil
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Token inválido", nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado", nil
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Registro não encontrado", nil
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusBadRequest, "Matrícula, CPF ou email já cadastrado", nil
	case errors.Is(err, domain.ErrReferenced):
		return http.StatusConflict, "Registro possui vínculos e não pode ser removido", nil
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Muitas tentativas de login. Tente novamente mais tarde.", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternal, nil
}
