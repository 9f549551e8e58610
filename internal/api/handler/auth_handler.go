package handler

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
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// LoginGuard throttles failed logins per client address.
type LoginGuard interface {
	Allow(ctx context.Context, ip string) (bool, error)
	Fail(ctx context.Context, ip string) (int64, error)
	Reset(ctx context.Context, ip string) error
}

type AuthHandler struct {
	authService ports.AuthService
	guard       LoginGuard
	log         zerolog.Logger
}

// NewAuthHandler builds the handler. guard may be nil.
func NewAuthHandler(authService ports.AuthService, guard LoginGuard, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, guard: guard, log: log}
}

// Login authenticates a militar and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Matrícula e senha"
// @Success      200   {object}  response.Envelope{data=loginResponse}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      429   {object}  response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil || strings.TrimSpace(req.Matricula) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Matrícula e senha são obrigatórios").SetInternal(err)
	}

	ctx := c.Request().Context()
	ip := c.RealIP()

	if h.guard != nil {
		ok, err := h.guard.Allow(ctx, ip)
		if err != nil {
			h.log.Warn().Err(err).Str("ip", ip).Msg("login guard unavailable")
		} else if !ok {
			metrics.LoginAttemptsTotal.WithLabelValues("blocked").Inc()
			return domain.ErrTooManyAttempts
		}
	}

	res, err := h.authService.Login(ctx, req.Matricula, req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			h.recordFailure(ctx, ip, req.Matricula)
		}
		return err
	}

	if h.guard != nil {
		if err := h.guard.Reset(ctx, ip); err != nil {
			h.log.Warn().Err(err).Str("ip", ip).Msg("login guard reset failed")
		}
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return response.OK(c, http.StatusOK, "Login realizado com sucesso", loginResponse{
		Token: res.Token,
		User:  loginUser{Nome: res.User.Nome, Cargo: res.User.Cargo},
	})
}

func (h *AuthHandler) recordFailure(ctx context.Context, ip, matricula string) {
	if h.guard == nil {
		return
	}
	n, err := h.guard.Fail(ctx, ip)
	if err != nil {
		h.log.Warn().Err(err).Str("ip", ip).Msg("login guard unavailable")
		return
	}
	h.log.Info().Str("ip", ip).Str("matricula", matricula).Int64("failures", n).Msg("login failed")
}

// Me returns the identity of the authenticated militar.
//
// @Summary      Dados do usuário logado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=domain.Identity}
// @Failure      401  {object}  response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, "Dados do usuário", id)
}

// RecuperarSenha checks matricula and cpf and returns the id used to reset
// the password.
//
// @Summary      Solicitar recuperação de senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      recuperarSenhaRequest  true  "Matrícula e CPF"
// @Success      200   {object}  response.Envelope{data=recuperarSenhaResponse}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /auth/recuperar-senha [post]
func (h *AuthHandler) RecuperarSenha(c echo.Context) error {
	var req recuperarSenhaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.authService.RequestPasswordReset(c.Request().Context(), req.Matricula, req.CPF)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Militar não encontrado com os dados informados")
		}
		return err
	}
	return response.OK(c, http.StatusOK, "Militar verificado", recuperarSenhaResponse{ID: id})
}

// RedefinirSenha sets a new password after RecuperarSenha.
//
// @Summary      Redefinir senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      redefinirSenhaRequest  true  "Nova senha"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /auth/redefinir-senha [post]
func (h *AuthHandler) RedefinirSenha(c echo.Context) error {
	var req redefinirSenhaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.NovaSenha != req.ConfirmarSenha {
		return response.Fail(c, http.StatusBadRequest, "As senhas não coincidem", nil)
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.ID, req.NovaSenha); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Solicitação de recuperação não encontrada ou expirada")
		}
		return err
	}
	return response.OK(c, http.StatusOK, "Senha redefinida com sucesso", nil)
}
