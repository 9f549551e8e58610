package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/middleware"
	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, matricula, senha string) (*ports.LoginResult, error)
	createFn  func(ctx context.Context, input ports.CreateMilitarInput) (*domain.Militar, error)
	listFn    func(ctx context.Context, page, limit int) (*ports.MilitarPage, error)
	getFn     func(ctx context.Context, id string) (*domain.Militar, error)
	updateFn  func(ctx context.Context, id string, input ports.UpdateMilitarInput) (*domain.Militar, error)
	deleteFn  func(ctx context.Context, id string) error
	requestFn func(ctx context.Context, matricula, cpf string) (string, error)
	resetFn   func(ctx context.Context, id, novaSenha string) error
}

func (s *stubAuthService) Login(ctx context.Context, matricula, senha string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, matricula, senha)
}

func (s *stubAuthService) CreateIdentity(ctx context.Context, input ports.CreateMilitarInput) (*domain.Militar, error) {
	return s.createFn(ctx, input)
}

func (s *stubAuthService) ListIdentities(ctx context.Context, page, limit int) (*ports.MilitarPage, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubAuthService) GetIdentity(ctx context.Context, id string) (*domain.Militar, error) {
	return s.getFn(ctx, id)
}

func (s *stubAuthService) UpdateIdentity(ctx context.Context, id string, input ports.UpdateMilitarInput) (*domain.Militar, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubAuthService) DeleteIdentity(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, matricula, cpf string) (string, error) {
	return s.requestFn(ctx, matricula, cpf)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, id, novaSenha string) error {
	return s.resetFn(ctx, id, novaSenha)
}

type stubGuard struct {
	blocked  bool
	failures int64
	resets   int
}

func (g *stubGuard) Allow(context.Context, string) (bool, error) { return !g.blocked, nil }

func (g *stubGuard) Fail(context.Context, string) (int64, error) {
	g.failures++
	return g.failures, nil
}

func (g *stubGuard) Reset(context.Context, string) error {
	g.resets++
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context. body may be empty; id, when not nil,
// is attached as the authenticated identity.
func newContext(e *echo.Echo, method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		middleware.SetIdentity(c, id)
	}
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Envelope {
	t.Helper()
	var env struct {
		response.Envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("invalid data: %v", err)
		}
	}
	return env.Envelope
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

var (
	admin   = &domain.Identity{ID: "adm-1", Nome: "Admin", Matricula: "12345", PerfilAcesso: domain.PerfilAdmin}
	soldado = &domain.Identity{ID: "mil-1", Nome: "Carlos", Matricula: "54321", PerfilAcesso: domain.PerfilMilitar}
)
