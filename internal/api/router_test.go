package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirene/bombeiros-api/internal/api/middleware"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
	"github.com/sirene/bombeiros-api/internal/core/service"
	"github.com/sirene/bombeiros-api/internal/core/token"
)

// memMilitares is an in-memory ports.MilitarRepository.
type memMilitares struct {
	mu   sync.Mutex
	byID map[string]*domain.Militar
}

func (r *memMilitares) Create(_ context.Context, m *domain.Militar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.byID {
		if o.Matricula == m.Matricula || o.CPF == m.CPF || o.Email == m.Email {
			return domain.ErrDuplicateKey
		}
	}
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *memMilitares) find(match func(*domain.Militar) bool) (*domain.Militar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.byID {
		if match(m) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memMilitares) FindByID(_ context.Context, id string) (*domain.Militar, error) {
	return r.find(func(m *domain.Militar) bool { return m.ID == id })
}

func (r *memMilitares) FindByMatricula(_ context.Context, matricula string) (*domain.Militar, error) {
	return r.find(func(m *domain.Militar) bool { return m.Matricula == matricula })
}

func (r *memMilitares) FindByMatriculaAndCPF(_ context.Context, matricula, cpf string) (*domain.Militar, error) {
	return r.find(func(m *domain.Militar) bool { return m.Matricula == matricula && m.CPF == cpf })
}

func (r *memMilitares) List(_ context.Context, offset, limit int) ([]*domain.Militar, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*domain.Militar, 0, len(r.byID))
	for _, m := range r.byID {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nome < all[j].Nome })
	total := int64(len(all))
	if offset >= len(all) {
		return []*domain.Militar{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memMilitares) Update(_ context.Context, m *domain.Militar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *memMilitares) UpdatePassword(_ context.Context, id, senhaHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.SenhaHash = senhaHash
	return nil
}

func (r *memMilitares) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type nopOcorrencias struct{ ports.OcorrenciaService }

type nopAudit struct{ ports.AuditService }

type sliceRecorder struct {
	mu      sync.Mutex
	entries []domain.LogAuditoria
}

func (s *sliceRecorder) Record(e domain.LogAuditoria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

type fixture struct {
	e     *echo.Echo
	audit *sliceRecorder
}

func newFixture(t *testing.T, opts ...func(*Deps)) *fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memMilitares{byID: map[string]*domain.Militar{}}
	repo.byID["adm-1"] = &domain.Militar{
		ID: "adm-1", Nome: "Administrador", Matricula: "12345", CPF: "00000000000",
		Email: "admin@cbm.gov.br", SenhaHash: string(hash), PerfilAcesso: domain.PerfilAdmin,
	}
	for i := 0; i < 14; i++ {
		id := fmt.Sprintf("mil-%02d", i)
		repo.byID[id] = &domain.Militar{
			ID: id, Nome: "Militar " + id, Matricula: "9" + id, CPF: id, Email: id + "@cbm.gov.br",
			SenhaHash: string(hash), PerfilAcesso: domain.PerfilMilitar,
		}
	}

	codec, err := token.NewCodec(token.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	rec := &sliceRecorder{}
	reg := prometheus.NewRegistry()
	d := Deps{
		AuthService:       service.NewAuthService(repo, codec, zerolog.Nop(), service.WithBcryptCost(bcrypt.MinCost)),
		OcorrenciaService: nopOcorrencias{},
		AuditService:      nopAudit{},
		Tokens:            codec,
		Militares:         repo,
		Audit:             rec,
		Registerer:        reg,
		Gatherer:          reg,
		Log:               zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return &fixture{e: NewRouter(d), audit: rec}
}

func (f *fixture) do(method, target, body, bearer string) *httptest.ResponseRecorder {
	return f.doFrom("", "", method, target, body, bearer)
}

// doFrom sends the request from remoteAddr, optionally carrying an
// X-Forwarded-For header. Empty values keep the httptest defaults.
func (f *fixture) doFrom(remoteAddr, xff, method, target, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	if xff != "" {
		req.Header.Set(echo.HeaderXForwardedFor, xff)
	}
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func (f *fixture) login(t *testing.T) string {
	t.Helper()
	rec := f.do(http.MethodPost, "/api/auth/login", `{"matricula":"12345","senha":"admin123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Token string `json:"token"`
		User  struct {
			Nome  string `json:"nome"`
			Cargo string `json:"cargo"`
		} `json:"user"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, env.Success)
	assert.Equal(t, "ADMIN", data.User.Cargo)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRouter_LoginAndListMilitares(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	rec := f.do(http.MethodGet, "/api/auth/militares?page=1&limit=10", "", tok)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var page struct {
		Militares  []json.RawMessage `json:"militares"`
		Total      int64             `json:"total"`
		TotalPages int               `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
	assert.LessOrEqual(t, len(page.Militares), 10)
	assert.GreaterOrEqual(t, page.Total, int64(len(page.Militares)))
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/auth/login", `{"matricula":"12345","senha":"errada"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Matrícula ou senha inválida.", env.Message)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token não fornecido", decode(t, rec).Message)

	rec = f.do(http.MethodGet, "/api/auth/me", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token inválido", decode(t, rec).Message)
}

func TestRouter_MilitarCannotListMilitares(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/auth/login", `{"matricula":"9mil-00","senha":"admin123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	rec = f.do(http.MethodGet, "/api/auth/militares", "", data.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Acesso negado", decode(t, rec).Message)
}

func TestRouter_CreateMilitarIsAudited(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	body := `{"nome":"Beatriz","matricula":"777","cpf":"11122233344","email":"b@cbm.gov.br","senha":"segredo1"}`
	rec := f.do(http.MethodPost, "/api/auth/militar", body, tok)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/auth/militar", body, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Matrícula, CPF ou email já cadastrado", decode(t, rec).Message)

	f.audit.mu.Lock()
	defer f.audit.mu.Unlock()
	require.Len(t, f.audit.entries, 2)
	assert.Equal(t, "adm-1", f.audit.entries[0].IDMilitar)
	assert.Contains(t, f.audit.entries[0].Acao, "Criar militar")
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sistema Corpo de Bombeiros - API Online", decode(t, rec).Message)

	rec = f.do(http.MethodGet, "/api/nada", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint não encontrado", decode(t, rec).Message)

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RateLimitKeysOnSocketAddress(t *testing.T) {
	f := newFixture(t, func(d *Deps) {
		d.RateLimiter = middleware.NewRateLimiter(0.0001, 1)
	})

	rec := f.doFrom("10.0.0.1:1234", "1.2.3.0", http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, xff := range []string{"1.2.3.1", "1.2.3.2", "10.0.0.2"} {
		rec = f.doFrom("10.0.0.1:1234", xff, http.MethodGet, "/api/health", "", "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "X-Forwarded-For %s", xff)
	}
}

func TestRouter_TrustedProxyForwardsClientAddress(t *testing.T) {
	_, proxies, err := net.ParseCIDR("10.0.0.0/8")
	require.NoError(t, err)
	f := newFixture(t, func(d *Deps) {
		d.RateLimiter = middleware.NewRateLimiter(0.0001, 1)
		d.TrustedProxies = []*net.IPNet{proxies}
	})

	for _, xff := range []string{"1.2.3.0", "1.2.3.1"} {
		rec := f.doFrom("10.0.0.1:1234", xff, http.MethodGet, "/api/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code, "X-Forwarded-For %s", xff)
	}
	rec := f.doFrom("10.0.0.1:1234", "1.2.3.1", http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// An untrusted peer cannot borrow a fresh client address.
	rec = f.doFrom("172.16.0.9:1234", "1.2.3.9", http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.doFrom("172.16.0.9:1234", "1.2.3.10", http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_AuditRecordsSocketAddress(t *testing.T) {
	f := newFixture(t)
	tok := f.login(t)

	body := `{"nome":"Carla","matricula":"778","cpf":"11122233355","email":"c@cbm.gov.br","senha":"segredo1"}`
	rec := f.doFrom("10.0.0.1:1234", "8.8.8.8", http.MethodPost, "/api/auth/militar", body, tok)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	f.audit.mu.Lock()
	defer f.audit.mu.Unlock()
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "10.0.0.1", f.audit.entries[0].IPOrigem)
}
