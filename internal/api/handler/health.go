package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/response"
)

const version = "1.0.0"

// HealthHandler handles GET /api/health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

type livenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return response.OK(c, http.StatusOK, "Sistema Corpo de Bombeiros - API Online", livenessResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   version,
	})
}

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthDependenciesHandler handles GET /api/health/ready, the readiness probe.
// Every registered dependency must answer a ping.
type HealthDependenciesHandler struct {
	deps    map[string]Pinger
	timeout time.Duration
}

func NewHealthDependenciesHandler(deps map[string]Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{deps: deps, timeout: 3 * time.Second}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.deps[name].Ping(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	body := readinessResponse{Status: "ok", Dependencies: deps}
	if !healthy {
		body.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Success: false,
			Message: "Dependências indisponíveis",
			Data:    body,
		})
	}
	return response.OK(c, http.StatusOK, "Dependências disponíveis", body)
}
