package api

import (
	"net"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sirene/bombeiros-api/docs"
	"github.com/sirene/bombeiros-api/internal/api/handler"
	"github.com/sirene/bombeiros-api/internal/api/middleware"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// Deps holds everything the router wires into handlers and middleware.
type Deps struct {
	AuthService       ports.AuthService
	OcorrenciaService ports.OcorrenciaService
	AuditService      ports.AuditService

	Tokens    middleware.TokenVerifier
	Militares middleware.MilitarFinder
	Audit     ports.AuditRecorder
	// LoginGuard may be nil.
	LoginGuard handler.LoginGuard
	// RateLimiter may be nil to disable the global limit.
	RateLimiter *middleware.RateLimiter

	Health map[string]handler.Pinger

	CORSOrigin string
	// TrustedProxies are the only peers whose X-Forwarded-For is honoured.
	TrustedProxies []*net.IPNet
	// Registerer defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ipExtractor(d.TrustedProxies)
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(corsMiddleware(d.CORSOrigin))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit("10M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "sirene",
		Registerer:                d.Registerer,
		DoNotUseRequestPathFor404: true,
	}))
	if d.RateLimiter != nil {
		e.Use(middleware.RateLimit(d.RateLimiter))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService, d.LoginGuard, d.Log)
	militarHandler := handler.NewMilitarHandler(d.AuthService)
	ocorrenciaHandler := handler.NewOcorrenciaHandler(d.OcorrenciaService)
	auditoriaHandler := handler.NewAuditoriaHandler(d.AuditService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health)

	authn := middleware.Authenticate(d.Tokens, d.Militares, d.Log)
	audit := func(label string) echo.MiddlewareFunc {
		return middleware.AuditLog(label, d.Audit, d.Log)
	}

	api := e.Group("/api")

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	api.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Auth & militares ---
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/recuperar-senha", authHandler.RecuperarSenha)
	auth.POST("/redefinir-senha", authHandler.RedefinirSenha)
	auth.GET("/me", authHandler.Me, authn)
	auth.POST("/militar", militarHandler.Create, authn, middleware.AdminOnly(), audit("Criar militar"))
	auth.GET("/militares", militarHandler.List, authn, middleware.AdminOrCommander())
	auth.GET("/militar/:id", militarHandler.Get, authn)
	auth.PUT("/militar/:id", militarHandler.Update, authn, audit("Atualizar militar"))
	auth.DELETE("/militar/:id", militarHandler.Delete, authn, middleware.AdminOnly(), audit("Remover militar"))

	// --- Ocorrências ---
	oc := api.Group("/ocorrencias", authn)
	oc.POST("", ocorrenciaHandler.Create, audit("Registrar ocorrência"))
	oc.GET("", ocorrenciaHandler.List)
	oc.GET("/:id", ocorrenciaHandler.Get)
	oc.PATCH("/:id/status", ocorrenciaHandler.UpdateStatus, audit("Alterar status da ocorrência"))

	api.GET("/dashboard/metricas", ocorrenciaHandler.Dashboard, authn)

	// --- Auditoria (ADMIN) ---
	aud := api.Group("/auditoria", authn, middleware.AdminOnly())
	aud.GET("", auditoriaHandler.List)
	aud.GET("/export", auditoriaHandler.Export)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// ipExtractor resolves the client address used for rate limiting, the login
// guard and audit entries. Without trusted proxies only the socket address
// counts.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

func corsMiddleware(origin string) echo.MiddlewareFunc {
	if origin == "" || origin == "*" {
		return echomiddleware.CORS()
	}
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{origin},
		AllowCredentials: true,
	})
}
