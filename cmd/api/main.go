// Command api serves the Sirene HTTP API.
//
//	@title						Sirene - Corpo de Bombeiros API
//	@version					1.0.0
//	@description				Gestão de ocorrências, militares e auditoria do Corpo de Bombeiros.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer <token>
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/api"
	"github.com/sirene/bombeiros-api/internal/api/handler"
	"github.com/sirene/bombeiros-api/internal/api/middleware"
	"github.com/sirene/bombeiros-api/internal/core/service"
	"github.com/sirene/bombeiros-api/internal/core/token"
	"github.com/sirene/bombeiros-api/internal/infrastructure/config"
	"github.com/sirene/bombeiros-api/internal/infrastructure/db/mongo"
	"github.com/sirene/bombeiros-api/internal/infrastructure/db/postgres"
	"github.com/sirene/bombeiros-api/internal/infrastructure/db/redis"
	"github.com/sirene/bombeiros-api/internal/infrastructure/queue"
	"github.com/sirene/bombeiros-api/internal/infrastructure/report"
	"github.com/sirene/bombeiros-api/pkg/logger"
)

const (
	version         = "1.0.0"
	reportTimezone  = "America/Sao_Paulo"
	shutdownTimeout = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("api stopped")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "sirene-api",
		Version: version,
		Caller:  cfg.IsProduction(),
	})

	// --- Postgres: militares and ocorrencias ---
	db, err := postgres.Open(ctx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	// --- Mongo: audit log ---
	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	auditRepo := mongo.NewAuditRepository(mongoDB)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Redis: login guard and reset tickets ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	codec, err := token.NewCodec(token.Config{Secret: cfg.JWT.Secret, TTL: cfg.JWT.ExpiresIn})
	if err != nil {
		return err
	}

	proxies, err := cfg.TrustedProxyNets()
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(reportTimezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", reportTimezone).Msg("report timezone unavailable, using UTC")
		loc = time.UTC
	}

	militarRepo := postgres.NewMilitarRepository(db)
	ocorrenciaRepo := postgres.NewOcorrenciaRepository(db)

	authService := service.NewAuthService(militarRepo, codec, logger.Component("auth"),
		service.WithBcryptCost(cfg.BcryptCost),
		service.WithResetTickets(redis.NewResetTickets(rdb, cfg.PasswordResetWindow)),
	)
	ocorrenciaService := service.NewOcorrenciaService(ocorrenciaRepo, logger.Component("ocorrencias"))
	auditService := service.NewAuditService(auditRepo, report.XLSX{Location: loc})

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, logger.Component("audit"))
	dispatcher.Start()

	e := api.NewRouter(api.Deps{
		AuthService:       authService,
		OcorrenciaService: ocorrenciaService,
		AuditService:      auditService,
		Tokens:            codec,
		Militares:         militarRepo,
		Audit:             dispatcher,
		LoginGuard:        redis.NewLoginGuard(rdb, cfg.Login.MaxAttempts, cfg.Login.Window),
		RateLimiter:       middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		Health: map[string]handler.Pinger{
			"postgres": postgres.Pinger{DB: db},
			"mongo":    mongo.Pinger{Client: mongoClient},
			"redis":    redis.Pinger{Client: rdb},
		},
		CORSOrigin:     cfg.CORSOrigin,
		TrustedProxies: proxies,
		Log:            logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	return shutdown(e.Shutdown, dispatcher, log)
}

func shutdown(server func(context.Context) error, dispatcher *queue.Dispatcher, log zerolog.Logger) error {
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	// in-flight requests may still enqueue audit entries until the server stops
	if err := dispatcher.Stop(ctx); err != nil {
		return err
	}

	log.Info().Msg("shutdown complete")
	return nil
}
