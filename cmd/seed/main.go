// Command seed provisions the militares listed in a YAML file. Existing
// matriculas are skipped, so it can be re-run safely.
//
//	go run ./cmd/seed -file cmd/seed/militares.example.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
	"github.com/sirene/bombeiros-api/internal/core/service"
	"github.com/sirene/bombeiros-api/internal/core/token"
	"github.com/sirene/bombeiros-api/internal/infrastructure/config"
	"github.com/sirene/bombeiros-api/internal/infrastructure/db/postgres"
	"github.com/sirene/bombeiros-api/pkg/logger"
)

type seedFile struct {
	Militares []seedMilitar `yaml:"militares"`
}

type seedMilitar struct {
	Nome         string `yaml:"nome"`
	Matricula    string `yaml:"matricula"`
	CPF          string `yaml:"cpf"`
	Posto        string `yaml:"posto"`
	Email        string `yaml:"email"`
	Senha        string `yaml:"senha"`
	PerfilAcesso string `yaml:"perfilAcesso"`
}

func main() {
	file := flag.String("file", "cmd/seed/militares.example.yaml", "YAML file with the militares to create")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, *file)
	stop()
	if err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context, path string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "sirene-seed"})

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	militares, err := loadSeed(f)
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	codec, err := token.NewCodec(token.Config{Secret: cfg.JWT.Secret, TTL: cfg.JWT.ExpiresIn})
	if err != nil {
		return err
	}
	svc := service.NewAuthService(postgres.NewMilitarRepository(db), codec, log, service.WithBcryptCost(cfg.BcryptCost))

	created, skipped, err := seed(ctx, svc, militares, log)
	if err != nil {
		return err
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed complete")
	return nil
}

func loadSeed(r io.Reader) ([]ports.CreateMilitarInput, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	out := make([]ports.CreateMilitarInput, 0, len(sf.Militares))
	for i, m := range sf.Militares {
		if m.Matricula == "" || m.Senha == "" {
			return nil, fmt.Errorf("seed: entry %d: matricula and senha are required", i)
		}
		out = append(out, ports.CreateMilitarInput{
			Nome:         m.Nome,
			Matricula:    m.Matricula,
			CPF:          m.CPF,
			Posto:        m.Posto,
			Email:        m.Email,
			Senha:        m.Senha,
			PerfilAcesso: m.PerfilAcesso,
		})
	}
	return out, nil
}

type identityCreator interface {
	CreateIdentity(ctx context.Context, input ports.CreateMilitarInput) (*domain.Militar, error)
}

func seed(ctx context.Context, svc identityCreator, militares []ports.CreateMilitarInput, log zerolog.Logger) (created, skipped int, err error) {
	for _, in := range militares {
		m, err := svc.CreateIdentity(ctx, in)
		switch {
		case errors.Is(err, domain.ErrDuplicateKey):
			log.Info().Str("matricula", in.Matricula).Msg("already exists, skipped")
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("seed %s: %w", in.Matricula, err)
		default:
			log.Info().Str("matricula", m.Matricula).Str("perfil", string(m.PerfilAcesso)).Msg("created")
			created++
		}
	}
	return created, skipped, nil
}
