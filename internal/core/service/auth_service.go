package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// TokenIssuer signs session tokens for an authenticated militar.
type TokenIssuer interface {
	Issue(m *domain.Militar) (string, error)
}

// ResetTickets bounds the time between a reset request and the reset itself.
type ResetTickets interface {
	Open(ctx context.Context, id string) error
	// Consume reports whether an open ticket existed and removes it.
	Consume(ctx context.Context, id string) (bool, error)
}

var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements login, militar provisioning and password recovery.
type AuthService struct {
	repo       ports.MilitarRepository
	issuer     TokenIssuer
	resets     ResetTickets
	bcryptCost int
	log        zerolog.Logger
	now        func() time.Time
}

// AuthOption customizes an AuthService.
type AuthOption func(*AuthService)

// WithResetTickets enables the reset window check.
func WithResetTickets(t ResetTickets) AuthOption {
	return func(s *AuthService) { s.resets = t }
}

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

func NewAuthService(repo ports.MilitarRepository, issuer TokenIssuer, log zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		repo:       repo,
		issuer:     issuer,
		bcryptCost: bcrypt.DefaultCost,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks the credentials and issues a token. Unknown matriculas and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, matricula, senha string) (*ports.LoginResult, error) {
	matricula = strings.TrimSpace(matricula)
	if matricula == "" || senha == "" {
		return nil, fmt.Errorf("%w: matrícula e senha são obrigatórios", domain.ErrValidation)
	}

	m, err := s.repo.FindByMatricula(ctx, matricula)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// equalize timing for unknown matriculas
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(senha))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(m.SenhaHash), []byte(senha)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(m)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("militar_id", m.ID).Str("matricula", m.Matricula).Msg("login succeeded")

	return &ports.LoginResult{
		Token: token,
		User:  ports.LoginUser{Nome: m.Nome, Cargo: m.PerfilAcesso},
	}, nil
}

func (s *AuthService) CreateIdentity(ctx context.Context, in ports.CreateMilitarInput) (*domain.Militar, error) {
	perfil := domain.PerfilMilitar
	if strings.TrimSpace(in.PerfilAcesso) != "" {
		p, ok := domain.ParsePerfil(in.PerfilAcesso)
		if !ok {
			return nil, fmt.Errorf("%w: perfil de acesso desconhecido %q", domain.ErrValidation, in.PerfilAcesso)
		}
		perfil = p
	}

	m := &domain.Militar{
		ID:           uuid.NewString(),
		Nome:         strings.TrimSpace(in.Nome),
		Matricula:    strings.TrimSpace(in.Matricula),
		CPF:          strings.TrimSpace(in.CPF),
		Posto:        strings.TrimSpace(in.Posto),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PerfilAcesso: perfil,
	}
	if m.Nome == "" || m.Matricula == "" || m.CPF == "" || m.Email == "" || in.Senha == "" {
		return nil, fmt.Errorf("%w: nome, matrícula, cpf, email e senha são obrigatórios", domain.ErrValidation)
	}

	hash, err := s.hash(in.Senha)
	if err != nil {
		return nil, err
	}
	m.SenhaHash = hash

	now := s.now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.log.Info().Str("militar_id", m.ID).Str("matricula", m.Matricula).Str("perfil", string(perfil)).Msg("militar created")
	return m, nil
}

func (s *AuthService) ListIdentities(ctx context.Context, page, limit int) (*ports.MilitarPage, error) {
	page, limit, offset := pageBounds(page, limit)

	items, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list militares: %w", err)
	}
	if items == nil {
		items = []*domain.Militar{}
	}

	return &ports.MilitarPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *AuthService) GetIdentity(ctx context.Context, id string) (*domain.Militar, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateIdentity applies a partial update. Field-level authorization is the
// caller's job.
func (s *AuthService) UpdateIdentity(ctx context.Context, id string, in ports.UpdateMilitarInput) (*domain.Militar, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&m.Nome, in.Nome)
	set(&m.Matricula, in.Matricula)
	set(&m.CPF, in.CPF)
	set(&m.Posto, in.Posto)
	set(&m.Email, in.Email)
	m.Email = strings.ToLower(m.Email)

	if m.Nome == "" || m.Matricula == "" || m.CPF == "" || m.Email == "" {
		return nil, fmt.Errorf("%w: nome, matrícula, cpf e email não podem ficar vazios", domain.ErrValidation)
	}

	if in.PerfilAcesso != nil {
		p, ok := domain.ParsePerfil(*in.PerfilAcesso)
		if !ok {
			return nil, fmt.Errorf("%w: perfil de acesso desconhecido %q", domain.ErrValidation, *in.PerfilAcesso)
		}
		m.PerfilAcesso = p
	}

	if in.Senha != nil {
		if *in.Senha == "" {
			return nil, fmt.Errorf("%w: senha não pode ficar vazia", domain.ErrValidation)
		}
		hash, err := s.hash(*in.Senha)
		if err != nil {
			return nil, err
		}
		m.SenhaHash = hash
	}

	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AuthService) DeleteIdentity(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("militar_id", id).Msg("militar deleted")
	return nil
}

// RequestPasswordReset accepts matricula and cpf as proof of identity and
// returns the militar id used by ResetPassword. Both fields are semi-public,
// so this is a low-assurance recovery path.
func (s *AuthService) RequestPasswordReset(ctx context.Context, matricula, cpf string) (string, error) {
	matricula, cpf = strings.TrimSpace(matricula), strings.TrimSpace(cpf)
	if matricula == "" || cpf == "" {
		return "", fmt.Errorf("%w: matrícula e cpf são obrigatórios", domain.ErrValidation)
	}

	m, err := s.repo.FindByMatriculaAndCPF(ctx, matricula, cpf)
	if err != nil {
		return "", err
	}

	if s.resets != nil {
		if err := s.resets.Open(ctx, m.ID); err != nil {
			return "", fmt.Errorf("open reset ticket: %w", err)
		}
	}

	s.log.Warn().Str("militar_id", m.ID).Msg("password reset requested")
	return m.ID, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, id, novaSenha string) error {
	if strings.TrimSpace(id) == "" || novaSenha == "" {
		return fmt.Errorf("%w: id e nova senha são obrigatórios", domain.ErrValidation)
	}

	// Hash before consuming so a rejected password leaves the ticket open.
	hash, err := s.hash(novaSenha)
	if err != nil {
		return err
	}

	if s.resets != nil {
		ok, err := s.resets.Consume(ctx, id)
		if err != nil {
			return fmt.Errorf("consume reset ticket: %w", err)
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		if s.resets != nil {
			if rerr := s.resets.Open(ctx, id); rerr != nil {
				s.log.Error().Err(rerr).Str("militar_id", id).Msg("reopen reset ticket")
			}
		}
		return err
	}

	s.log.Warn().Str("militar_id", id).Msg("password reset")
	return nil
}

func (s *AuthService) hash(senha string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(senha), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: senha muito longa", domain.ErrValidation)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sirene-dummy-password"), bcrypt.DefaultCost)
