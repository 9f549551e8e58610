package ports

import (
	"context"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// CreateMilitarInput carries the provisioning payload with the plaintext password.
type CreateMilitarInput struct {
	Nome         string
	Matricula    string
	CPF          string
	Posto        string
	Email        string
	Senha        string
	PerfilAcesso string
}

// UpdateMilitarInput is a partial update; nil fields are left untouched.
type UpdateMilitarInput struct {
	Nome         *string
	Matricula    *string
	CPF          *string
	Posto        *string
	Email        *string
	Senha        *string
	PerfilAcesso *string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string
	User  LoginUser
}

// LoginUser is the identity summary sent back with the token.
type LoginUser struct {
	Nome  string        `json:"nome"`
	Cargo domain.Perfil `json:"cargo"`
}

// MilitarPage is one page of the militar listing.
type MilitarPage struct {
	Items      []*domain.Militar
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type AuthService interface {
	Login(ctx context.Context, matricula, senha string) (*LoginResult, error)
	CreateIdentity(ctx context.Context, input CreateMilitarInput) (*domain.Militar, error)
	ListIdentities(ctx context.Context, page, limit int) (*MilitarPage, error)
	GetIdentity(ctx context.Context, id string) (*domain.Militar, error)
	UpdateIdentity(ctx context.Context, id string, input UpdateMilitarInput) (*domain.Militar, error)
	DeleteIdentity(ctx context.Context, id string) error
	RequestPasswordReset(ctx context.Context, matricula, cpf string) (string, error)
	ResetPassword(ctx context.Context, id, novaSenha string) error
}
