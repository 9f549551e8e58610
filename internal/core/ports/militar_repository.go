package ports

import (
	"context"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// MilitarRepository persists militares. Implementations translate unique
// violations to domain.ErrDuplicateKey and missing rows to domain.ErrNotFound.
type MilitarRepository interface {
	Create(ctx context.Context, m *domain.Militar) error
	FindByID(ctx context.Context, id string) (*domain.Militar, error)
	FindByMatricula(ctx context.Context, matricula string) (*domain.Militar, error)
	FindByMatriculaAndCPF(ctx context.Context, matricula, cpf string) (*domain.Militar, error)
	// List returns one page ordered by nome and the total row count.
	List(ctx context.Context, offset, limit int) ([]*domain.Militar, int64, error)
	Update(ctx context.Context, m *domain.Militar) error
	UpdatePassword(ctx context.Context, id, senhaHash string) error
	Delete(ctx context.Context, id string) error
}
