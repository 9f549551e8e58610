package ports

import (
	"context"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// ListOcorrenciasFilter carries the query parameters of the incident listing.
type ListOcorrenciasFilter struct {
	Status string // raw status, matched case-insensitively
	Tipo   string
	Cidade string
	Offset int
	Limit  int
}

// OcorrenciaRepository persists incidents and their registros.
type OcorrenciaRepository interface {
	// Create inserts the incident and its first registro atomically.
	Create(ctx context.Context, o *domain.Ocorrencia, first domain.RegistroOcorrencia) error
	FindByID(ctx context.Context, id string) (*domain.Ocorrencia, error)
	List(ctx context.Context, filter ListOcorrenciasFilter) ([]*domain.Ocorrencia, int64, error)
	// UpdateStatus sets the status and appends reg in one transaction.
	UpdateStatus(ctx context.Context, id, status string, reg domain.RegistroOcorrencia) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByTipo(ctx context.Context) (map[string]int64, error)
}
