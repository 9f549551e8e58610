package ports

import (
	"context"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// ListAuditoriaFilter narrows the audit listing. Zero values mean no filter.
type ListAuditoriaFilter struct {
	IDMilitar string
	Offset    int
	Limit     int
}

// AuditRepository is the append-only audit store.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.LogAuditoria) error
	// List returns entries newest first and the total matching count.
	List(ctx context.Context, filter ListAuditoriaFilter) ([]*domain.LogAuditoria, int64, error)
}

// AuditRecorder accepts entries for asynchronous persistence. Record must not
// block the caller; an error means the entry was not accepted.
type AuditRecorder interface {
	Record(entry domain.LogAuditoria) error
}

// AuditoriaPage is one page of audit entries.
type AuditoriaPage struct {
	Items      []*domain.LogAuditoria
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type AuditService interface {
	List(ctx context.Context, idMilitar string, page, limit int) (*AuditoriaPage, error)
	Export(ctx context.Context, idMilitar string) ([]byte, error)
}
