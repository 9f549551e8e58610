package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// maxExportRows caps a single export.
const maxExportRows = 10000

// AuditRenderer turns audit entries into a downloadable document.
type AuditRenderer interface {
	RenderAuditoria(entries []*domain.LogAuditoria) ([]byte, error)
}

var _ ports.AuditService = (*AuditService)(nil)

type AuditService struct {
	repo     ports.AuditRepository
	renderer AuditRenderer
}

func NewAuditService(repo ports.AuditRepository, renderer AuditRenderer) *AuditService {
	return &AuditService{repo: repo, renderer: renderer}
}

func (s *AuditService) List(ctx context.Context, idMilitar string, page, limit int) (*ports.AuditoriaPage, error) {
	page, limit, offset := pageBounds(page, limit)

	items, total, err := s.repo.List(ctx, ports.ListAuditoriaFilter{
		IDMilitar: strings.TrimSpace(idMilitar),
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	if items == nil {
		items = []*domain.LogAuditoria{}
	}

	return &ports.AuditoriaPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Export renders the newest entries, up to maxExportRows.
func (s *AuditService) Export(ctx context.Context, idMilitar string) ([]byte, error) {
	items, _, err := s.repo.List(ctx, ports.ListAuditoriaFilter{
		IDMilitar: strings.TrimSpace(idMilitar),
		Limit:     maxExportRows,
	})
	if err != nil {
		return nil, fmt.Errorf("export auditoria: %w", err)
	}

	out, err := s.renderer.RenderAuditoria(items)
	if err != nil {
		return nil, fmt.Errorf("render auditoria: %w", err)
	}
	return out, nil
}
