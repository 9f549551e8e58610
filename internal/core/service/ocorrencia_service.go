package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const acaoRegistrada = "Ocorrência registrada"

var _ ports.OcorrenciaService = (*OcorrenciaService)(nil)

type OcorrenciaService struct {
	repo ports.OcorrenciaRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewOcorrenciaService(repo ports.OcorrenciaRepository, log zerolog.Logger) *OcorrenciaService {
	return &OcorrenciaService{repo: repo, log: log, now: time.Now}
}

// Create stores a new incident together with the registro of the militar
// who opened it.
func (s *OcorrenciaService) Create(ctx context.Context, in ports.CreateOcorrenciaInput, actor *domain.Identity) (*domain.Ocorrencia, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	o := &domain.Ocorrencia{
		ID:                uuid.NewString(),
		TipoOcorrencia:    strings.TrimSpace(in.TipoOcorrencia),
		Descricao:         strings.TrimSpace(in.Descricao),
		DataHora:          in.DataHora.UTC(),
		Cidade:            strings.TrimSpace(in.Cidade),
		Bairro:            strings.TrimSpace(in.Bairro),
		LocalizacaoGPS:    strings.TrimSpace(in.LocalizacaoGPS),
		Status:            strings.TrimSpace(in.Status),
		AssinaturaDigital: in.AssinaturaDigital,
		FotoURL:           strings.TrimSpace(in.FotoURL),
		VideoURL:          strings.TrimSpace(in.VideoURL),
	}
	if o.TipoOcorrencia == "" || o.Descricao == "" {
		return nil, fmt.Errorf("%w: tipo e descrição são obrigatórios", domain.ErrValidation)
	}

	now := s.now().UTC()
	if in.DataHora.IsZero() {
		o.DataHora = now
	}
	if o.Status == "" {
		o.Status = domain.StatusEmAberto
	}
	o.CreatedAt = now

	reg := domain.RegistroOcorrencia{
		ID:           uuid.NewString(),
		IDOcorrencia: o.ID,
		IDMilitar:    actor.ID,
		Acao:         acaoRegistrada,
		DataHora:     now,
	}
	if err := s.repo.Create(ctx, o, reg); err != nil {
		return nil, fmt.Errorf("create ocorrencia: %w", err)
	}
	o.Registros = []domain.RegistroOcorrencia{reg}

	s.log.Info().
		Str("ocorrencia_id", o.ID).
		Str("tipo", o.TipoOcorrencia).
		Str("militar_id", actor.ID).
		Msg("ocorrencia created")

	return o, nil
}

func (s *OcorrenciaService) Get(ctx context.Context, id string) (*domain.Ocorrencia, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OcorrenciaService) List(ctx context.Context, in ports.ListOcorrenciasInput) (*ports.OcorrenciaPage, error) {
	page, limit, offset := pageBounds(in.Page, in.Limit)

	items, total, err := s.repo.List(ctx, ports.ListOcorrenciasFilter{
		Status: strings.TrimSpace(in.Status),
		Tipo:   strings.TrimSpace(in.Tipo),
		Cidade: strings.TrimSpace(in.Cidade),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list ocorrencias: %w", err)
	}
	if items == nil {
		items = []*domain.Ocorrencia{}
	}

	return &ports.OcorrenciaPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateStatus stores the raw status and appends a registro naming the
// normalized bucket.
func (s *OcorrenciaService) UpdateStatus(ctx context.Context, id, status string, actor *domain.Identity) (*domain.Ocorrencia, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status é obrigatório", domain.ErrValidation)
	}

	reg := domain.RegistroOcorrencia{
		ID:           uuid.NewString(),
		IDOcorrencia: id,
		IDMilitar:    actor.ID,
		Acao:         "Status alterado para " + domain.NormalizeStatus(status),
		DataHora:     s.now().UTC(),
	}
	if err := s.repo.UpdateStatus(ctx, id, status, reg); err != nil {
		return nil, err
	}

	s.log.Info().Str("ocorrencia_id", id).Str("status", status).Str("militar_id", actor.ID).Msg("ocorrencia status updated")
	return s.repo.FindByID(ctx, id)
}

// Dashboard folds raw statuses into the three normalized buckets.
func (s *OcorrenciaService) Dashboard(ctx context.Context) (*ports.DashboardMetrics, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	byTipo, err := s.repo.CountByTipo(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by tipo: %w", err)
	}

	m := &ports.DashboardMetrics{
		PorStatus: map[string]int64{
			domain.StatusEmAberto:  0,
			domain.StatusAndamento: 0,
			domain.StatusFechado:   0,
		},
		PorTipo: make(map[string]int64, len(byTipo)),
	}
	for raw, n := range byStatus {
		m.PorStatus[domain.NormalizeStatus(raw)] += n
		m.Total += n
	}
	for tipo, n := range byTipo {
		m.PorTipo[tipo] = n
	}
	return m, nil
}
