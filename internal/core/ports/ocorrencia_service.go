package ports

import (
	"context"
	"time"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// CreateOcorrenciaInput is the DTO passed from the transport layer.
type CreateOcorrenciaInput struct {
	TipoOcorrencia    string
	Descricao         string
	DataHora          time.Time
	Cidade            string
	Bairro            string
	LocalizacaoGPS    string
	Status            string
	AssinaturaDigital string
	FotoURL           string
	VideoURL          string
}

// ListOcorrenciasInput carries the listing parameters (1-based page).
type ListOcorrenciasInput struct {
	Status string
	Tipo   string
	Cidade string
	Page   int
	Limit  int
}

// OcorrenciaPage is one page of incidents.
type OcorrenciaPage struct {
	Items      []*domain.Ocorrencia
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DashboardMetrics feeds the dashboard cards.
type DashboardMetrics struct {
	Total     int64            `json:"totalOcorrencias"`
	PorStatus map[string]int64 `json:"porStatus"`
	PorTipo   map[string]int64 `json:"porTipo"`
}

type OcorrenciaService interface {
	Create(ctx context.Context, input CreateOcorrenciaInput, actor *domain.Identity) (*domain.Ocorrencia, error)
	Get(ctx context.Context, id string) (*domain.Ocorrencia, error)
	List(ctx context.Context, input ListOcorrenciasInput) (*OcorrenciaPage, error)
	UpdateStatus(ctx context.Context, id, status string, actor *domain.Identity) (*domain.Ocorrencia, error)
	Dashboard(ctx context.Context) (*DashboardMetrics, error)
}
