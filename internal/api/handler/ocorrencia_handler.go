package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/metrics"
	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

type OcorrenciaHandler struct {
	service ports.OcorrenciaService
}

func NewOcorrenciaHandler(service ports.OcorrenciaService) *OcorrenciaHandler {
	return &OcorrenciaHandler{service: service}
}

func ocorrenciaNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Ocorrência não encontrada")
	}
	return err
}

// Create registers an incident on behalf of the authenticated militar.
//
// @Summary      Registrar ocorrência
// @Tags         ocorrencias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOcorrenciaRequest  true  "Dados da ocorrência"
// @Success      201   {object}  response.Envelope{data=ocorrenciaResponse}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Router       /ocorrencias [post]
func (h *OcorrenciaHandler) Create(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createOcorrenciaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.service.Create(c.Request().Context(), toCreateOcorrenciaInput(req), actor)
	if err != nil {
		return err
	}
	metrics.OcorrenciasCreatedTotal.Inc()

	return response.OK(c, http.StatusCreated, "Ocorrência registrada com sucesso", toOcorrenciaResponse(o))
}

// List returns incidents newest first.
//
// @Summary      Listar ocorrências
// @Tags         ocorrencias
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status"
// @Param        tipo    query     string  false  "Tipo de ocorrência"
// @Param        cidade  query     string  false  "Cidade"
// @Param        page    query     int     false  "Página (1..)"
// @Param        limit   query     int     false  "Itens por página (máx. 100)"
// @Success      200     {object}  response.Envelope{data=ocorrenciaListResponse}
// @Failure      401     {object}  response.Envelope
// @Router       /ocorrencias [get]
func (h *OcorrenciaHandler) List(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	p, err := h.service.List(c.Request().Context(), ports.ListOcorrenciasInput{
		Status: c.QueryParam("status"),
		Tipo:   c.QueryParam("tipo"),
		Cidade: c.QueryParam("cidade"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, "Ocorrências listadas com sucesso", toOcorrenciaListResponse(p))
}

// Get returns an incident with its registros.
//
// @Summary      Buscar ocorrência
// @Tags         ocorrencias
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da ocorrência"
// @Success      200  {object}  response.Envelope{data=ocorrenciaResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /ocorrencias/{id} [get]
func (h *OcorrenciaHandler) Get(c echo.Context) error {
	o, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ocorrenciaNotFound(err)
	}
	return response.OK(c, http.StatusOK, "Ocorrência encontrada", toOcorrenciaResponse(o))
}

// UpdateStatus changes the status and appends a registro.
//
// @Summary      Alterar status da ocorrência
// @Tags         ocorrencias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "ID da ocorrência"
// @Param        body  body      updateStatusRequest  true  "Novo status"
// @Success      200   {object}  response.Envelope{data=ocorrenciaResponse}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /ocorrencias/{id}/status [patch]
func (h *OcorrenciaHandler) UpdateStatus(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		return ocorrenciaNotFound(err)
	}
	return response.OK(c, http.StatusOK, "Status atualizado com sucesso", toOcorrenciaResponse(o))
}

// Dashboard returns the counters shown on the dashboard cards.
//
// @Summary      Métricas do dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=ports.DashboardMetrics}
// @Router       /dashboard/metricas [get]
func (h *OcorrenciaHandler) Dashboard(c echo.Context) error {
	m, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, "Métricas carregadas", m)
}
