package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AuditoriaHandler struct {
	service ports.AuditService
	now     func() time.Time
}

func NewAuditoriaHandler(service ports.AuditService) *AuditoriaHandler {
	return &AuditoriaHandler{service: service, now: time.Now}
}

// List returns audit entries newest first.
//
// @Summary      Listar logs de auditoria
// @Tags         auditoria
// @Produce      json
// @Security     BearerAuth
// @Param        idMilitar  query     string  false  "Filtrar por militar"
// @Param        page       query     int     false  "Página (1..)"
// @Param        limit      query     int     false  "Itens por página (máx. 100)"
// @Success      200        {object}  response.Envelope{data=auditoriaListResponse}
// @Failure      403        {object}  response.Envelope
// @Router       /auditoria [get]
func (h *AuditoriaHandler) List(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	p, err := h.service.List(c.Request().Context(), c.QueryParam("idMilitar"), page, limit)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, "Logs de auditoria listados com sucesso", auditoriaListResponse{
		Logs:       p.Items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	})
}

// Export downloads the audit log as an Excel workbook.
//
// @Summary      Exportar logs de auditoria
// @Tags         auditoria
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        idMilitar  query  string  false  "Filtrar por militar"
// @Success      200
// @Failure      403  {object}  response.Envelope
// @Router       /auditoria/export [get]
func (h *AuditoriaHandler) Export(c echo.Context) error {
	out, err := h.service.Export(c.Request().Context(), c.QueryParam("idMilitar"))
	if err != nil {
		return err
	}

	name := fmt.Sprintf("auditoria_%s.xlsx", h.now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, mimeXLSX, out)
}
