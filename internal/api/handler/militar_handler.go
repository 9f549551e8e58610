package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirene/bombeiros-api/internal/api/response"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const msgMilitarNotFound = "Militar não encontrado"

// MilitarHandler serves the militar management endpoints under /api/auth.
type MilitarHandler struct {
	authService ports.AuthService
}

func NewMilitarHandler(authService ports.AuthService) *MilitarHandler {
	return &MilitarHandler{authService: authService}
}

func militarNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msgMilitarNotFound)
	}
	return err
}

// Create provisions a militar.
//
// @Summary      Criar militar
// @Tags         militares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMilitarRequest  true  "Dados do militar"
// @Success      201   {object}  response.Envelope{data=domain.Militar}
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Router       /auth/militar [post]
func (h *MilitarHandler) Create(c echo.Context) error {
	var req createMilitarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.authService.CreateIdentity(c.Request().Context(), toCreateMilitarInput(req))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, "Militar criado com sucesso", m)
}

// List returns one page of militares ordered by nome.
//
// @Summary      Listar militares
// @Tags         militares
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Página (1..)"
// @Param        limit  query     int  false  "Itens por página (máx. 100)"
// @Success      200    {object}  response.Envelope{data=militarListResponse}
// @Failure      401    {object}  response.Envelope
// @Failure      403    {object}  response.Envelope
// @Router       /auth/militares [get]
func (h *MilitarHandler) List(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	p, err := h.authService.ListIdentities(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, "Militares listados com sucesso", militarListResponse{
		Militares:  p.Items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	})
}

// Get returns one militar.
//
// @Summary      Buscar militar
// @Tags         militares
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do militar"
// @Success      200  {object}  response.Envelope{data=domain.Militar}
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /auth/militar/{id} [get]
func (h *MilitarHandler) Get(c echo.Context) error {
	m, err := h.authService.GetIdentity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return militarNotFound(err)
	}
	return response.OK(c, http.StatusOK, "Militar encontrado", m)
}

// Update applies a partial update. A militar may update itself; ADMIN may
// update anyone and is the only profile allowed to change perfilAcesso.
//
// @Summary      Atualizar militar
// @Tags         militares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "ID do militar"
// @Param        body  body      updateMilitarRequest  true  "Campos a alterar"
// @Success      200   {object}  response.Envelope{data=domain.Militar}
// @Failure      400   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /auth/militar/{id} [put]
func (h *MilitarHandler) Update(c echo.Context) error {
	actor, err := currentIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	isAdmin := actor.PerfilAcesso == domain.PerfilAdmin
	if !isAdmin && actor.ID != id {
		return domain.ErrForbidden
	}

	var req updateMilitarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.PerfilAcesso != nil && !isAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Apenas administradores podem alterar o perfil de acesso")
	}

	m, err := h.authService.UpdateIdentity(c.Request().Context(), id, toUpdateMilitarInput(req))
	if err != nil {
		return militarNotFound(err)
	}
	return response.OK(c, http.StatusOK, "Militar atualizado com sucesso", m)
}

// Delete removes a militar. Militares referenced by incident registros
// cannot be removed.
//
// @Summary      Remover militar
// @Tags         militares
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do militar"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /auth/militar/{id} [delete]
func (h *MilitarHandler) Delete(c echo.Context) error {
	if err := h.authService.DeleteIdentity(c.Request().Context(), c.Param("id")); err != nil {
		return militarNotFound(err)
	}
	return response.OK(c, http.StatusOK, "Militar removido com sucesso", nil)
}
