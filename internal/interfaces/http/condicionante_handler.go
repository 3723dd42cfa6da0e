package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain"
)

// CondicionanteHandler trata as requisições HTTP para Condicionante (protegido).
type CondicionanteHandler struct {
	uc *usecase.CondicionanteUseCase
}

// NewCondicionanteHandler constrói o handler.
func NewCondicionanteHandler(uc *usecase.CondicionanteUseCase) *CondicionanteHandler {
	return &CondicionanteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar condicionante numa licença
// @Tags         condicionantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        laoId  path  string                          true  "ID da licença"
// @Param        body   body  dto.CreateCondicionanteRequest  true  "Nome, frequência e intervalo"
// @Success      201    {object}  dto.CondicionanteResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/laos/{laoId}/condicionantes [post]
func (h *CondicionanteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCondicionanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Params("laoId"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "licença não encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe condicionante com esse nome nesta licença"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome obrigatório; personalizada exige meses_intervalo > 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByLao godoc
// @Summary      Listar condicionantes de uma licença
// @Tags         condicionantes
// @Security     Bearer
// @Produce      json
// @Param        laoId  path  string  true  "ID da licença"
// @Success      200    {array}  dto.CondicionanteResponse
// @Router       /api/laos/{laoId}/condicionantes [get]
func (h *CondicionanteHandler) ListByLao(c *fiber.Ctx) error {
	out, err := h.uc.ListByLao(c.Params("laoId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter condicionante por ID
// @Tags         condicionantes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.CondicionanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id} [get]
func (h *CondicionanteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "condicionante não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar condicionante
// @Tags         condicionantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID da condicionante"
// @Param        body  body  dto.UpdateCondicionanteRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.CondicionanteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id} [put]
func (h *CondicionanteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCondicionanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe condicionante com esse nome nesta licença"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "frequência/intervalo/data inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "condicionante não encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir condicionante (e suas vistorias)
// @Tags         condicionantes
// @Security     Bearer
// @Param        id  path  string  true  "ID da condicionante"
// @Success      204
// @Router       /api/condicionantes/{id} [delete]
func (h *CondicionanteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Agenda godoc
// @Summary      Agenda de vistorias projetadas para um ano
// @Tags         condicionantes
// @Security     Bearer
// @Produce      json
// @Param        id   path   string  true   "ID da condicionante"
// @Param        ano  query  int     false  "Ano (default: corrente)"
// @Success      200  {object}  dto.AgendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id}/agenda [get]
func (h *CondicionanteHandler) Agenda(c *fiber.Ctx) error {
	ano := c.QueryInt("ano", time.Now().Year())
	out, err := h.uc.Agenda(c.Params("id"), ano)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "condicionante não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
