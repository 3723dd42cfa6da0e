package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain"
)

// FilialHandler trata as requisições HTTP para Filial (protegido).
type FilialHandler struct {
	uc *usecase.FilialUseCase
}

// NewFilialHandler constrói o handler.
func NewFilialHandler(uc *usecase.FilialUseCase) *FilialHandler {
	return &FilialHandler{uc: uc}
}

// Create godoc
// @Summary      Criar filial
// @Tags         filiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFilialRequest  true  "Dados da filial"
// @Success      201   {object}  dto.FilialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/filiais [post]
func (h *FilialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe filial com esse nome"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter filial por ID
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da filial"
// @Success      200  {object}  dto.FilialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/filiais/{id} [get]
func (h *FilialHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "filial não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar filial
// @Tags         filiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID da filial"
// @Param        body  body  dto.UpdateFilialRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.FilialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/filiais/{id} [put]
func (h *FilialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "filial não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar filiais
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FilialListResponse
// @Router       /api/filiais [get]
func (h *FilialHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir filial
// @Tags         filiais
// @Security     Bearer
// @Param        id  path  string  true  "ID da filial"
// @Success      204
// @Router       /api/filiais/{id} [delete]
func (h *FilialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lê limit/offset da query com os mesmos limites em todas as listagens.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
