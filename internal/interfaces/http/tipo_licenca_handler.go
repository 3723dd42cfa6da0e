package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain"
)

// TipoLicencaHandler trata as requisições HTTP para TipoLicenca (protegido).
type TipoLicencaHandler struct {
	uc *usecase.TipoLicencaUseCase
}

// NewTipoLicencaHandler constrói o handler.
func NewTipoLicencaHandler(uc *usecase.TipoLicencaUseCase) *TipoLicencaHandler {
	return &TipoLicencaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar tipo de licença
// @Tags         tipos-licenca
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTipoLicencaRequest  true  "Nome e prazos em dias"
// @Success      201   {object}  dto.TipoLicencaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tipos-licenca [post]
func (h *TipoLicencaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoLicencaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome obrigatório e dias não negativos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe tipo com esse nome"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter tipo de licença por ID
// @Tags         tipos-licenca
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do tipo"
// @Success      200  {object}  dto.TipoLicencaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos-licenca/{id} [get]
func (h *TipoLicencaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de licença não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar tipo de licença
// @Tags         tipos-licenca
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID do tipo"
// @Param        body  body  dto.UpdateTipoLicencaRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.TipoLicencaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tipos-licenca/{id} [put]
func (h *TipoLicencaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTipoLicencaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dias não podem ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de licença não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de licença
// @Tags         tipos-licenca
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TipoLicencaListResponse
// @Router       /api/tipos-licenca [get]
func (h *TipoLicencaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir tipo de licença
// @Tags         tipos-licenca
// @Security     Bearer
// @Param        id  path  string  true  "ID do tipo"
// @Success      204
// @Router       /api/tipos-licenca/{id} [delete]
func (h *TipoLicencaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
