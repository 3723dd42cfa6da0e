package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain"
)

// VistoriaHandler trata o registro manual e a consulta de vistorias (protegido).
type VistoriaHandler struct {
	uc *usecase.VistoriaUseCase
}

// NewVistoriaHandler constrói o handler.
func NewVistoriaHandler(uc *usecase.VistoriaUseCase) *VistoriaHandler {
	return &VistoriaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar vistoria realizada
// @Tags         vistorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        condicionanteId  path  string                    true  "ID da condicionante"
// @Param        body             body  dto.CreateVistoriaRequest true  "Data ISO e observação"
// @Success      201  {object}  dto.VistoriaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{condicionanteId}/vistorias [post]
func (h *VistoriaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CreateVistoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Params("condicionanteId"), in, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data é obrigatória no formato AAAA-MM-DD"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "condicionante não encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe vistoria nessa data para esta condicionante"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCondicionante godoc
// @Summary      Listar vistorias de uma condicionante
// @Tags         vistorias
// @Security     Bearer
// @Produce      json
// @Param        condicionanteId  path  string  true  "ID da condicionante"
// @Success      200  {array}  dto.VistoriaResponse
// @Router       /api/condicionantes/{condicionanteId}/vistorias [get]
func (h *VistoriaHandler) ListByCondicionante(c *fiber.Ctx) error {
	out, err := h.uc.ListByCondicionante(c.Params("condicionanteId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByLao godoc
// @Summary      Listar vistorias de uma licença
// @Tags         vistorias
// @Security     Bearer
// @Produce      json
// @Param        laoId  path  string  true  "ID da licença"
// @Success      200    {array}  dto.VistoriaResponse
// @Router       /api/laos/{laoId}/vistorias [get]
func (h *VistoriaHandler) ListByLao(c *fiber.Ctx) error {
	out, err := h.uc.ListByLao(c.Params("laoId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir vistoria
// @Tags         vistorias
// @Security     Bearer
// @Param        id  path  string  true  "ID da vistoria"
// @Success      204
// @Router       /api/vistorias/{id} [delete]
func (h *VistoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
