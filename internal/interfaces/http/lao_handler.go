package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain"
)

// LaoHandler trata as requisições HTTP para licenças LAO (protegido).
type LaoHandler struct {
	uc *usecase.LaoUseCase
}

// NewLaoHandler constrói o handler.
func NewLaoHandler(uc *usecase.LaoUseCase) *LaoHandler {
	return &LaoHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar licença
// @Tags         laos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLaoRequest  true  "Dados da licença (validade ISO obrigatória)"
// @Success      201   {object}  dto.LaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/laos [post]
func (h *LaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrValidadeAusente {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "validade é obrigatória no formato AAAA-MM-DD"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero_lao e empreendimento são obrigatórios"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "licença já cadastrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter licença por ID
// @Tags         laos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da licença"
// @Success      200  {object}  dto.LaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/laos/{id} [get]
func (h *LaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "licença não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar licença
// @Tags         laos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID da licença"
// @Param        body  body  dto.UpdateLaoRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.LaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/laos/{id} [put]
func (h *LaoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrValidadeAusente {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "validade deve estar no formato AAAA-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "licença não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar licenças
// @Tags         laos
// @Security     Bearer
// @Produce      json
// @Param        todas   query  bool  false  "Incluir inativas"  default(false)
// @Param        limit   query  int   false  "Limite"            default(20)
// @Param        offset  query  int   false  "Offset"            default(0)
// @Success      200     {object}  dto.LaoListResponse
// @Router       /api/laos [get]
func (h *LaoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	somenteAtivos := !c.QueryBool("todas", false)
	out, err := h.uc.List(somenteAtivos, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Desativar godoc
// @Summary      Desativar licença (exclusão lógica)
// @Tags         laos
// @Security     Bearer
// @Param        id  path  string  true  "ID da licença"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/laos/{id}/desativar [post]
func (h *LaoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "licença não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Excluir licença (física, com cascata)
// @Tags         laos
// @Security     Bearer
// @Param        id  path  string  true  "ID da licença"
// @Success      204
// @Router       /api/laos/{id} [delete]
func (h *LaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
