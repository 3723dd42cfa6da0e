package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/application/importer"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
)

// relatorioGenerator contrato mínimo para gerar o PDF do resumo.
// Implementado por *pdf.ImportReportGenerator; a interface evita acoplar o
// handler à infraestrutura de PDF.
type relatorioGenerator interface {
	Generate(resumo *importer.Resumo) ([]byte, error)
}

// ImportHandler trata o upload da planilha e o relatório da última execução.
type ImportHandler struct {
	uc  *usecase.ImportUseCase
	pdf relatorioGenerator
}

// NewImportHandler constrói o handler de importação.
func NewImportHandler(uc *usecase.ImportUseCase, pdf relatorioGenerator) *ImportHandler {
	return &ImportHandler{uc: uc, pdf: pdf}
}

// Upload godoc
// @Summary      Importar planilha de licenças
// @Description  Multipart com o campo "arquivo" (.xlsx). Erros de dados voltam dentro do resumo; a execução sempre conclui.
// @Tags         importacao
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Planilha .xlsx"
// @Success      200  {object}  importer.Resumo
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/importacoes [post]
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'arquivo' obrigatório"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}

	resumo, err := h.uc.Executar(data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resumo)
}

// Relatorio godoc
// @Summary      Relatório em PDF da última importação
// @Tags         importacao
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/importacoes/relatorio [get]
func (h *ImportHandler) Relatorio(c *fiber.Ctx) error {
	resumo := h.uc.UltimoResumo()
	if resumo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nenhuma importação executada ainda"})
	}
	doc, err := h.pdf.Generate(resumo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-importacao.pdf"`)
	return c.Send(doc)
}
