// Package pdf gera o relatório da última importação de planilha em PDF:
// contagens da execução, erros de parse, erros de escrita e licenças cuja
// filial ficou pendente de resolução manual.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + data/hora da geração                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: criados / atualizados / condicionantes / vistorias │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ERROS DE LEITURA (parser)                                  │
//	│  ERROS DE IMPORTAÇÃO (escrita)                              │
//	│  FILIAIS PENDENTES: nº LAO | empreendimento | motivo        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/AmbientalSC/licencas/internal/application/importer"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 98, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ImportReportGenerator gera o PDF do resumo de importação usando Maroto v2.
type ImportReportGenerator struct{}

// NewImportReportGenerator constrói o gerador.
func NewImportReportGenerator() *ImportReportGenerator { return &ImportReportGenerator{} }

// Generate gera o PDF e devolve seus bytes.
func (g *ImportReportGenerator) Generate(resumo *importer.Resumo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Importação de Licenças", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumoRows(resumo)...)

	if len(resumo.ErrosParser) > 0 {
		m.AddRows(sectionTitle("ERROS DE LEITURA DA PLANILHA"))
		m.AddRows(messageRows(resumo.ErrosParser)...)
	}
	if len(resumo.ErrosImportacao) > 0 {
		m.AddRows(sectionTitle("ERROS DE IMPORTAÇÃO"))
		m.AddRows(messageRows(resumo.ErrosImportacao)...)
	}
	if len(resumo.ItensPendentes) > 0 {
		m.AddRows(sectionTitle("LICENÇAS COM FILIAL PENDENTE"))
		m.AddRows(pendentesHeaderRow())
		m.AddRows(pendentesRows(resumo.ItensPendentes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título do relatório + data/hora da geração.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Importação de Licenças LAO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório da última execução", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// resumoRows: contagens da execução em duas colunas.
func resumoRows(r *importer.Resumo) []core.Row {
	item := func(label string, n int) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			item("Licenças criadas", r.Criados),
			item("Licenças atualizadas", r.Atualizados),
			item("Filiais pendentes", r.FiliaisPendentes),
		),
		row.New(14).Add(
			item("Condicionantes criadas", r.CondCriadas),
			item("Condicionantes atualizadas", r.CondAtualizadas),
			item("Vistorias criadas", r.VistoriasCriadas),
		),
		row.New(14).Add(
			item("Vistorias ignoradas (duplicadas)", r.VistoriasIgnoradas),
			item("Erros de leitura", len(r.ErrosParser)),
			item("Erros de importação", len(r.ErrosImportacao)),
		),
	}
}

func sectionTitle(titulo string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 3,
		})),
	)
}

// messageRows: uma linha por mensagem de erro.
func messageRows(msgs []string) []core.Row {
	result := make([]core.Row, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, row.New(6).Add(
			col.New(12).Add(text.New("• "+msg, props.Text{Size: 8, Top: 1, Left: 2})),
		))
	}
	return result
}

func pendentesHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Nº LAO", 3),
		h("Empreendimento", 5),
		h("Motivo", 4),
	)
}

// pendentesRows: uma fila por licença com filial não resolvida.
func pendentesRows(itens []importer.ItemPendente) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(it.NumeroLao, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(it.Empreendimento, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(it.Motivo, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return result
}
