package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// planilhaCompleta monta em memória um arquivo com capa e uma aba de detalhe
// que casam pela chave de importação.
func planilhaCompleta(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	require.NoError(t, f.SetSheetName("Sheet1", "Capa"))

	// Linha 1 é cabeçalho e deve ser ignorada.
	setRow(t, f, "Capa", 1, "Licença", "Condicionante", "Frequência")
	setRow(t, f, "Capa", 2, "LAO 123/2021 - Fazenda São João")
	setRow(t, f, "Capa", 3, "", "Monitoramento de Efluentes", "Trimestral", "15/01/2024", "15/04/2024")
	// Mesmo nome com caixa e espaços diferentes: deve colapsar na anterior.
	setRow(t, f, "Capa", 4, "", "monitoramento de efluentes ", "", "15/07/2024", "15/04/2024")
	setRow(t, f, "Capa", 5, "", "Relatório Anual", "a cada 5 meses")
	// Bloco multilinha: número na primeira linha, empreendimento nas demais.
	setRow(t, f, "Capa", 6, "LAO 77/2022\nSítio Verde")

	// Aba de detalhe do primeiro bloco.
	_, err := f.NewSheet("Fazenda São João")
	require.NoError(t, err)
	setRow(t, f, "Fazenda São João", 1, "Empreendimento", "Fazenda São João")
	setRow(t, f, "Fazenda São João", 2, "Nº da Licença", "LAO 123/2021")
	setRow(t, f, "Fazenda São João", 3, "Validade", "30/06/2025")
	setRow(t, f, "Fazenda São João", 4, "Data de Emissão", "30/06/2021")
	setRow(t, f, "Fazenda São João", 5, "Processo", "PROC-001")
	setRow(t, f, "Fazenda São João", 6, "Órgão Emissor", "IMA/SC")
	setRow(t, f, "Fazenda São João", 7, "", "valor sem chave é ignorado")

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func setRow(t *testing.T, f *excelize.File, aba string, linha int, valores ...string) {
	t.Helper()
	for i, v := range valores {
		cell, err := excelize.CoordinatesToCellName(i+1, linha)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(aba, cell, v))
	}
}

func TestParseWorkbook_CapaEDetalheMesclados(t *testing.T) {
	res := ParseWorkbook(planilhaCompleta(t))
	require.NotNil(t, res)

	// O bloco "LAO 77/2022" não tem validade em lugar nenhum: é filtrado com
	// erro citando o número.
	require.Len(t, res.Itens, 1)
	require.Len(t, res.ErrosParser, 1)
	assert.Contains(t, res.ErrosParser[0], "LAO 77/2022")

	item := res.Itens[0]
	assert.Equal(t, "LAO 123/2021", item.NumeroLao)
	assert.Equal(t, "Fazenda São João", item.Empreendimento)
	assert.Equal(t, "2025-06-30", item.Validade, "validade vem do detalhe em ISO")
	assert.Equal(t, "2021-06-30", item.Emissao)
	assert.Equal(t, "PROC-001", item.Processo)

	// Pares não reconhecidos viram DetalheKV na ordem de inserção.
	require.Len(t, item.Detalhes, 1)
	assert.Equal(t, "Órgão Emissor", item.Detalhes[0].Chave)
	assert.Equal(t, "IMA/SC", item.Detalhes[0].Valor)

	// As duas linhas de "Monitoramento de Efluentes" colapsaram numa só.
	require.Len(t, item.Condicionantes, 2)
	mon := item.Condicionantes[0]
	assert.Equal(t, "Monitoramento de Efluentes", mon.Nome)
	assert.Equal(t, lao.FreqTrimestral, mon.Frequencia,
		"rótulo vazio na segunda linha não sobrescreve a frequência")
	assert.Equal(t, []string{"2024-01-15", "2024-04-15", "2024-07-15"}, mon.DatasVistoria)
	assert.Equal(t, "2024-07-15", mon.UltimaVistoria)

	rel := item.Condicionantes[1]
	assert.Equal(t, lao.FreqPersonalizada, rel.Frequencia)
	assert.Equal(t, 5, rel.MesesIntervalo)
	assert.Empty(t, rel.DatasVistoria)
}

func TestParseWorkbook_SemCapa(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName("Sheet1", "Granja Primavera"))
	setRow(t, f, "Granja Primavera", 1, "Empreendimento", "Granja Primavera")
	setRow(t, f, "Granja Primavera", 2, "Licença de Operação", "LAO 55/2020")
	setRow(t, f, "Granja Primavera", 3, "Validade", "2026-01-31")
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res := ParseWorkbook(buf.Bytes())
	// Sem capa os itens vêm apenas do passe de detalhe, com um erro de parser
	// apontando a aba ausente.
	require.Len(t, res.Itens, 1)
	assert.Equal(t, "LAO 55/2020", res.Itens[0].NumeroLao)
	require.Len(t, res.ErrosParser, 1)
	assert.Contains(t, res.ErrosParser[0], "Capa")
}

func TestParseWorkbook_FallbacksDaAbaDeDetalhe(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName("Sheet1", "Capa"))
	setRow(t, f, "Capa", 1, "cabeçalho")

	// Aba sem licença nem empreendimento, mas com detalhes: usa o nome da aba.
	_, err := f.NewSheet("Aterro Norte")
	require.NoError(t, err)
	setRow(t, f, "Aterro Norte", 1, "Validade", "01/12/2025")
	setRow(t, f, "Aterro Norte", 2, "Município", "Joinville")

	// Aba completamente vazia: pulada em silêncio.
	_, err = f.NewSheet("Rascunho")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res := ParseWorkbook(buf.Bytes())
	require.Len(t, res.Itens, 1)
	assert.Equal(t, "LAO Aterro Norte", res.Itens[0].NumeroLao)
	assert.Equal(t, "Aterro Norte", res.Itens[0].Empreendimento)
	assert.Equal(t, "2025-12-01", res.Itens[0].Validade)
	assert.Empty(t, res.ErrosParser)
}

// Células tipadas como data (valores time.Time, não texto) são a forma mais
// comum nas planilhas reais. A leitura crua as expõe como serial numérico e
// elas devem decodificar igual às demais formas, tanto a validade da aba de
// detalhe quanto as colunas mensais da capa.
func TestParseWorkbook_CelulasDeDataTipadas(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName("Sheet1", "Capa"))

	setRow(t, f, "Capa", 1, "Licença", "Condicionante", "Frequência")
	setRow(t, f, "Capa", 2, "LAO 123/2021 - Fazenda São João")
	setRow(t, f, "Capa", 3, "", "Monitoramento de Efluentes", "Trimestral")
	require.NoError(t, f.SetCellValue("Capa", "D3",
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))

	_, err := f.NewSheet("Fazenda São João")
	require.NoError(t, err)
	setRow(t, f, "Fazenda São João", 1, "Empreendimento", "Fazenda São João")
	setRow(t, f, "Fazenda São João", 2, "Nº da Licença", "LAO 123/2021")
	require.NoError(t, f.SetCellValue("Fazenda São João", "A3", "Validade"))
	require.NoError(t, f.SetCellValue("Fazenda São João", "B3",
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res := ParseWorkbook(buf.Bytes())
	assert.Empty(t, res.ErrosParser)
	require.Len(t, res.Itens, 1)
	item := res.Itens[0]
	assert.Equal(t, "2025-06-30", item.Validade)
	require.Len(t, item.Condicionantes, 1)
	assert.Equal(t, []string{"2024-01-15"}, item.Condicionantes[0].DatasVistoria)
	assert.Equal(t, "2024-01-15", item.Condicionantes[0].UltimaVistoria)
}

func TestParseWorkbook_ArquivoInvalido(t *testing.T) {
	res := ParseWorkbook([]byte("isto não é uma planilha"))
	assert.Empty(t, res.Itens)
	require.Len(t, res.ErrosParser, 1)
}

func TestSepararCabecalhoLao(t *testing.T) {
	casos := []struct {
		texto   string
		numero  string
		empreen string
	}{
		{"LAO 123/2021 - Fazenda São João", "LAO 123/2021", "Fazenda São João"},
		{"LAO 77/2022\nSítio Verde", "LAO 77/2022", "Sítio Verde"},
		{"LAO 9/2020\nGranja\nPrimavera", "LAO 9/2020", "Granja Primavera"},
		{"LAO 5/2019", "LAO 5/2019", ""},
	}
	for _, c := range casos {
		numero, empreen := separarCabecalhoLao(c.texto)
		assert.Equal(t, c.numero, numero, c.texto)
		assert.Equal(t, c.empreen, empreen, c.texto)
	}
}
