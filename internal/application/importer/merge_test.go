package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

func TestMergeCondicionante_UneDatasERecalculaUltima(t *testing.T) {
	existente := CondicionanteImportada{
		Nome:           "Monitoramento",
		Frequencia:     lao.FreqTrimestral,
		DatasVistoria:  []string{"2024-01-10", "2024-04-10"},
		UltimaVistoria: "2024-04-10",
	}
	nova := CondicionanteImportada{
		Nome:           "monitoramento",
		Frequencia:     lao.FreqSemestral,
		DatasVistoria:  []string{"2024-04-10", "2024-07-10"},
		UltimaVistoria: "2024-07-10",
	}

	// Rótulo vazio na nova ocorrência: frequência existente é mantida.
	out := mergeCondicionante(existente, nova, false)
	assert.Equal(t, []string{"2024-01-10", "2024-04-10", "2024-07-10"}, out.DatasVistoria)
	assert.Equal(t, "2024-07-10", out.UltimaVistoria)
	assert.Equal(t, lao.FreqTrimestral, out.Frequencia)

	// Rótulo preenchido: a frequência nova prevalece.
	out = mergeCondicionante(existente, nova, true)
	assert.Equal(t, lao.FreqSemestral, out.Frequencia)

	// O merge devolve valor novo: os argumentos não são mutados.
	assert.Equal(t, []string{"2024-01-10", "2024-04-10"}, existente.DatasVistoria)
}

func TestPreencherItem_CapaVenceEmConflito(t *testing.T) {
	capa := ItemImportado{
		NumeroLao:      "LAO 10/2023",
		Empreendimento: "Fazenda Azul",
		Validade:       "",
		Processo:       "PROC-CAPA",
		Detalhes: []entity.DetalheKV{
			{Chave: "Órgão", Valor: "IMA", Ordem: 0},
		},
	}
	detalhe := ItemImportado{
		NumeroLao:      "LAO 10/2023",
		Empreendimento: "FAZENDA AZUL",
		Validade:       "2025-06-30",
		Processo:       "PROC-DETALHE",
		Detalhes: []entity.DetalheKV{
			{Chave: "órgão", Valor: "ima", Ordem: 0}, // duplicata normalizada
			{Chave: "Município", Valor: "Chapecó", Ordem: 1},
		},
	}

	out := preencherItem(capa, detalhe)
	// Campo vazio da capa é preenchido; campo preenchido não é sobrescrito.
	assert.Equal(t, "2025-06-30", out.Validade)
	assert.Equal(t, "PROC-CAPA", out.Processo)
	assert.Equal(t, "Fazenda Azul", out.Empreendimento)
	// Detalhes deduplicados por chave+valor normalizados, ordem renumerada.
	assert.Len(t, out.Detalhes, 2)
	assert.Equal(t, "Órgão", out.Detalhes[0].Chave)
	assert.Equal(t, 0, out.Detalhes[0].Ordem)
	assert.Equal(t, "Município", out.Detalhes[1].Chave)
	assert.Equal(t, 1, out.Detalhes[1].Ordem)
}

func TestUnirDatas_DeduplicaEOrdena(t *testing.T) {
	out := unirDatas([]string{"2024-05-01", "2024-01-01"}, []string{"2024-01-01", "2024-03-01", ""})
	assert.Equal(t, []string{"2024-01-01", "2024-03-01", "2024-05-01"}, out)

	assert.Empty(t, unirDatas(nil, nil))
}

func TestMaxData(t *testing.T) {
	assert.Equal(t, "2024-12-01", maxData([]string{"2024-01-01", "2024-12-01"}))
	assert.Equal(t, "2025-01-01", maxData([]string{"2024-12-01"}, "2025-01-01", ""))
	assert.Equal(t, "", maxData(nil))
}
