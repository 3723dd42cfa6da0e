package lao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

func TestResolveFrequencia_PalavrasChave(t *testing.T) {
	casos := []struct {
		rotulo   string
		esperado lao.Frequencia
	}{
		{"Mensal", lao.FreqMensal},
		{"Vistoria Bimestral", lao.FreqBimestral},
		{"Vistoria Trimestral", lao.FreqTrimestral},
		{"monitoramento SEMESTRAL", lao.FreqSemestral},
		{"Anual", lao.FreqAnual},
		{"TRIMESTRAL", lao.FreqTrimestral},
	}
	for _, c := range casos {
		r := lao.ResolveFrequencia(c.rotulo)
		assert.Equal(t, c.esperado, r.Preset, "rótulo %q", c.rotulo)
		assert.Zero(t, r.MesesIntervalo, "presets fixos não carregam intervalo")
	}
}

func TestResolveFrequencia_IntervaloPersonalizado(t *testing.T) {
	r := lao.ResolveFrequencia("a cada 5 meses")
	assert.Equal(t, lao.FreqPersonalizada, r.Preset)
	assert.Equal(t, 5, r.MesesIntervalo)

	r = lao.ResolveFrequencia("4 m")
	assert.Equal(t, lao.FreqPersonalizada, r.Preset)
	assert.Equal(t, 4, r.MesesIntervalo)

	// Zero meses não é um intervalo válido: cai no padrão anual.
	r = lao.ResolveFrequencia("a cada 0 meses")
	assert.Equal(t, lao.FreqAnual, r.Preset)
}

// Sem palavra-chave e sem padrão numérico o produto assume anual — fallback
// deliberado, não erro. Rótulo vazio idem.
func TestResolveFrequencia_PadraoAnual(t *testing.T) {
	for _, rotulo := range []string{"", "quando necessário", "conforme demanda"} {
		r := lao.ResolveFrequencia(rotulo)
		assert.Equal(t, lao.FreqAnual, r.Preset, "rótulo %q", rotulo)
	}
}

func TestMesesDaFrequencia_Tabela(t *testing.T) {
	casos := []struct {
		preset   lao.Frequencia
		custom   int
		esperado int
		ok       bool
	}{
		{lao.FreqMensal, 0, 1, true},
		{lao.FreqBimestral, 0, 2, true},
		{lao.FreqTrimestral, 0, 3, true},
		{lao.FreqSemestral, 0, 6, true},
		{lao.FreqAnual, 0, 12, true},
		{lao.FreqPersonalizada, 5, 5, true},
		{lao.FreqPersonalizada, 0, 0, false},
		{lao.FreqPersonalizada, -2, 0, false},
		{lao.Frequencia("desconhecida"), 0, 0, false},
	}
	for _, c := range casos {
		n, ok := lao.MesesDaFrequencia(c.preset, c.custom)
		assert.Equal(t, c.ok, ok, "preset %s", c.preset)
		assert.Equal(t, c.esperado, n, "preset %s", c.preset)
	}
}
