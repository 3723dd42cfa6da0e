package lao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

func TestNormalizeText_RemoveAcentosEEspacos(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Condicionante", "condicionante"},
		{"  Monitoramento   de Efluentes  ", "monitoramento de efluentes"},
		{"EMPREENDIMENTO São João", "empreendimento sao joao"},
		{"Licença\tde\nOperação", "licenca de operacao"},
		{"ÁÉÍÓÚ àèìòù ç Ã õ", "aeiou aeiou c a o"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, lao.NormalizeText(c.entrada), "entrada: %q", c.entrada)
	}
}

// A normalização é idempotente: aplicar duas vezes não muda o resultado.
func TestNormalizeText_Idempotente(t *testing.T) {
	entradas := []string{
		"Monitoramento ", "LICENÇA AMBIENTAL", "  a   cada  5   meses ", "çãéî",
	}
	for _, s := range entradas {
		uma := lao.NormalizeText(s)
		duas := lao.NormalizeText(uma)
		assert.Equal(t, uma, duas, "NormalizeText deve ser idempotente para %q", s)
	}
}

// Chaves de importação são iguais sempre que as formas normalizadas coincidem,
// independentemente de caixa, acentos e espaços.
func TestImportKey_EquivalenciaPorNormalizacao(t *testing.T) {
	a := lao.ImportKey("LAO 123/2021", "Fazenda São João")
	b := lao.ImportKey("lao  123/2021 ", "FAZENDA SAO JOAO")
	assert.Equal(t, a, b)

	c := lao.ImportKey("LAO 124/2021", "Fazenda São João")
	assert.NotEqual(t, a, c, "números diferentes devem gerar chaves diferentes")
}

func TestImportKey_Formato(t *testing.T) {
	assert.Equal(t, "lao 1::sitio a", lao.ImportKey(" LAO 1 ", "Sítio A"))
}
