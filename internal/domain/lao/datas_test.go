package lao_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

func TestParseISODate_Estrito(t *testing.T) {
	d, ok := lao.ParseISODate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	invalidas := []string{
		"", "2024/02/29", "29-02-2024", "2024-2-9", "2024-02-30",
		"2024-13-01", "20240229", "2024-02-29T00:00:00", "abcd-ef-gh",
	}
	for _, s := range invalidas {
		_, ok := lao.ParseISODate(s)
		assert.False(t, ok, "%q não deve ser aceito", s)
	}
}

// Ida e volta: toda data ISO válida sobrevive a parse + format sem alteração.
func TestToISODate_RoundTrip(t *testing.T) {
	for _, s := range []string{"2023-01-01", "2024-02-29", "1999-12-31", "2025-07-09"} {
		d, ok := lao.ParseISODate(s)
		require.True(t, ok, s)
		assert.Equal(t, s, lao.ToISODate(d))
	}
}

func TestParseWorkbookDate_Formatos(t *testing.T) {
	casos := []struct {
		celula   string
		esperado string
		ok       bool
	}{
		{"2024-03-15", "2024-03-15", true},   // ISO literal
		{"15/03/2024", "2024-03-15", true},   // DD/MM/YYYY
		{"5/3/2024", "2024-03-05", true},     // D/M/YYYY
		{" 15/03/2024 ", "2024-03-15", true}, // espaços nas pontas
		{"45366", "2024-03-15", true},        // serial de planilha
		{"45366.5", "2024-03-15", true},      // serial com fração de dia
		{"32/01/2024", "", false},
		{"15/13/2024", "", false},
		{"", "", false},
		{"não é data", "", false},
		{"-10", "", false},
	}
	for _, c := range casos {
		got, ok := lao.ParseWorkbookDate(c.celula)
		assert.Equal(t, c.ok, ok, "célula %q", c.celula)
		if c.ok {
			assert.Equal(t, c.esperado, got, "célula %q", c.celula)
		}
	}
}

func TestAddMonthsPreserveDay_GrampoFimDeMes(t *testing.T) {
	casos := []struct {
		base     string
		meses    int
		esperado string
	}{
		{"2024-01-31", 1, "2024-02-29"}, // ano bissexto
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-15", 6, "2024-07-15"},
		{"2024-03-31", 1, "2024-04-30"},
		{"2024-11-30", 3, "2025-02-28"},
		{"2024-12-31", 2, "2025-02-28"},
		{"2024-05-10", 12, "2025-05-10"},
	}
	for _, c := range casos {
		base, ok := lao.ParseISODate(c.base)
		require.True(t, ok, c.base)
		got := lao.AddMonthsPreserveDay(base, c.meses)
		assert.Equal(t, c.esperado, lao.ToISODate(got), "%s + %d meses", c.base, c.meses)
	}
}
