package lao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.Local)
}

func TestPrazoRenovacao(t *testing.T) {
	validade := dia(2025, time.June, 30)
	assert.Equal(t, dia(2025, time.March, 2), PrazoRenovacao(validade, 120))
	assert.Equal(t, validade, PrazoRenovacao(validade, 0))
}

func TestInicioProcesso(t *testing.T) {
	validade := dia(2025, time.June, 30)
	assert.Equal(t, dia(2024, time.December, 2), InicioProcesso(validade, 210))
}

func TestVenceAte(t *testing.T) {
	limite := dia(2025, time.December, 31)
	assert.True(t, VenceAte(dia(2025, time.June, 30), limite), "dentro da janela")
	assert.True(t, VenceAte(limite, limite), "limite é inclusivo")
	assert.True(t, VenceAte(dia(2024, time.January, 1), limite), "já vencida também conta")
	assert.False(t, VenceAte(dia(2026, time.January, 1), limite))
}
