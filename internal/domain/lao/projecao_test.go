package lao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

func TestProjectDatesForYear_Semestral(t *testing.T) {
	got := lao.ProjectDatesForYear("2023-01-15", "2025-01-15", 6, 2024)
	assert.Equal(t, []string{"2024-01-15", "2024-07-15"}, got)
}

func TestProjectDatesForYear_RespeitaValidade(t *testing.T) {
	// Validade em março corta as candidatas seguintes do mesmo ano.
	got := lao.ProjectDatesForYear("2023-12-10", "2024-03-31", 1, 2024)
	assert.Equal(t, []string{"2024-01-10", "2024-02-10", "2024-03-10"}, got)
}

func TestProjectDatesForYear_GrampoFimDeMes(t *testing.T) {
	// Âncora no fim de janeiro: fevereiro é grampeado e os meses seguintes
	// seguem a partir da data grampeada.
	got := lao.ProjectDatesForYear("2024-01-31", "2024-06-30", 1, 2024)
	assert.Equal(t, []string{"2024-02-29", "2024-03-29", "2024-04-29", "2024-05-29", "2024-06-29"}, got)
}

func TestProjectDatesForYear_AnoNoPassado(t *testing.T) {
	// Ano-alvo anterior ao início da iteração: termina sem entrar em laço infinito.
	got := lao.ProjectDatesForYear("2023-01-15", "2030-01-15", 6, 2020)
	assert.Empty(t, got)
}

func TestProjectDatesForYear_EntradasInvalidas(t *testing.T) {
	assert.Empty(t, lao.ProjectDatesForYear("", "2025-01-15", 6, 2024))
	assert.Empty(t, lao.ProjectDatesForYear("2023-01-15", "", 6, 2024))
	assert.Empty(t, lao.ProjectDatesForYear("2023-01-15", "2025-01-15", 0, 2024))
	assert.Empty(t, lao.ProjectDatesForYear("data inválida", "2025-01-15", 6, 2024))
}

func TestProjectDatesForYear_ValidadeNoLimite(t *testing.T) {
	// Candidata igual à validade não a ultrapassa: entra no resultado.
	got := lao.ProjectDatesForYear("2023-06-15", "2024-06-15", 12, 2024)
	assert.Equal(t, []string{"2024-06-15"}, got)
}
