package lao

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Época serial de planilha (Excel/LibreOffice): 1899-12-30 em UTC.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseISODate aceita somente o formato estrito YYYY-MM-DD.
// Qualquer outro formato, valor ausente ou componente não numérico devolve ok=false.
func ParseISODate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formata usando os campos de calendário locais da data (ano, mês,
// dia) com zero à esquerda. Nunca usa os campos UTC, para evitar o
// deslocamento de um dia causado pela conversão de fuso.
func ToISODate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseWorkbookDate interpreta o valor de uma célula de planilha e devolve a
// data em ISO (YYYY-MM-DD). Três formas são aceitas:
//
//   - ISO estrito, devolvido literalmente;
//   - brasileiro D/M/YYYY ou DD/MM/YYYY (dia 1–31, mês 1–12), reformatado;
//   - serial numérico de planilha (época 1899-12-30): a fração de dia é
//     convertida em milissegundos, arredondada e truncada para o dia de
//     calendário UTC antes de reexpressa em campos locais. A ida por UTC e a
//     volta por campos locais evita deriva em seriais com fração de dia.
//
// Qualquer outra forma devolve ok=false.
func ParseWorkbookDate(cell string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}
	if _, ok := ParseISODate(s); ok {
		return s, true
	}
	if iso, ok := parseBRDate(s); ok {
		return iso, true
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToISO(serial)
	}
	return "", false
}

// parseBRDate aceita D/M/YYYY e DD/MM/YYYY.
func parseBRDate(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", false
	}
	d, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if d < 1 || d > 31 || m < 1 || m > 12 || len(parts[2]) != 4 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// serialToISO decodifica um serial de planilha com fração de dia.
func serialToISO(serial float64) (string, bool) {
	if serial <= 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	ms := math.Round(serial * 24 * 60 * 60 * 1000)
	utc := serialEpoch.Add(time.Duration(ms) * time.Millisecond)
	// Trunca para o dia de calendário UTC antes de reexpressar localmente.
	y, m, d := utc.UTC().Date()
	local := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return ToISODate(local), true
}

// AddMonthsPreserveDay soma n meses de calendário mantendo o dia do mês.
// Se o mês resultante tiver menos dias que o dia original, o resultado é
// grampeado no último dia do mês (ex.: 31/jan + 1 mês -> 28 ou 29/fev).
func AddMonthsPreserveDay(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Dia zero do mês seguinte é o último dia do mês corrente.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
