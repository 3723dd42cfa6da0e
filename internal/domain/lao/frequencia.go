package lao

import (
	"regexp"
	"strconv"
	"strings"
)

// Frequencia preset de periodicidade de uma condicionante.
type Frequencia string

// Presets válidos. Personalizada exige MesesIntervalo > 0.
const (
	FreqMensal        Frequencia = "mensal"
	FreqBimestral     Frequencia = "bimestral"
	FreqTrimestral    Frequencia = "trimestral"
	FreqSemestral     Frequencia = "semestral"
	FreqAnual         Frequencia = "anual"
	FreqPersonalizada Frequencia = "personalizada"
)

// FrequenciaResolvida resultado da interpretação de um rótulo livre.
type FrequenciaResolvida struct {
	Preset         Frequencia
	MesesIntervalo int // somente quando Preset == FreqPersonalizada
}

// Palavras-chave em ordem fixa de prioridade: a primeira que casar vence.
var palavrasFrequencia = []struct {
	chave  string
	preset Frequencia
}{
	{"mensal", FreqMensal},
	{"bimestral", FreqBimestral},
	{"trimestral", FreqTrimestral},
	{"semestral", FreqSemestral},
	{"anual", FreqAnual},
}

// Padrão "<inteiro> mes|meses|m" para intervalos personalizados.
var rePersonalizada = regexp.MustCompile(`(\d+)\s*(meses|mes|m)\b`)

// ResolveFrequencia normaliza o rótulo e o mapeia a um preset canônico.
//
// A busca por substring segue a ordem fixa mensal, bimestral, trimestral,
// semestral, anual. Sem casamento, procura o padrão "<n> meses" (n > 0) e
// devolve personalizada; sem padrão algum, o padrão do produto é anual —
// decisão deliberada de fallback, não um erro. Rótulo vazio também resulta
// em anual.
func ResolveFrequencia(rotulo string) FrequenciaResolvida {
	texto := NormalizeText(rotulo)
	if texto == "" {
		return FrequenciaResolvida{Preset: FreqAnual}
	}
	for _, p := range palavrasFrequencia {
		if strings.Contains(texto, p.chave) {
			return FrequenciaResolvida{Preset: p.preset}
		}
	}
	if m := rePersonalizada.FindStringSubmatch(texto); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return FrequenciaResolvida{Preset: FreqPersonalizada, MesesIntervalo: n}
		}
	}
	return FrequenciaResolvida{Preset: FreqAnual}
}

// MesesDaFrequencia devolve o intervalo em meses de um preset.
// Para personalizada devolve o intervalo informado se > 0; caso contrário
// ok=false, significando "não projetável".
func MesesDaFrequencia(preset Frequencia, mesesIntervalo int) (int, bool) {
	switch preset {
	case FreqMensal:
		return 1, true
	case FreqBimestral:
		return 2, true
	case FreqTrimestral:
		return 3, true
	case FreqSemestral:
		return 6, true
	case FreqAnual:
		return 12, true
	case FreqPersonalizada:
		if mesesIntervalo > 0 {
			return mesesIntervalo, true
		}
		return 0, false
	default:
		return 0, false
	}
}
