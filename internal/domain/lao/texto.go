// Package lao contém as regras puras do domínio de licenças ambientais de
// operação: normalização de texto para casamento de registros, datas de
// planilha, frequências de condicionantes e projeção de vistorias.
//
// Nada aqui toca banco, rede ou relógio de parede além dos argumentos
// recebidos; todo o pacote é testável de forma isolada.
package lao

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos decompõe (NFD), remove marcas não espaçadoras e recompõe (NFC).
var removeAcentos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeText devolve a forma canônica de um texto para comparação:
// sem acentos, minúsculas, sem espaços nas pontas e com sequências internas
// de espaço reduzidas a um único espaço.
//
// Duas strings representam o "mesmo identificador" no sistema sse suas
// formas normalizadas forem iguais. A função é idempotente.
func NormalizeText(s string) string {
	ascii, _, err := transform.String(removeAcentos, s)
	if err != nil {
		ascii = s
	}
	lower := strings.ToLower(ascii)
	return strings.Join(strings.Fields(lower), " ")
}

// ImportKey devolve a chave de reconciliação primária de um registro LAO:
// número da licença e empreendimento normalizados, separados por "::".
// Duas linhas de planilha ou dois registros persistidos que se referem à
// mesma licença produzem a mesma chave.
func ImportKey(numeroLao, empreendimento string) string {
	return NormalizeText(numeroLao) + "::" + NormalizeText(empreendimento)
}
