package lao

// ProjectDatesForYear projeta as datas de vistoria de um ano-alvo.
//
// Partindo da âncora (última vistoria conhecida), aplica AddMonthsPreserveDay
// repetidamente com o intervalo em meses, gerando uma sequência estritamente
// crescente de candidatas; para quando uma candidata ultrapassa a validade da
// licença. Entram no resultado as candidatas cujo ano de calendário é igual
// ao ano-alvo.
//
// O laço também interrompe assim que o ano da candidata ultrapassa o alvo:
// numa sequência crescente nenhuma candidata posterior volta ao ano desejado,
// e isso garante término mesmo com validade muito distante no futuro. O
// contrato do chamador garante intervalo > 0 (MesesDaFrequencia filtra os
// inválidos); âncora, validade ou intervalo ausentes/inválidos devolvem lista
// vazia, nunca pânico.
func ProjectDatesForYear(ancoraISO, validadeISO string, mesesIntervalo, ano int) []string {
	out := []string{}
	ancora, ok := ParseISODate(ancoraISO)
	if !ok {
		return out
	}
	validade, ok := ParseISODate(validadeISO)
	if !ok {
		return out
	}
	if mesesIntervalo <= 0 {
		return out
	}

	atual := ancora
	for {
		atual = AddMonthsPreserveDay(atual, mesesIntervalo)
		if atual.After(validade) {
			break
		}
		if atual.Year() == ano {
			out = append(out, ToISODate(atual))
		}
		if atual.Year() > ano {
			break
		}
	}
	return out
}
