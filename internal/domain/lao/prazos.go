package lao

import "time"

// PrazoRenovacao devolve a data limite para protocolar a renovação da
// licença: validade menos os dias de protocolo do tipo de licença.
func PrazoRenovacao(validade time.Time, diasProtocolo int) time.Time {
	return validade.AddDate(0, 0, -diasProtocolo)
}

// InicioProcesso devolve a data recomendada para iniciar o processo de
// renovação: validade menos os dias de antecedência do tipo de licença.
func InicioProcesso(validade time.Time, diasInicio int) time.Time {
	return validade.AddDate(0, 0, -diasInicio)
}

// VenceAte informa se a validade da licença cai dentro da janela de aviso
// que termina em `limite` (inclusive). Licenças já vencidas também contam.
func VenceAte(validade, limite time.Time) bool {
	return !validade.After(limite)
}
