package entity

import "time"

// TipoLicenca regra de prazos por tipo de licença ambiental.
// Os dias alimentam o cálculo de prazo de renovação e de início do processo.
type TipoLicenca struct {
	ID                     string
	Nome                   string
	DiasProtocoloRenovacao int // >= 0; antecedência mínima para protocolar a renovação
	DiasInicioProcesso     int // >= 0; antecedência recomendada para iniciar o processo
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
