package dto

import "time"

// CreateTipoLicencaRequest dados para criar um tipo de licença.
type CreateTipoLicencaRequest struct {
	Nome                   string `json:"nome"`
	DiasProtocoloRenovacao int    `json:"dias_protocolo_renovacao"`
	DiasInicioProcesso     int    `json:"dias_inicio_processo"`
}

// UpdateTipoLicencaRequest atualização parcial (ponteiro nil = não alterar).
type UpdateTipoLicencaRequest struct {
	Nome                   *string `json:"nome"`
	DiasProtocoloRenovacao *int    `json:"dias_protocolo_renovacao"`
	DiasInicioProcesso     *int    `json:"dias_inicio_processo"`
}

// TipoLicencaResponse representação nas respostas.
type TipoLicencaResponse struct {
	ID                     string    `json:"id"`
	Nome                   string    `json:"nome"`
	DiasProtocoloRenovacao int       `json:"dias_protocolo_renovacao"`
	DiasInicioProcesso     int       `json:"dias_inicio_processo"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TipoLicencaListResponse listagem paginada.
type TipoLicencaListResponse struct {
	Items []TipoLicencaResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
