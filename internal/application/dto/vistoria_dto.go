package dto

import "time"

// CreateVistoriaRequest registro manual de vistoria realizada.
type CreateVistoriaRequest struct {
	Data       string `json:"data"` // ISO, obrigatória
	Observacao string `json:"observacao"`
}

// VistoriaResponse representação nas respostas.
type VistoriaResponse struct {
	ID              string    `json:"id"`
	LaoID           string    `json:"lao_id"`
	CondicionanteID string    `json:"condicionante_id"`
	Data            string    `json:"data"`
	Observacao      string    `json:"observacao,omitempty"`
	Fonte           string    `json:"fonte"`
	CreatedAt       time.Time `json:"created_at"`
}
