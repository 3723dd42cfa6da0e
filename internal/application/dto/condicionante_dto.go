package dto

import "time"

// CreateCondicionanteRequest dados para criar uma condicionante numa licença.
// Frequencia: mensal|bimestral|trimestral|semestral|anual|personalizada;
// MesesIntervalo obrigatório (>0) somente para personalizada.
type CreateCondicionanteRequest struct {
	Nome           string `json:"nome"`
	Frequencia     string `json:"frequencia"`
	MesesIntervalo int    `json:"meses_intervalo"`
	UltimaVistoria string `json:"ultima_vistoria"` // ISO ou vazio
	Observacoes    string `json:"observacoes"`
}

// UpdateCondicionanteRequest atualização parcial (ponteiro nil = não alterar).
type UpdateCondicionanteRequest struct {
	Nome           *string `json:"nome"`
	Frequencia     *string `json:"frequencia"`
	MesesIntervalo *int    `json:"meses_intervalo"`
	UltimaVistoria *string `json:"ultima_vistoria"`
	Observacoes    *string `json:"observacoes"`
	Ativo          *bool   `json:"ativo"`
}

// CondicionanteResponse representação nas respostas.
type CondicionanteResponse struct {
	ID             string    `json:"id"`
	LaoID          string    `json:"lao_id"`
	Nome           string    `json:"nome"`
	Frequencia     string    `json:"frequencia"`
	MesesIntervalo int       `json:"meses_intervalo,omitempty"`
	UltimaVistoria string    `json:"ultima_vistoria,omitempty"`
	Observacoes    string    `json:"observacoes,omitempty"`
	Ativo          bool      `json:"ativo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AgendaResponse datas projetadas de vistoria de uma condicionante num ano.
type AgendaResponse struct {
	CondicionanteID string   `json:"condicionante_id"`
	Ano             int      `json:"ano"`
	Datas           []string `json:"datas"` // ISO, ordem crescente
}
