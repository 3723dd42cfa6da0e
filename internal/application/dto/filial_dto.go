package dto

import "time"

// CreateFilialRequest dados para criar uma filial.
type CreateFilialRequest struct {
	Nome   string `json:"nome"`
	Cidade string `json:"cidade"`
	UF     string `json:"uf"`
	CNPJ   string `json:"cnpj"`
}

// UpdateFilialRequest atualização parcial (ponteiro nil = não alterar).
type UpdateFilialRequest struct {
	Nome   *string `json:"nome"`
	Cidade *string `json:"cidade"`
	UF     *string `json:"uf"`
	CNPJ   *string `json:"cnpj"`
	Ativo  *bool   `json:"ativo"`
}

// FilialResponse representação de uma filial nas respostas.
type FilialResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cidade    string    `json:"cidade"`
	UF        string    `json:"uf"`
	CNPJ      string    `json:"cnpj"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FilialListResponse listagem paginada.
type FilialListResponse struct {
	Items []FilialResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
