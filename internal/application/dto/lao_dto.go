package dto

import (
	"time"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
)

// DetalheKVDTO par chave/valor exibido na ordem de inserção.
type DetalheKVDTO struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
	Ordem int    `json:"ordem"`
}

// CreateLaoRequest dados para cadastrar uma licença manualmente.
// Datas em ISO (YYYY-MM-DD); Validade é obrigatória.
type CreateLaoRequest struct {
	NumeroLao      string         `json:"numero_lao"`
	Titulo         string         `json:"titulo"`
	Empreendimento string         `json:"empreendimento"`
	FilialID       *string        `json:"filial_id"`
	Categoria      string         `json:"categoria"`
	Processo       string         `json:"processo"`
	FCEI           string         `json:"fcei"`
	CODAM          string         `json:"codam"`
	Emissao        string         `json:"emissao"`
	Validade       string         `json:"validade"`
	Detalhes       []DetalheKVDTO `json:"detalhes"`
}

// UpdateLaoRequest atualização parcial (ponteiro nil = não alterar).
type UpdateLaoRequest struct {
	NumeroLao      *string         `json:"numero_lao"`
	Titulo         *string         `json:"titulo"`
	Empreendimento *string         `json:"empreendimento"`
	FilialID       *string         `json:"filial_id"`
	Categoria      *string         `json:"categoria"`
	Processo       *string         `json:"processo"`
	FCEI           *string         `json:"fcei"`
	CODAM          *string         `json:"codam"`
	Emissao        *string         `json:"emissao"`
	Validade       *string         `json:"validade"`
	Detalhes       *[]DetalheKVDTO `json:"detalhes"`
	Ativo          *bool           `json:"ativo"`
}

// AnexoDTO arquivo vinculado à licença.
type AnexoDTO struct {
	Nome      string    `json:"nome"`
	URL       string    `json:"url"`
	Tamanho   int64     `json:"tamanho"`
	EnviadoEm time.Time `json:"enviado_em"`
}

// LaoResponse representação de uma licença nas respostas.
type LaoResponse struct {
	ID             string         `json:"id"`
	NumeroLao      string         `json:"numero_lao"`
	Titulo         string         `json:"titulo"`
	Empreendimento string         `json:"empreendimento"`
	FilialID       *string        `json:"filial_id"`
	Categoria      string         `json:"categoria"`
	Processo       string         `json:"processo"`
	FCEI           string         `json:"fcei"`
	CODAM          string         `json:"codam"`
	Emissao        string         `json:"emissao,omitempty"`
	Validade       string         `json:"validade"`
	Detalhes       []DetalheKVDTO `json:"detalhes"`
	Anexos         []AnexoDTO     `json:"anexos"`
	Ativo          bool           `json:"ativo"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// LaoListResponse listagem paginada.
type LaoListResponse struct {
	Items []LaoResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// DetalhesToEntity converte a lista de DTOs renumerando a ordem.
func DetalhesToEntity(in []DetalheKVDTO) []entity.DetalheKV {
	out := make([]entity.DetalheKV, 0, len(in))
	for i, kv := range in {
		out = append(out, entity.DetalheKV{Chave: kv.Chave, Valor: kv.Valor, Ordem: i})
	}
	return out
}
