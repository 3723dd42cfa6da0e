package entity

import "time"

// DetalheKV par chave/valor extraído da planilha ou do cadastro manual.
// A ordem de inserção importa para exibição, não para a reconciliação.
type DetalheKV struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
	Ordem int    `json:"ordem"`
}

// Anexo arquivo vinculado a uma licença (objeto de valor, sem ciclo próprio).
type Anexo struct {
	Nome      string    `json:"nome"`
	URL       string    `json:"url"`
	Tamanho   int64     `json:"tamanho"`
	EnviadoEm time.Time `json:"enviado_em"`
}

// Lao registro de Licença Ambiental de Operação de um empreendimento.
//
// NumeroLao + Empreendimento (normalizados) formam a chave de importação que
// identifica o "mesmo" registro entre planilha e banco. A exclusão lógica é
// feita por Ativo=false; a exclusão física cascateia condicionantes e
// vistorias no repositório.
type Lao struct {
	ID             string
	NumeroLao      string
	Titulo         string
	Empreendimento string
	FilialID       *string // nil enquanto a filial não for resolvida
	Categoria      string
	Processo       string
	FCEI           string
	CODAM          string
	Emissao        *time.Time
	Validade       time.Time // obrigatória
	Detalhes       []DetalheKV
	Anexos         []Anexo
	Ativo          bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
