package entity

import "time"

// Filial representa uma unidade da empresa responsável por licenças LAO.
type Filial struct {
	ID        string
	Nome      string
	Cidade    string
	UF        string
	CNPJ      string // com ou sem máscara
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
