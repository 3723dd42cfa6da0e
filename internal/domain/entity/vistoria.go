package entity

import "time"

// Fontes válidas de uma vistoria.
const (
	FonteManual = "manual"
	FonteImport = "import"
)

// Vistoria inspeção realizada sobre uma condicionante.
// LaoID é redundante (derivável da condicionante) e mantido para consultas.
// Nunca existem duas vistorias com o mesmo (CondicionanteID, Data).
type Vistoria struct {
	ID              string
	LaoID           string
	CondicionanteID string
	Data            time.Time
	Observacao      string
	Fonte           string // manual | import
	CreatedAt       time.Time
	CriadoPor       *string // usuário, quando manual
}
