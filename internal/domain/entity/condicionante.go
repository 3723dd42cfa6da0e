package entity

import (
	"time"

	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// Condicionante obrigação recorrente de conformidade vinculada a um Lao.
//
// O nome é único dentro da licença após normalização (caixa, acentos e
// espaços são irrelevantes): a importação nunca cria duas condicionantes que
// diferem apenas nessas variações — elas colapsam numa só.
type Condicionante struct {
	ID             string
	LaoID          string
	Nome           string
	Frequencia     lao.Frequencia
	MesesIntervalo int        // > 0 somente quando Frequencia == personalizada
	UltimaVistoria *time.Time // âncora para projeção de datas futuras
	Observacoes    string
	Ativo          bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
