package repository

import (
	"time"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
)

// VistoriaRepository define o porto de persistência para Vistoria (DIP).
// Create devolve domain.ErrDuplicate quando já existe vistoria com o mesmo
// (CondicionanteID, Data) — a chave de deduplicação do reconciliador.
type VistoriaRepository interface {
	Create(vistoria *entity.Vistoria) error
	GetByCondicionanteEData(condicionanteID string, data time.Time) (*entity.Vistoria, error)
	ListByCondicionante(condicionanteID string) ([]*entity.Vistoria, error)
	ListByLao(laoID string) ([]*entity.Vistoria, error)
	ListAll() ([]*entity.Vistoria, error)
	Delete(id string) error
}
