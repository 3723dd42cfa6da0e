package repository

import "github.com/AmbientalSC/licencas/internal/domain/entity"

// CondicionanteRepository define o porto de persistência para Condicionante (DIP).
type CondicionanteRepository interface {
	Create(cond *entity.Condicionante) error
	GetByID(id string) (*entity.Condicionante, error)
	Update(cond *entity.Condicionante) error
	ListByLao(laoID string) ([]*entity.Condicionante, error)
	ListAll() ([]*entity.Condicionante, error)
	Delete(id string) error
}
