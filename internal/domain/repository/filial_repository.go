package repository

import "github.com/AmbientalSC/licencas/internal/domain/entity"

// FilialRepository define o porto de persistência para Filial (DIP).
type FilialRepository interface {
	Create(filial *entity.Filial) error
	GetByID(id string) (*entity.Filial, error)
	Update(filial *entity.Filial) error
	List(limit, offset int) ([]*entity.Filial, error)
	ListAll() ([]*entity.Filial, error)
	Delete(id string) error
}
