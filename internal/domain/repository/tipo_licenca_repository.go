package repository

import "github.com/AmbientalSC/licencas/internal/domain/entity"

// TipoLicencaRepository define o porto de persistência para TipoLicenca (DIP).
type TipoLicencaRepository interface {
	Create(tipo *entity.TipoLicenca) error
	GetByID(id string) (*entity.TipoLicenca, error)
	Update(tipo *entity.TipoLicenca) error
	List(limit, offset int) ([]*entity.TipoLicenca, error)
	ListAll() ([]*entity.TipoLicenca, error)
	Delete(id string) error
}
