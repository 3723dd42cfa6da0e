package repository

import "github.com/AmbientalSC/licencas/internal/domain/entity"

// LaoRepository define o porto de persistência para Lao (DIP).
type LaoRepository interface {
	Create(lao *entity.Lao) error
	GetByID(id string) (*entity.Lao, error)
	Update(lao *entity.Lao) error
	// SetAtivo exclusão lógica (ativo=false) ou reativação.
	SetAtivo(id string, ativo bool) error
	List(somenteAtivos bool, limit, offset int) ([]*entity.Lao, error)
	// ListAll devolve todos os registros, ativos ou não (snapshot de importação).
	ListAll() ([]*entity.Lao, error)
	// Delete exclusão física; cascateia condicionantes e vistorias.
	Delete(id string) error
}
