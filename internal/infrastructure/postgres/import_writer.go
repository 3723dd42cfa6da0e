package postgres

import (
	"errors"

	"github.com/google/uuid"

	"github.com/AmbientalSC/licencas/internal/application/importer"
	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
)

var _ importer.Escritor = (*ImportWriter)(nil)

// ImportWriter adapta os repositórios PostgreSQL ao contrato de escrita do
// reconciliador de importação. A deduplicação final de vistorias fica na
// constraint única do banco: ErrDuplicate vira o sinal "id vazio, ignorada".
type ImportWriter struct {
	laoRepo  *LaoRepo
	condRepo *CondicionanteRepo
	vistRepo *VistoriaRepo
}

// NewImportWriter constrói o escritor de importação sobre um Querier (pool ou tx).
func NewImportWriter(q Querier) *ImportWriter {
	return &ImportWriter{
		laoRepo:  NewLaoRepository(q),
		condRepo: NewCondicionanteRepository(q),
		vistRepo: NewVistoriaRepository(q),
	}
}

// AddLao insere a licença e devolve o ID atribuído.
func (w *ImportWriter) AddLao(item *entity.Lao) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := w.laoRepo.Create(item); err != nil {
		return "", err
	}
	return item.ID, nil
}

// UpdateLao atualiza a licença.
func (w *ImportWriter) UpdateLao(item *entity.Lao) error {
	return w.laoRepo.Update(item)
}

// DeleteLao exclusão física com cascata.
func (w *ImportWriter) DeleteLao(id string) error {
	return w.laoRepo.Delete(id)
}

// AddCondicionante insere a condicionante e devolve o ID atribuído.
func (w *ImportWriter) AddCondicionante(cond *entity.Condicionante) (string, error) {
	if cond.ID == "" {
		cond.ID = uuid.New().String()
	}
	if err := w.condRepo.Create(cond); err != nil {
		return "", err
	}
	return cond.ID, nil
}

// UpdateCondicionante atualiza a condicionante.
func (w *ImportWriter) UpdateCondicionante(cond *entity.Condicionante) error {
	return w.condRepo.Update(cond)
}

// DeleteCondicionante remove a condicionante e suas vistorias.
func (w *ImportWriter) DeleteCondicionante(id string) error {
	return w.condRepo.Delete(id)
}

// AddVistoria insere a vistoria; devolve id vazio quando a dupla
// (condicionante, data) já existe — contada como ignorada, não como erro.
func (w *ImportWriter) AddVistoria(vistoria *entity.Vistoria) (string, error) {
	if vistoria.ID == "" {
		vistoria.ID = uuid.New().String()
	}
	if err := w.vistRepo.Create(vistoria); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return "", nil
		}
		return "", err
	}
	return vistoria.ID, nil
}
