package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	laodominio "github.com/AmbientalSC/licencas/internal/domain/lao"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

// VistoriaUseCase registro manual e consulta de vistorias.
// Registrar uma vistoria também avança a última vistoria da condicionante
// quando a data é mais recente que a âncora atual.
type VistoriaUseCase struct {
	repo     repository.VistoriaRepository
	condRepo repository.CondicionanteRepository
}

// NewVistoriaUseCase constrói o caso de uso.
func NewVistoriaUseCase(repo repository.VistoriaRepository, condRepo repository.CondicionanteRepository) *VistoriaUseCase {
	return &VistoriaUseCase{repo: repo, condRepo: condRepo}
}

// Registrar grava uma vistoria manual numa condicionante.
// Data duplicada na mesma condicionante devolve domain.ErrDuplicate.
func (uc *VistoriaUseCase) Registrar(condicionanteID string, in dto.CreateVistoriaRequest, criadoPor string) (*dto.VistoriaResponse, error) {
	data, ok := laodominio.ParseISODate(in.Data)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	cond, err := uc.condRepo.GetByID(condicionanteID)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, domain.ErrNotFound
	}
	vistoria := &entity.Vistoria{
		ID:              uuid.New().String(),
		LaoID:           cond.LaoID,
		CondicionanteID: cond.ID,
		Data:            data,
		Observacao:      in.Observacao,
		Fonte:           entity.FonteManual,
		CreatedAt:       time.Now(),
	}
	if criadoPor != "" {
		vistoria.CriadoPor = &criadoPor
	}
	if err := uc.repo.Create(vistoria); err != nil {
		return nil, err
	}
	if cond.UltimaVistoria == nil || data.After(*cond.UltimaVistoria) {
		cond.UltimaVistoria = &data
		cond.UpdatedAt = time.Now()
		if err := uc.condRepo.Update(cond); err != nil {
			return nil, err
		}
	}
	return toVistoriaResponse(vistoria), nil
}

// ListByCondicionante lista as vistorias de uma condicionante.
func (uc *VistoriaUseCase) ListByCondicionante(condicionanteID string) ([]dto.VistoriaResponse, error) {
	list, err := uc.repo.ListByCondicionante(condicionanteID)
	if err != nil {
		return nil, err
	}
	return toVistoriaResponses(list), nil
}

// ListByLao lista todas as vistorias de uma licença.
func (uc *VistoriaUseCase) ListByLao(laoID string) ([]dto.VistoriaResponse, error) {
	list, err := uc.repo.ListByLao(laoID)
	if err != nil {
		return nil, err
	}
	return toVistoriaResponses(list), nil
}

// Delete remove uma vistoria. A âncora da condicionante não é recalculada.
func (uc *VistoriaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toVistoriaResponses(list []*entity.Vistoria) []dto.VistoriaResponse {
	items := make([]dto.VistoriaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVistoriaResponse(v))
	}
	return items
}

func toVistoriaResponse(v *entity.Vistoria) *dto.VistoriaResponse {
	if v == nil {
		return nil
	}
	return &dto.VistoriaResponse{
		ID:              v.ID,
		LaoID:           v.LaoID,
		CondicionanteID: v.CondicionanteID,
		Data:            laodominio.ToISODate(v.Data),
		Observacao:      v.Observacao,
		Fonte:           v.Fonte,
		CreatedAt:       v.CreatedAt,
	}
}
