package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

// TipoLicencaUseCase casos de uso CRUD para tipos de licença.
// Os dias de prazo alimentam o cálculo de renovação no dashboard.
type TipoLicencaUseCase struct {
	repo repository.TipoLicencaRepository
}

// NewTipoLicencaUseCase constrói o caso de uso.
func NewTipoLicencaUseCase(repo repository.TipoLicencaRepository) *TipoLicencaUseCase {
	return &TipoLicencaUseCase{repo: repo}
}

// Create cria um tipo de licença. Dias negativos são entrada inválida.
func (uc *TipoLicencaUseCase) Create(in dto.CreateTipoLicencaRequest) (*dto.TipoLicencaResponse, error) {
	if in.Nome == "" || in.DiasProtocoloRenovacao < 0 || in.DiasInicioProcesso < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tipo := &entity.TipoLicenca{
		ID:                     uuid.New().String(),
		Nome:                   in.Nome,
		DiasProtocoloRenovacao: in.DiasProtocoloRenovacao,
		DiasInicioProcesso:     in.DiasInicioProcesso,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(tipo); err != nil {
		return nil, err
	}
	return toTipoLicencaResponse(tipo), nil
}

// GetByID obtém um tipo por ID.
func (uc *TipoLicencaUseCase) GetByID(id string) (*dto.TipoLicencaResponse, error) {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, nil
	}
	return toTipoLicencaResponse(tipo), nil
}

// Update atualiza um tipo de licença.
func (uc *TipoLicencaUseCase) Update(id string, in dto.UpdateTipoLicencaRequest) (*dto.TipoLicencaResponse, error) {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, nil
	}
	if in.Nome != nil {
		tipo.Nome = *in.Nome
	}
	if in.DiasProtocoloRenovacao != nil {
		if *in.DiasProtocoloRenovacao < 0 {
			return nil, domain.ErrInvalidInput
		}
		tipo.DiasProtocoloRenovacao = *in.DiasProtocoloRenovacao
	}
	if in.DiasInicioProcesso != nil {
		if *in.DiasInicioProcesso < 0 {
			return nil, domain.ErrInvalidInput
		}
		tipo.DiasInicioProcesso = *in.DiasInicioProcesso
	}
	tipo.UpdatedAt = time.Now()
	if err := uc.repo.Update(tipo); err != nil {
		return nil, err
	}
	return toTipoLicencaResponse(tipo), nil
}

// List lista tipos de licença com paginação.
func (uc *TipoLicencaUseCase) List(limit, offset int) (*dto.TipoLicencaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoLicencaResponse, 0, len(list))
	for _, tipo := range list {
		items = append(items, *toTipoLicencaResponse(tipo))
	}
	return &dto.TipoLicencaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um tipo de licença por ID.
func (uc *TipoLicencaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTipoLicencaResponse(t *entity.TipoLicenca) *dto.TipoLicencaResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoLicencaResponse{
		ID:                     t.ID,
		Nome:                   t.Nome,
		DiasProtocoloRenovacao: t.DiasProtocoloRenovacao,
		DiasInicioProcesso:     t.DiasInicioProcesso,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}
