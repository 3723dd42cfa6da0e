package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

// FilialUseCase casos de uso CRUD para filiais.
type FilialUseCase struct {
	repo repository.FilialRepository
}

// NewFilialUseCase constrói o caso de uso.
func NewFilialUseCase(repo repository.FilialRepository) *FilialUseCase {
	return &FilialUseCase{repo: repo}
}

// Create cria uma nova filial.
func (uc *FilialUseCase) Create(in dto.CreateFilialRequest) (*dto.FilialResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	filial := &entity.Filial{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Cidade:    in.Cidade,
		UF:        in.UF,
		CNPJ:      in.CNPJ,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(filial); err != nil {
		return nil, err
	}
	return toFilialResponse(filial), nil
}

// GetByID obtém uma filial por ID.
func (uc *FilialUseCase) GetByID(id string) (*dto.FilialResponse, error) {
	filial, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if filial == nil {
		return nil, nil
	}
	return toFilialResponse(filial), nil
}

// Update atualiza uma filial.
func (uc *FilialUseCase) Update(id string, in dto.UpdateFilialRequest) (*dto.FilialResponse, error) {
	filial, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if filial == nil {
		return nil, nil
	}
	if in.Nome != nil {
		filial.Nome = *in.Nome
	}
	if in.Cidade != nil {
		filial.Cidade = *in.Cidade
	}
	if in.UF != nil {
		filial.UF = *in.UF
	}
	if in.CNPJ != nil {
		filial.CNPJ = *in.CNPJ
	}
	if in.Ativo != nil {
		filial.Ativo = *in.Ativo
	}
	filial.UpdatedAt = time.Now()
	if err := uc.repo.Update(filial); err != nil {
		return nil, err
	}
	return toFilialResponse(filial), nil
}

// List lista filiais com paginação.
func (uc *FilialUseCase) List(limit, offset int) (*dto.FilialListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FilialResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFilialResponse(f))
	}
	return &dto.FilialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove uma filial por ID.
func (uc *FilialUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFilialResponse(f *entity.Filial) *dto.FilialResponse {
	if f == nil {
		return nil
	}
	return &dto.FilialResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		Cidade:    f.Cidade,
		UF:        f.UF,
		CNPJ:      f.CNPJ,
		Ativo:     f.Ativo,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
