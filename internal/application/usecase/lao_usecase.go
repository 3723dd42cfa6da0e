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

// LaoUseCase casos de uso CRUD para licenças LAO.
// A exclusão padrão é lógica (ativo=false); Delete físico cascateia
// condicionantes e vistorias no repositório.
type LaoUseCase struct {
	repo repository.LaoRepository
}

// NewLaoUseCase constrói o caso de uso.
func NewLaoUseCase(repo repository.LaoRepository) *LaoUseCase {
	return &LaoUseCase{repo: repo}
}

// Create cadastra uma licença manualmente. Validade é obrigatória em ISO.
func (uc *LaoUseCase) Create(in dto.CreateLaoRequest) (*dto.LaoResponse, error) {
	if in.NumeroLao == "" || in.Empreendimento == "" {
		return nil, domain.ErrInvalidInput
	}
	validade, ok := laodominio.ParseISODate(in.Validade)
	if !ok {
		return nil, domain.ErrValidadeAusente
	}
	var emissao *time.Time
	if d, ok := laodominio.ParseISODate(in.Emissao); ok {
		emissao = &d
	}
	titulo := in.Titulo
	if titulo == "" {
		titulo = in.NumeroLao
	}
	now := time.Now()
	registro := &entity.Lao{
		ID:             uuid.New().String(),
		NumeroLao:      in.NumeroLao,
		Titulo:         titulo,
		Empreendimento: in.Empreendimento,
		FilialID:       in.FilialID,
		Categoria:      in.Categoria,
		Processo:       in.Processo,
		FCEI:           in.FCEI,
		CODAM:          in.CODAM,
		Emissao:        emissao,
		Validade:       validade,
		Detalhes:       dto.DetalhesToEntity(in.Detalhes),
		Ativo:          true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(registro); err != nil {
		return nil, err
	}
	return toLaoResponse(registro), nil
}

// GetByID obtém uma licença por ID.
func (uc *LaoUseCase) GetByID(id string) (*dto.LaoResponse, error) {
	registro, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, nil
	}
	return toLaoResponse(registro), nil
}

// Update atualiza uma licença. Anexos não são alterados por aqui.
func (uc *LaoUseCase) Update(id string, in dto.UpdateLaoRequest) (*dto.LaoResponse, error) {
	registro, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, nil
	}
	if in.NumeroLao != nil {
		registro.NumeroLao = *in.NumeroLao
	}
	if in.Titulo != nil {
		registro.Titulo = *in.Titulo
	}
	if in.Empreendimento != nil {
		registro.Empreendimento = *in.Empreendimento
	}
	if in.FilialID != nil {
		registro.FilialID = in.FilialID
	}
	if in.Categoria != nil {
		registro.Categoria = *in.Categoria
	}
	if in.Processo != nil {
		registro.Processo = *in.Processo
	}
	if in.FCEI != nil {
		registro.FCEI = *in.FCEI
	}
	if in.CODAM != nil {
		registro.CODAM = *in.CODAM
	}
	if in.Emissao != nil {
		if d, ok := laodominio.ParseISODate(*in.Emissao); ok {
			registro.Emissao = &d
		} else {
			registro.Emissao = nil
		}
	}
	if in.Validade != nil {
		validade, ok := laodominio.ParseISODate(*in.Validade)
		if !ok {
			return nil, domain.ErrValidadeAusente
		}
		registro.Validade = validade
	}
	if in.Detalhes != nil {
		registro.Detalhes = dto.DetalhesToEntity(*in.Detalhes)
	}
	if in.Ativo != nil {
		registro.Ativo = *in.Ativo
	}
	registro.UpdatedAt = time.Now()
	if err := uc.repo.Update(registro); err != nil {
		return nil, err
	}
	return toLaoResponse(registro), nil
}

// List lista licenças (por padrão somente ativas) com paginação.
func (uc *LaoUseCase) List(somenteAtivos bool, limit, offset int) (*dto.LaoListResponse, error) {
	list, err := uc.repo.List(somenteAtivos, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LaoResponse, 0, len(list))
	for _, registro := range list {
		items = append(items, *toLaoResponse(registro))
	}
	return &dto.LaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Desativar exclusão lógica: marca ativo=false sem apagar nada.
func (uc *LaoUseCase) Desativar(id string) error {
	return uc.repo.SetAtivo(id, false)
}

// Delete exclusão física com cascata de condicionantes e vistorias.
func (uc *LaoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLaoResponse(l *entity.Lao) *dto.LaoResponse {
	if l == nil {
		return nil
	}
	detalhes := make([]dto.DetalheKVDTO, 0, len(l.Detalhes))
	for _, kv := range l.Detalhes {
		detalhes = append(detalhes, dto.DetalheKVDTO{Chave: kv.Chave, Valor: kv.Valor, Ordem: kv.Ordem})
	}
	anexos := make([]dto.AnexoDTO, 0, len(l.Anexos))
	for _, a := range l.Anexos {
		anexos = append(anexos, dto.AnexoDTO{Nome: a.Nome, URL: a.URL, Tamanho: a.Tamanho, EnviadoEm: a.EnviadoEm})
	}
	emissao := ""
	if l.Emissao != nil {
		emissao = laodominio.ToISODate(*l.Emissao)
	}
	return &dto.LaoResponse{
		ID:             l.ID,
		NumeroLao:      l.NumeroLao,
		Titulo:         l.Titulo,
		Empreendimento: l.Empreendimento,
		FilialID:       l.FilialID,
		Categoria:      l.Categoria,
		Processo:       l.Processo,
		FCEI:           l.FCEI,
		CODAM:          l.CODAM,
		Emissao:        emissao,
		Validade:       laodominio.ToISODate(l.Validade),
		Detalhes:       detalhes,
		Anexos:         anexos,
		Ativo:          l.Ativo,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
