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

// CondicionanteUseCase casos de uso de condicionantes, incluindo a agenda
// de vistorias projetadas para um ano.
type CondicionanteUseCase struct {
	repo    repository.CondicionanteRepository
	laoRepo repository.LaoRepository
}

// NewCondicionanteUseCase constrói o caso de uso.
func NewCondicionanteUseCase(repo repository.CondicionanteRepository, laoRepo repository.LaoRepository) *CondicionanteUseCase {
	return &CondicionanteUseCase{repo: repo, laoRepo: laoRepo}
}

// Create cadastra uma condicionante numa licença. O nome é único dentro da
// licença após normalização.
func (uc *CondicionanteUseCase) Create(laoID string, in dto.CreateCondicionanteRequest) (*dto.CondicionanteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	registroLao, err := uc.laoRepo.GetByID(laoID)
	if err != nil {
		return nil, err
	}
	if registroLao == nil {
		return nil, domain.ErrNotFound
	}
	freq, meses, err := resolverFrequenciaEntrada(in.Frequencia, in.MesesIntervalo)
	if err != nil {
		return nil, err
	}
	existentes, err := uc.repo.ListByLao(laoID)
	if err != nil {
		return nil, err
	}
	chave := laodominio.NormalizeText(in.Nome)
	for _, c := range existentes {
		if laodominio.NormalizeText(c.Nome) == chave {
			return nil, domain.ErrDuplicate
		}
	}
	var ultima *time.Time
	if in.UltimaVistoria != "" {
		d, ok := laodominio.ParseISODate(in.UltimaVistoria)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		ultima = &d
	}
	now := time.Now()
	cond := &entity.Condicionante{
		ID:             uuid.New().String(),
		LaoID:          laoID,
		Nome:           in.Nome,
		Frequencia:     freq,
		MesesIntervalo: meses,
		UltimaVistoria: ultima,
		Observacoes:    in.Observacoes,
		Ativo:          true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond), nil
}

// GetByID obtém uma condicionante por ID.
func (uc *CondicionanteUseCase) GetByID(id string) (*dto.CondicionanteResponse, error) {
	cond, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, nil
	}
	return toCondicionanteResponse(cond), nil
}

// Update atualização parcial. Renomear revalida a unicidade dentro da licença.
func (uc *CondicionanteUseCase) Update(id string, in dto.UpdateCondicionanteRequest) (*dto.CondicionanteResponse, error) {
	cond, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, nil
	}
	if in.Nome != nil && *in.Nome != "" {
		chave := laodominio.NormalizeText(*in.Nome)
		if chave != laodominio.NormalizeText(cond.Nome) {
			irmas, err := uc.repo.ListByLao(cond.LaoID)
			if err != nil {
				return nil, err
			}
			for _, c := range irmas {
				if c.ID != cond.ID && laodominio.NormalizeText(c.Nome) == chave {
					return nil, domain.ErrDuplicate
				}
			}
		}
		cond.Nome = *in.Nome
	}
	if in.Frequencia != nil {
		meses := cond.MesesIntervalo
		if in.MesesIntervalo != nil {
			meses = *in.MesesIntervalo
		}
		freq, m, err := resolverFrequenciaEntrada(*in.Frequencia, meses)
		if err != nil {
			return nil, err
		}
		cond.Frequencia = freq
		cond.MesesIntervalo = m
	} else if in.MesesIntervalo != nil {
		if cond.Frequencia == laodominio.FreqPersonalizada && *in.MesesIntervalo <= 0 {
			return nil, domain.ErrInvalidInput
		}
		cond.MesesIntervalo = *in.MesesIntervalo
	}
	if in.UltimaVistoria != nil {
		if *in.UltimaVistoria == "" {
			cond.UltimaVistoria = nil
		} else {
			d, ok := laodominio.ParseISODate(*in.UltimaVistoria)
			if !ok {
				return nil, domain.ErrInvalidInput
			}
			cond.UltimaVistoria = &d
		}
	}
	if in.Observacoes != nil {
		cond.Observacoes = *in.Observacoes
	}
	if in.Ativo != nil {
		cond.Ativo = *in.Ativo
	}
	cond.UpdatedAt = time.Now()
	if err := uc.repo.Update(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond), nil
}

// ListByLao lista as condicionantes de uma licença.
func (uc *CondicionanteUseCase) ListByLao(laoID string) ([]dto.CondicionanteResponse, error) {
	list, err := uc.repo.ListByLao(laoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CondicionanteResponse, 0, len(list))
	for _, cond := range list {
		items = append(items, *toCondicionanteResponse(cond))
	}
	return items, nil
}

// Delete remove a condicionante e suas vistorias.
func (uc *CondicionanteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Agenda projeta as datas de vistoria da condicionante dentro de um ano,
// ancoradas na última vistoria e limitadas pela validade da licença.
// Sem última vistoria não há âncora: a agenda sai vazia.
func (uc *CondicionanteUseCase) Agenda(id string, ano int) (*dto.AgendaResponse, error) {
	cond, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.AgendaResponse{CondicionanteID: cond.ID, Ano: ano, Datas: []string{}}
	if cond.UltimaVistoria == nil {
		return out, nil
	}
	registroLao, err := uc.laoRepo.GetByID(cond.LaoID)
	if err != nil {
		return nil, err
	}
	if registroLao == nil {
		return nil, domain.ErrNotFound
	}
	meses, ok := laodominio.MesesDaFrequencia(cond.Frequencia, cond.MesesIntervalo)
	if !ok {
		return out, nil
	}
	out.Datas = laodominio.ProjectDatesForYear(
		laodominio.ToISODate(*cond.UltimaVistoria),
		laodominio.ToISODate(registroLao.Validade),
		meses,
		ano,
	)
	return out, nil
}

// resolverFrequenciaEntrada valida o rótulo vindo da API. Diferente da
// importação, aqui rótulo desconhecido é erro, não fallback para anual.
func resolverFrequenciaEntrada(rotulo string, mesesIntervalo int) (laodominio.Frequencia, int, error) {
	switch laodominio.Frequencia(laodominio.NormalizeText(rotulo)) {
	case laodominio.FreqMensal:
		return laodominio.FreqMensal, 0, nil
	case laodominio.FreqBimestral:
		return laodominio.FreqBimestral, 0, nil
	case laodominio.FreqTrimestral:
		return laodominio.FreqTrimestral, 0, nil
	case laodominio.FreqSemestral:
		return laodominio.FreqSemestral, 0, nil
	case laodominio.FreqAnual, "":
		return laodominio.FreqAnual, 0, nil
	case laodominio.FreqPersonalizada:
		if mesesIntervalo <= 0 {
			return "", 0, domain.ErrInvalidInput
		}
		return laodominio.FreqPersonalizada, mesesIntervalo, nil
	default:
		return "", 0, domain.ErrInvalidInput
	}
}

func toCondicionanteResponse(c *entity.Condicionante) *dto.CondicionanteResponse {
	if c == nil {
		return nil
	}
	ultima := ""
	if c.UltimaVistoria != nil {
		ultima = laodominio.ToISODate(*c.UltimaVistoria)
	}
	return &dto.CondicionanteResponse{
		ID:             c.ID,
		LaoID:          c.LaoID,
		Nome:           c.Nome,
		Frequencia:     string(c.Frequencia),
		MesesIntervalo: c.MesesIntervalo,
		UltimaVistoria: ultima,
		Observacoes:    c.Observacoes,
		Ativo:          c.Ativo,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
