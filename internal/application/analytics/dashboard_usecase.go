// Package analytics contém os casos de uso de leitura agregada que alimentam
// o painel inicial: contagens de licenças, janela de renovação e vistorias
// projetadas do ano corrente.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/AmbientalSC/licencas/internal/application/dto"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	laodominio "github.com/AmbientalSC/licencas/internal/domain/lao"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

// diasProtocoloPadrao janela de aviso quando a categoria da licença não casa
// com nenhum tipo cadastrado.
const diasProtocoloPadrao = 120

// DashboardUseCase gera o resumo do painel inicial.
//
// Fonte de dados: os repositórios de leitura. Não mantém estado; cada chamada
// recarrega tudo e recalcula.
type DashboardUseCase struct {
	laoRepo  repository.LaoRepository
	condRepo repository.CondicionanteRepository
	tipoRepo repository.TipoLicencaRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	laoRepo repository.LaoRepository,
	condRepo repository.CondicionanteRepository,
	tipoRepo repository.TipoLicencaRepository,
) *DashboardUseCase {
	return &DashboardUseCase{laoRepo: laoRepo, condRepo: condRepo, tipoRepo: tipoRepo}
}

// GetSummary constrói o DashboardSummaryDTO.
//
// Três consultas em paralelo:
//  1. ListAll de licenças        → contagens + janela de renovação
//  2. ListAll de condicionantes  → vistorias projetadas do ano
//  3. ListAll de tipos           → dias de protocolo por categoria
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	type laosResult struct {
		laos []*entity.Lao
		err  error
	}
	type condsResult struct {
		conds []*entity.Condicionante
		err   error
	}
	type tiposResult struct {
		tipos []*entity.TipoLicenca
		err   error
	}

	laosCh := make(chan laosResult, 1)
	condsCh := make(chan condsResult, 1)
	tiposCh := make(chan tiposResult, 1)

	go func() {
		laos, err := uc.laoRepo.ListAll()
		laosCh <- laosResult{laos, err}
	}()
	go func() {
		conds, err := uc.condRepo.ListAll()
		condsCh <- condsResult{conds, err}
	}()
	go func() {
		tipos, err := uc.tipoRepo.ListAll()
		tiposCh <- tiposResult{tipos, err}
	}()

	laos := <-laosCh
	conds := <-condsCh
	tipos := <-tiposCh

	if laos.err != nil {
		return nil, fmt.Errorf("dashboard: licenças: %w", laos.err)
	}
	if conds.err != nil {
		return nil, fmt.Errorf("dashboard: condicionantes: %w", conds.err)
	}
	if tipos.err != nil {
		return nil, fmt.Errorf("dashboard: tipos de licença: %w", tipos.err)
	}

	hoje := time.Now()
	hojeDia := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
	diasPorCategoria := indexarDiasProtocolo(tipos.tipos)

	summary := &dto.DashboardSummaryDTO{
		LicencasVencendo:    []dto.LicencaVencendoDTO{},
		VistoriasProjetadas: []dto.VistoriaProjetadaDTO{},
	}

	laoPorID := make(map[string]*entity.Lao, len(laos.laos))
	for _, l := range laos.laos {
		laoPorID[l.ID] = l
		summary.TotalLicencas++
		if !l.Ativo {
			continue
		}
		summary.LicencasAtivas++
		if l.Validade.Before(hojeDia) {
			summary.LicencasVencidas++
			continue
		}
		dias, ok := diasPorCategoria[laodominio.NormalizeText(l.Categoria)]
		if !ok {
			dias = diasProtocoloPadrao
		}
		prazo := laodominio.PrazoRenovacao(l.Validade, dias)
		// Dentro da janela = já passamos do prazo de protocolo.
		if !hojeDia.Before(prazo) {
			summary.LicencasVencendo = append(summary.LicencasVencendo, dto.LicencaVencendoDTO{
				LaoID:          l.ID,
				NumeroLao:      l.NumeroLao,
				Empreendimento: l.Empreendimento,
				Validade:       laodominio.ToISODate(l.Validade),
				PrazoRenovacao: laodominio.ToISODate(prazo),
				DiasRestantes:  int(l.Validade.Sub(hojeDia).Hours() / 24),
			})
		}
	}

	for _, c := range conds.conds {
		if !c.Ativo || c.UltimaVistoria == nil {
			continue
		}
		l, ok := laoPorID[c.LaoID]
		if !ok || !l.Ativo {
			continue
		}
		meses, ok := laodominio.MesesDaFrequencia(c.Frequencia, c.MesesIntervalo)
		if !ok {
			continue
		}
		datas := laodominio.ProjectDatesForYear(
			laodominio.ToISODate(*c.UltimaVistoria),
			laodominio.ToISODate(l.Validade),
			meses,
			hoje.Year(),
		)
		for _, d := range datas {
			if d < laodominio.ToISODate(hojeDia) {
				continue // já deveria ter acontecido
			}
			summary.VistoriasProjetadas = append(summary.VistoriasProjetadas, dto.VistoriaProjetadaDTO{
				LaoID:           l.ID,
				NumeroLao:       l.NumeroLao,
				CondicionanteID: c.ID,
				Condicionante:   c.Nome,
				Data:            d,
			})
		}
	}

	sort.Slice(summary.LicencasVencendo, func(i, j int) bool {
		return summary.LicencasVencendo[i].Validade < summary.LicencasVencendo[j].Validade
	})
	sort.Slice(summary.VistoriasProjetadas, func(i, j int) bool {
		a, b := summary.VistoriasProjetadas[i], summary.VistoriasProjetadas[j]
		if a.Data != b.Data {
			return a.Data < b.Data
		}
		return a.NumeroLao < b.NumeroLao
	})
	return summary, nil
}

// indexarDiasProtocolo indexa os dias de protocolo pelo nome normalizado do
// tipo, para casar com a categoria livre da licença.
func indexarDiasProtocolo(tipos []*entity.TipoLicenca) map[string]int {
	idx := make(map[string]int, len(tipos))
	for _, t := range tipos {
		idx[laodominio.NormalizeText(t.Nome)] = t.DiasProtocoloRenovacao
	}
	return idx
}
