package usecase

import (
	"sync"

	"github.com/AmbientalSC/licencas/internal/application/importer"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
	"github.com/AmbientalSC/licencas/pkg/logger"
)

// ImportUseCase orquestra uma importação de planilha: parse do arquivo,
// snapshot das coleções atuais, reconciliação e guarda do último resumo
// para o relatório em PDF.
type ImportUseCase struct {
	filialRepo repository.FilialRepository
	laoRepo    repository.LaoRepository
	condRepo   repository.CondicionanteRepository
	vistRepo   repository.VistoriaRepository
	escritor   importer.Escritor
	log        *logger.Logger

	mu           sync.Mutex
	ultimoResumo *importer.Resumo
}

// NewImportUseCase constrói o caso de uso de importação.
func NewImportUseCase(
	filialRepo repository.FilialRepository,
	laoRepo repository.LaoRepository,
	condRepo repository.CondicionanteRepository,
	vistRepo repository.VistoriaRepository,
	escritor importer.Escritor,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		filialRepo: filialRepo,
		laoRepo:    laoRepo,
		condRepo:   condRepo,
		vistRepo:   vistRepo,
		escritor:   escritor,
		log:        log,
	}
}

// Executar processa o arquivo de planilha de ponta a ponta e devolve o resumo.
// Erros de dados (parse, itens inválidos, falhas pontuais de escrita) ficam
// dentro do resumo; só falhas de infraestrutura retornam erro.
//
// Uma importação por vez: o mutex cobre do snapshot à guarda do resumo, de
// modo que uploads concorrentes executam em série e nenhum reconcilia sobre
// um snapshot que outra execução está invalidando.
func (uc *ImportUseCase) Executar(arquivo []byte) (*importer.Resumo, error) {
	resultado := importer.ParseWorkbook(arquivo)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap, err := uc.carregarSnapshot()
	if err != nil {
		return nil, err
	}

	resumo := importer.NewReconciler(uc.escritor, uc.log).Executar(resultado.Itens, resultado.ErrosParser, snap)
	uc.ultimoResumo = resumo
	return resumo, nil
}

// UltimoResumo devolve o resumo da última execução, ou nil se nenhuma houve.
func (uc *ImportUseCase) UltimoResumo() *importer.Resumo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ultimoResumo
}

func (uc *ImportUseCase) carregarSnapshot() (importer.Snapshot, error) {
	var snap importer.Snapshot
	var err error
	if snap.Filiais, err = uc.filialRepo.ListAll(); err != nil {
		return snap, err
	}
	if snap.Laos, err = uc.laoRepo.ListAll(); err != nil {
		return snap, err
	}
	if snap.Condicionantes, err = uc.condRepo.ListAll(); err != nil {
		return snap, err
	}
	if snap.Vistorias, err = uc.vistRepo.ListAll(); err != nil {
		return snap, err
	}
	return snap, nil
}
