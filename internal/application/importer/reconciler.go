package importer

import (
	"fmt"
	"time"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
	"github.com/AmbientalSC/licencas/pkg/logger"
)

// Reconciler executa as decisões de criação/atualização de uma importação.
//
// O processamento é sequencial: item por item, condicionante por
// condicionante, data por data — os colaboradores nunca recebem chamadas
// concorrentes deste componente e a ordem de escrita de uma execução é
// determinística. Cópias-sombra locais dos registros já vistos/criados
// detectam duplicatas dentro do mesmo arquivo sem reler o armazenamento.
// Não há controle de concorrência entre execuções simultâneas: duas
// importações ao mesmo tempo podem duplicar registros (limitação aceita).
type Reconciler struct {
	escritor Escritor
	log      *logger.Logger
}

// NewReconciler constrói o reconciliador com os colaboradores de escrita.
func NewReconciler(escritor Escritor, log *logger.Logger) *Reconciler {
	return &Reconciler{escritor: escritor, log: log}
}

// estado sombra de uma execução.
type estadoExecucao struct {
	filiaisPorNome  map[string]*entity.Filial
	laosPorChave    map[string]*entity.Lao
	condsPorLao     map[string][]*entity.Condicionante
	vistoriasVistas map[string]bool // CondicionanteID + "\x00" + ISO
}

func novoEstado(snap Snapshot) *estadoExecucao {
	e := &estadoExecucao{
		filiaisPorNome:  make(map[string]*entity.Filial, len(snap.Filiais)),
		laosPorChave:    make(map[string]*entity.Lao, len(snap.Laos)),
		condsPorLao:     make(map[string][]*entity.Condicionante),
		vistoriasVistas: make(map[string]bool, len(snap.Vistorias)),
	}
	for _, f := range snap.Filiais {
		e.filiaisPorNome[lao.NormalizeText(f.Nome)] = f
	}
	for _, l := range snap.Laos {
		e.laosPorChave[lao.ImportKey(l.NumeroLao, l.Empreendimento)] = l
	}
	for _, c := range snap.Condicionantes {
		e.condsPorLao[c.LaoID] = append(e.condsPorLao[c.LaoID], c)
	}
	for _, v := range snap.Vistorias {
		e.vistoriasVistas[chaveVistoria(v.CondicionanteID, lao.ToISODate(v.Data))] = true
	}
	return e
}

func chaveVistoria(condicionanteID, dataISO string) string {
	return condicionanteID + "\x00" + dataISO
}

// Executar processa a lista de itens do parser contra o snapshot corrente.
//
// Cada item é processado de forma independente: a falha de um é capturada em
// ErrosImportacao e o próximo segue — sucesso parcial é esperado e reportado,
// nunca fatal. A execução sempre conclui e devolve o resumo.
func (r *Reconciler) Executar(itens []ItemImportado, errosParser []string, snap Snapshot) *Resumo {
	resumo := &Resumo{
		ErrosParser:     append([]string{}, errosParser...),
		ErrosImportacao: []string{},
		ItensPendentes:  []ItemPendente{},
	}
	estado := novoEstado(snap)

	if r.log != nil {
		r.log.Info().Int("itens", len(itens)).Msg("iniciando reconciliação da importação")
	}

	for i := range itens {
		if err := r.processarItem(&itens[i], estado, resumo); err != nil {
			resumo.ErrosImportacao = append(resumo.ErrosImportacao,
				fmt.Sprintf("licença %q: %v", itens[i].NumeroLao, err))
		}
	}

	if r.log != nil {
		r.log.Info().
			Int("criados", resumo.Criados).
			Int("atualizados", resumo.Atualizados).
			Int("vistorias_criadas", resumo.VistoriasCriadas).
			Int("erros", len(resumo.ErrosImportacao)).
			Msg("reconciliação concluída")
	}
	return resumo
}

func (r *Reconciler) processarItem(item *ItemImportado, estado *estadoExecucao, resumo *Resumo) error {
	// 1. Filial por nome normalizado; ausência não bloqueia o registro.
	var filialID *string
	if f, ok := estado.filiaisPorNome[lao.NormalizeText(item.Empreendimento)]; ok {
		id := f.ID
		filialID = &id
	} else {
		resumo.FiliaisPendentes++
		resumo.ItensPendentes = append(resumo.ItensPendentes, ItemPendente{
			NumeroLao:      item.NumeroLao,
			Empreendimento: item.Empreendimento,
			Motivo:         "nenhuma filial com nome correspondente ao empreendimento",
		})
	}

	// 2. Revalidação defensiva: o parser já deveria ter filtrado.
	validade, ok := lao.ParseISODate(item.Validade)
	if !ok {
		return fmt.Errorf("validade ausente ou inválida (%q)", item.Validade)
	}

	registro, err := r.criarOuAtualizarLao(item, filialID, validade, estado, resumo)
	if err != nil {
		return err
	}

	// 3 e 4. Condicionantes e vistorias do item.
	for _, cond := range item.Condicionantes {
		if err := r.processarCondicionante(registro, cond, estado, resumo); err != nil {
			return err
		}
	}
	return nil
}

// criarOuAtualizarLao procura o registro pela chave de importação — inclusive
// entre os criados nesta mesma execução, para que duplicatas dentro do
// arquivo reconciliem — e cria ou atualiza conforme o caso.
func (r *Reconciler) criarOuAtualizarLao(item *ItemImportado, filialID *string, validade time.Time, estado *estadoExecucao, resumo *Resumo) (*entity.Lao, error) {
	agora := time.Now()
	var emissao *time.Time
	if d, ok := lao.ParseISODate(item.Emissao); ok {
		emissao = &d
	}

	if existente, ok := estado.laosPorChave[item.ImportKey()]; ok {
		// id e createdAt preservados; anexos intocados.
		atualizado := *existente
		atualizado.NumeroLao = item.NumeroLao
		atualizado.Titulo = item.Titulo
		atualizado.Empreendimento = item.Empreendimento
		atualizado.Categoria = item.Categoria
		atualizado.Processo = item.Processo
		atualizado.FCEI = item.FCEI
		atualizado.CODAM = item.CODAM
		atualizado.Emissao = emissao
		atualizado.Validade = validade
		atualizado.Detalhes = item.Detalhes
		atualizado.Ativo = true
		atualizado.UpdatedAt = agora
		if filialID != nil {
			atualizado.FilialID = filialID
		}
		if err := r.escritor.UpdateLao(&atualizado); err != nil {
			return nil, fmt.Errorf("atualizar licença: %w", err)
		}
		*existente = atualizado
		resumo.Atualizados++
		return existente, nil
	}

	novo := &entity.Lao{
		NumeroLao:      item.NumeroLao,
		Titulo:         item.Titulo,
		Empreendimento: item.Empreendimento,
		FilialID:       filialID,
		Categoria:      item.Categoria,
		Processo:       item.Processo,
		FCEI:           item.FCEI,
		CODAM:          item.CODAM,
		Emissao:        emissao,
		Validade:       validade,
		Detalhes:       item.Detalhes,
		Ativo:          true,
		CreatedAt:      agora,
		UpdatedAt:      agora,
	}
	id, err := r.escritor.AddLao(novo)
	if err != nil {
		return nil, fmt.Errorf("criar licença: %w", err)
	}
	novo.ID = id
	estado.laosPorChave[item.ImportKey()] = novo
	resumo.Criados++
	return novo, nil
}

// processarCondicionante casa a condicionante importada com as existentes da
// licença pelo nome normalizado, mesclando ou criando, e insere as vistorias.
func (r *Reconciler) processarCondicionante(registro *entity.Lao, cond CondicionanteImportada, estado *estadoExecucao, resumo *Resumo) error {
	agora := time.Now()
	nomeNorm := lao.NormalizeText(cond.Nome)

	var alvo *entity.Condicionante
	for _, c := range estado.condsPorLao[registro.ID] {
		if lao.NormalizeText(c.Nome) == nomeNorm {
			alvo = c
			break
		}
	}

	if alvo != nil {
		// Última vistoria = máximo entre a existente, a importada e todas as
		// datas importadas.
		extras := []string{cond.UltimaVistoria}
		if alvo.UltimaVistoria != nil {
			extras = append(extras, lao.ToISODate(*alvo.UltimaVistoria))
		}
		if d, ok := lao.ParseISODate(maxData(cond.DatasVistoria, extras...)); ok {
			alvo.UltimaVistoria = &d
		}
		alvo.Nome = cond.Nome
		alvo.Frequencia = cond.Frequencia
		alvo.MesesIntervalo = cond.MesesIntervalo
		alvo.Ativo = true
		alvo.UpdatedAt = agora
		if err := r.escritor.UpdateCondicionante(alvo); err != nil {
			return fmt.Errorf("atualizar condicionante %q: %w", cond.Nome, err)
		}
		resumo.CondAtualizadas++
	} else {
		alvo = &entity.Condicionante{
			LaoID:          registro.ID,
			Nome:           cond.Nome,
			Frequencia:     cond.Frequencia,
			MesesIntervalo: cond.MesesIntervalo,
			Ativo:          true,
			CreatedAt:      agora,
			UpdatedAt:      agora,
		}
		if d, ok := lao.ParseISODate(maxData(cond.DatasVistoria, cond.UltimaVistoria)); ok {
			alvo.UltimaVistoria = &d
		}
		id, err := r.escritor.AddCondicionante(alvo)
		if err != nil {
			return fmt.Errorf("criar condicionante %q: %w", cond.Nome, err)
		}
		alvo.ID = id
		estado.condsPorLao[registro.ID] = append(estado.condsPorLao[registro.ID], alvo)
		resumo.CondCriadas++
	}

	return r.inserirVistorias(registro, alvo, cond.DatasVistoria, resumo, estado)
}

// inserirVistorias insere cada data deduplicada em ordem crescente, pulando
// as já conhecidas (no snapshot ou criadas nesta execução). O colaborador
// também pode sinalizar duplicata devolvendo id vazio — contado como
// ignorada, não como erro.
func (r *Reconciler) inserirVistorias(registro *entity.Lao, cond *entity.Condicionante, datas []string, resumo *Resumo, estado *estadoExecucao) error {
	for _, dataISO := range unirDatas(datas, nil) {
		chave := chaveVistoria(cond.ID, dataISO)
		if estado.vistoriasVistas[chave] {
			resumo.VistoriasIgnoradas++
			continue
		}
		data, ok := lao.ParseISODate(dataISO)
		if !ok {
			continue
		}
		id, err := r.escritor.AddVistoria(&entity.Vistoria{
			LaoID:           registro.ID,
			CondicionanteID: cond.ID,
			Data:            data,
			Fonte:           entity.FonteImport,
			CreatedAt:       time.Now(),
		})
		if err != nil {
			return fmt.Errorf("inserir vistoria %s da condicionante %q: %w", dataISO, cond.Nome, err)
		}
		estado.vistoriasVistas[chave] = true
		if id == "" {
			resumo.VistoriasIgnoradas++
			continue
		}
		resumo.VistoriasCriadas++
	}
	return nil
}
