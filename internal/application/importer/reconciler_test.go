package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// escritorFake colaborador de escrita em memória. Guarda tudo o que recebe
// para que os testes reconstruam o snapshot de uma segunda execução.
type escritorFake struct {
	seq       int
	laos      map[string]*entity.Lao
	conds     map[string]*entity.Condicionante
	vistorias map[string]*entity.Vistoria

	falharNumeroLao string // AddLao falha para este número
}

func novoEscritorFake() *escritorFake {
	return &escritorFake{
		laos:      map[string]*entity.Lao{},
		conds:     map[string]*entity.Condicionante{},
		vistorias: map[string]*entity.Vistoria{},
	}
}

func (e *escritorFake) novoID() string {
	e.seq++
	return fmt.Sprintf("id-%03d", e.seq)
}

func (e *escritorFake) AddLao(l *entity.Lao) (string, error) {
	if e.falharNumeroLao != "" && l.NumeroLao == e.falharNumeroLao {
		return "", fmt.Errorf("falha simulada de escrita")
	}
	id := e.novoID()
	cp := *l
	cp.ID = id
	e.laos[id] = &cp
	return id, nil
}

func (e *escritorFake) UpdateLao(l *entity.Lao) error {
	cp := *l
	e.laos[l.ID] = &cp
	return nil
}

func (e *escritorFake) DeleteLao(id string) error {
	delete(e.laos, id)
	return nil
}

func (e *escritorFake) AddCondicionante(c *entity.Condicionante) (string, error) {
	id := e.novoID()
	cp := *c
	cp.ID = id
	e.conds[id] = &cp
	return id, nil
}

func (e *escritorFake) UpdateCondicionante(c *entity.Condicionante) error {
	cp := *c
	e.conds[c.ID] = &cp
	return nil
}

func (e *escritorFake) DeleteCondicionante(id string) error {
	delete(e.conds, id)
	return nil
}

func (e *escritorFake) AddVistoria(v *entity.Vistoria) (string, error) {
	chave := v.CondicionanteID + "\x00" + lao.ToISODate(v.Data)
	if _, ok := e.vistorias[chave]; ok {
		return "", nil // duplicada: sinaliza sem erro
	}
	id := e.novoID()
	cp := *v
	cp.ID = id
	e.vistorias[chave] = &cp
	return id, nil
}

// snapshotDoFake reconstrói o snapshot a partir do que o fake persistiu.
func (e *escritorFake) snapshot(filiais ...*entity.Filial) Snapshot {
	s := Snapshot{Filiais: filiais}
	for _, l := range e.laos {
		s.Laos = append(s.Laos, l)
	}
	for _, c := range e.conds {
		s.Condicionantes = append(s.Condicionantes, c)
	}
	for _, v := range e.vistorias {
		s.Vistorias = append(s.Vistorias, v)
	}
	return s
}

func itensDeTeste() []ItemImportado {
	return []ItemImportado{
		{
			NumeroLao:      "LAO 123/2021",
			Titulo:         "LAO 123/2021",
			Empreendimento: "Fazenda São João",
			Validade:       "2025-06-30",
			Condicionantes: []CondicionanteImportada{
				{
					Nome:           "Monitoramento",
					Frequencia:     lao.FreqTrimestral,
					DatasVistoria:  []string{"2024-01-15", "2024-04-15"},
					UltimaVistoria: "2024-04-15",
				},
			},
		},
		{
			NumeroLao:      "LAO 77/2022",
			Titulo:         "LAO 77/2022",
			Empreendimento: "Sítio Verde",
			Validade:       "2026-01-31",
		},
	}
}

func TestReconciler_CriaTudoNaPrimeiraExecucao(t *testing.T) {
	fake := novoEscritorFake()
	r := NewReconciler(fake, nil)

	filial := &entity.Filial{ID: "f1", Nome: "Fazenda São João"}
	resumo := r.Executar(itensDeTeste(), nil, Snapshot{Filiais: []*entity.Filial{filial}})

	assert.Equal(t, 2, resumo.Criados)
	assert.Equal(t, 0, resumo.Atualizados)
	assert.Equal(t, 1, resumo.CondCriadas)
	assert.Equal(t, 2, resumo.VistoriasCriadas)
	assert.Equal(t, 0, resumo.VistoriasIgnoradas)
	assert.Empty(t, resumo.ErrosImportacao)

	// "Sítio Verde" não tem filial correspondente: pendente, mas criado assim
	// mesmo com filial nula.
	assert.Equal(t, 1, resumo.FiliaisPendentes)
	require.Len(t, resumo.ItensPendentes, 1)
	assert.Equal(t, "LAO 77/2022", resumo.ItensPendentes[0].NumeroLao)

	var comFilial, semFilial int
	for _, l := range fake.laos {
		if l.FilialID != nil {
			comFilial++
		} else {
			semFilial++
		}
	}
	assert.Equal(t, 1, comFilial)
	assert.Equal(t, 1, semFilial)
}

// Reexecutar a mesma lista contra o estado resultante é idempotente:
// tudo casa pela chave de importação e nenhuma vistoria é recriada.
func TestReconciler_SegundaExecucaoIdempotente(t *testing.T) {
	fake := novoEscritorFake()
	r := NewReconciler(fake, nil)
	filial := &entity.Filial{ID: "f1", Nome: "Fazenda São João"}

	r.Executar(itensDeTeste(), nil, Snapshot{Filiais: []*entity.Filial{filial}})
	resumo := r.Executar(itensDeTeste(), nil, fake.snapshot(filial))

	assert.Equal(t, 0, resumo.Criados)
	assert.Equal(t, 2, resumo.Atualizados)
	assert.Equal(t, 0, resumo.CondCriadas)
	assert.Equal(t, 1, resumo.CondAtualizadas)
	assert.Equal(t, 0, resumo.VistoriasCriadas)
	assert.Equal(t, 2, resumo.VistoriasIgnoradas)
	assert.Empty(t, resumo.ErrosImportacao)
}

// Duplicatas dentro do mesmo arquivo reconciliam sem ida ao banco: o segundo
// item de mesma chave atualiza o que o primeiro criou.
func TestReconciler_DuplicataDentroDaExecucao(t *testing.T) {
	fake := novoEscritorFake()
	r := NewReconciler(fake, nil)

	itens := itensDeTeste()[:1]
	duplicado := itens[0]
	duplicado.NumeroLao = "lao  123/2021" // mesma chave após normalização
	duplicado.Empreendimento = "FAZENDA SÃO JOÃO"
	itens = append(itens, duplicado)

	resumo := r.Executar(itens, nil, Snapshot{})
	assert.Equal(t, 1, resumo.Criados)
	assert.Equal(t, 1, resumo.Atualizados)
	assert.Len(t, fake.laos, 1)
	// As vistorias do duplicado já constam nas sombras da execução.
	assert.Equal(t, 2, resumo.VistoriasCriadas)
	assert.Equal(t, 2, resumo.VistoriasIgnoradas)
}

// A falha de um item não derruba a execução: vira entrada em erros de
// importação e os demais itens seguem normalmente.
func TestReconciler_FalhaIsoladaPorItem(t *testing.T) {
	fake := novoEscritorFake()
	fake.falharNumeroLao = "LAO 123/2021"
	r := NewReconciler(fake, nil)

	resumo := r.Executar(itensDeTeste(), nil, Snapshot{})
	assert.Equal(t, 1, resumo.Criados, "o item sadio deve ser criado")
	require.Len(t, resumo.ErrosImportacao, 1)
	assert.Contains(t, resumo.ErrosImportacao[0], "LAO 123/2021")
}

// Item sem validade é rejeitado na reverificação defensiva do reconciliador.
func TestReconciler_ValidadeAusente(t *testing.T) {
	fake := novoEscritorFake()
	r := NewReconciler(fake, nil)

	itens := []ItemImportado{{
		NumeroLao:      "LAO 1/2024",
		Empreendimento: "Qualquer",
	}}
	resumo := r.Executar(itens, nil, Snapshot{})
	assert.Equal(t, 0, resumo.Criados)
	require.Len(t, resumo.ErrosImportacao, 1)
	assert.Contains(t, resumo.ErrosImportacao[0], "validade")
}

// O colaborador pode sinalizar duplicata devolvendo id vazio; conta como
// ignorada, não como erro.
func TestReconciler_ColaboradorSinalizaDuplicata(t *testing.T) {
	fake := novoEscritorFake()
	r := NewReconciler(fake, nil)
	itens := itensDeTeste()[:1]

	r.Executar(itens, nil, Snapshot{})

	// Segunda execução com snapshot sem as vistorias (simula leitura
	// defasada): as sombras não as conhecem, o colaborador devolve id vazio
	// e elas contam como ignoradas.
	snap := fake.snapshot()
	snap.Vistorias = nil
	resumo := r.Executar(itens, nil, snap)
	assert.Equal(t, 0, resumo.VistoriasCriadas)
	assert.Equal(t, 2, resumo.VistoriasIgnoradas)
	assert.Empty(t, resumo.ErrosImportacao)
}

func TestReconciler_ErrosDoParserPreservados(t *testing.T) {
	r := NewReconciler(novoEscritorFake(), nil)
	resumo := r.Executar(nil, []string{"erro estrutural"}, Snapshot{})
	assert.Equal(t, []string{"erro estrutural"}, resumo.ErrosParser)
	assert.NotNil(t, resumo.ErrosImportacao)
}
