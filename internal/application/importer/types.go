// Package importer implementa o pipeline de importação de planilhas LAO:
// o parser lê o arquivo (aba "Capa" + abas de detalhe por empreendimento) e
// o reconciliador executa as decisões de criação/atualização contra as
// coleções existentes, produzindo um resumo da execução.
package importer

import (
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// CondicionanteImportada condicionante reconciliada de uma ou mais linhas da
// planilha. Objeto transitório de importação — nunca é persistido.
type CondicionanteImportada struct {
	Nome           string
	Frequencia     lao.Frequencia
	MesesIntervalo int
	DatasVistoria  []string // ISO, sem duplicatas, ordem crescente
	UltimaVistoria string   // ISO, máxima de DatasVistoria; vazio se nenhuma
}

// ItemImportado entidade reconciliada da planilha antes de virar escrita de
// Lao/Condicionante/Vistoria. Objeto transitório de importação.
type ItemImportado struct {
	NumeroLao      string
	Titulo         string
	Empreendimento string
	Categoria      string
	Processo       string
	FCEI           string
	CODAM          string
	Emissao        string // ISO ou vazio
	Validade       string // ISO; obrigatória após o filtro de validação
	Detalhes       []entity.DetalheKV
	Condicionantes []CondicionanteImportada
}

// ImportKey chave de reconciliação do item (número + empreendimento normalizados).
func (i *ItemImportado) ImportKey() string {
	return lao.ImportKey(i.NumeroLao, i.Empreendimento)
}

// ParseResult saída do parser: itens válidos + erros estruturais de dados.
// Erros de parse nunca são propagados como erro Go; a execução sempre conclui.
type ParseResult struct {
	Itens       []ItemImportado
	ErrosParser []string
}

// ItemPendente licença cuja filial não pôde ser resolvida automaticamente.
type ItemPendente struct {
	NumeroLao      string `json:"numero_lao"`
	Empreendimento string `json:"empreendimento"`
	Motivo         string `json:"motivo"`
}

// Resumo resultado de uma execução de importação.
type Resumo struct {
	Criados            int `json:"criados"`
	Atualizados        int `json:"atualizados"`
	FiliaisPendentes   int `json:"filiais_pendentes"`
	CondCriadas        int `json:"condicionantes_criadas"`
	CondAtualizadas    int `json:"condicionantes_atualizadas"`
	VistoriasCriadas   int `json:"vistorias_criadas"`
	VistoriasIgnoradas int `json:"vistorias_ignoradas"`

	ErrosParser     []string       `json:"erros_parser"`
	ErrosImportacao []string       `json:"erros_importacao"`
	ItensPendentes  []ItemPendente `json:"itens_pendentes"`
}

// Escritor colaboradores de escrita injetados no reconciliador (camada de
// persistência fica fora deste núcleo). AddVistoria devolve id vazio para
// sinalizar "duplicada, não inserida" — contado como ignorada, não como erro.
type Escritor interface {
	AddLao(item *entity.Lao) (string, error)
	UpdateLao(item *entity.Lao) error
	DeleteLao(id string) error
	AddCondicionante(cond *entity.Condicionante) (string, error)
	UpdateCondicionante(cond *entity.Condicionante) error
	DeleteCondicionante(id string) error
	AddVistoria(vistoria *entity.Vistoria) (string, error)
}

// Snapshot leitura do estado corrente fornecida pelo chamador; o
// reconciliador não acessa armazenamento diretamente.
type Snapshot struct {
	Filiais        []*entity.Filial
	Laos           []*entity.Lao
	Condicionantes []*entity.Condicionante
	Vistorias      []*entity.Vistoria
}
