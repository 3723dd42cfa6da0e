package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// Nome normalizado da aba de capa.
const abaCapa = "capa"

// Leitura sempre pelo valor cru: células tipadas como data chegam como o
// serial numérico da planilha (decodificado por ParseWorkbookDate) em vez da
// string de exibição do formato numérico, que seria imprestável.
var opcoesLeitura = excelize.Options{RawCellValue: true}

// Abas ignoradas no passe de detalhe (variações de capa, resumos e
// cronogramas), comparadas pela forma normalizada.
var abasIgnoradas = map[string]bool{
	"capa":        true,
	"resumo":      true,
	"cronograma":  true,
	"agenda":      true,
	"sumario":     true,
	"instrucoes":  true,
	"orientacoes": true,
}

// Colunas da linha de condicionante na capa: nome, frequência e até 12
// células mensais de data.
const (
	colNomeCondicionante = 1
	colFrequencia        = 2
	colPrimeiraData      = 3
	numColunasData       = 12
)

// ParseWorkbook lê a planilha completa e devolve os itens reconciliados mais
// os erros estruturais encontrados. Problemas de dados derrubam a aba ou o
// item ofensor e viram mensagens em ErrosParser; a função nunca propaga
// pânico nem erro fatal.
func ParseWorkbook(dados []byte) *ParseResult {
	out := &ParseResult{Itens: []ItemImportado{}, ErrosParser: []string{}}

	f, err := excelize.OpenReader(bytes.NewReader(dados))
	if err != nil {
		out.ErrosParser = append(out.ErrosParser, fmt.Sprintf("arquivo de planilha inválido: %v", err))
		return out
	}
	defer func() { _ = f.Close() }()

	// Passe de detalhe: uma aba por empreendimento, linhas chave/valor.
	detalhes := parseAbasDetalhe(f, out)

	// Passe de capa: uma linha por licença/condicionante/coluna mensal.
	nomeCapa := localizarCapa(f)
	if nomeCapa == "" {
		// Sem capa os registros de detalhe seguem sozinhos.
		out.ErrosParser = append(out.ErrosParser, `planilha de capa "Capa" não encontrada no arquivo`)
		out.Itens = filtrarItens(detalhes, &out.ErrosParser)
		return out
	}
	itensCapa := parseCapa(f, nomeCapa)

	// Merge cruzado: cada registro de detalhe procura seu item de capa pela
	// chave de importação; sem chave, tenta só o empreendimento normalizado;
	// sem casamento algum vira item independente.
	mesclados := mesclarPasses(itensCapa, detalhes)

	out.Itens = filtrarItens(mesclados, &out.ErrosParser)
	return out
}

// parseAbasDetalhe percorre as abas fora do conjunto ignorado extraindo
// metadados da licença e pares chave/valor genéricos.
func parseAbasDetalhe(f *excelize.File, out *ParseResult) []ItemImportado {
	var itens []ItemImportado
	for _, nomeAba := range f.GetSheetList() {
		if abasIgnoradas[lao.NormalizeText(nomeAba)] {
			continue
		}
		linhas, err := f.GetRows(nomeAba, opcoesLeitura)
		if err != nil {
			out.ErrosParser = append(out.ErrosParser, fmt.Sprintf("aba %q ilegível: %v", nomeAba, err))
			continue
		}
		if item, ok := parseAbaDetalhe(nomeAba, linhas); ok {
			itens = append(itens, item)
		}
	}
	return itens
}

// parseAbaDetalhe lê uma aba de detalhe como pares (chave, valor).
// Chaves reconhecidas roteiam para campos dedicados; as demais viram
// DetalheKV na ordem de inserção. Abas sem nada aproveitável são puladas.
func parseAbaDetalhe(nomeAba string, linhas [][]string) (ItemImportado, bool) {
	item := ItemImportado{}
	for _, linha := range linhas {
		chave := strings.TrimSpace(celula(linha, 0))
		if chave == "" {
			continue
		}
		valor := strings.TrimSpace(celula(linha, 1))

		// Preferir a data ISO interpretada ao texto cru quando possível.
		roteado := valor
		if iso, ok := lao.ParseWorkbookDate(valor); ok {
			roteado = iso
		}

		nchave := lao.NormalizeText(chave)
		switch {
		case nchave == "empreendimento":
			item.Empreendimento = roteado
		case nchave == "processo":
			item.Processo = roteado
		case nchave == "fcei":
			item.FCEI = roteado
		case nchave == "codam":
			item.CODAM = roteado
		case strings.Contains(nchave, "licenca"):
			item.NumeroLao = roteado
		case strings.Contains(nchave, "emissao"):
			item.Emissao = roteado
		case nchave == "validade":
			item.Validade = roteado
		default:
			if valor != "" {
				item.Detalhes = append(item.Detalhes, entity.DetalheKV{
					Chave: chave,
					Valor: valor,
					Ordem: len(item.Detalhes),
				})
			}
		}
	}

	if item.Empreendimento == "" && item.NumeroLao == "" && len(item.Detalhes) == 0 {
		return ItemImportado{}, false
	}
	// Cabeçalhos incompletos não descartam a aba: o nome dela serve de apoio.
	if item.NumeroLao == "" {
		item.NumeroLao = "LAO " + nomeAba
	}
	if item.Empreendimento == "" {
		item.Empreendimento = nomeAba
	}
	if item.Titulo == "" {
		item.Titulo = item.NumeroLao
	}
	return item, true
}

// localizarCapa devolve o nome real da aba cuja forma normalizada é "capa".
func localizarCapa(f *excelize.File) string {
	for _, nome := range f.GetSheetList() {
		if lao.NormalizeText(nome) == abaCapa {
			return nome
		}
	}
	return ""
}

// parseCapa varre a capa a partir da segunda linha (a primeira é cabeçalho).
// Linha com primeira coluna contendo "lao" abre um bloco de entidade; linha
// com segunda coluna preenchida descreve uma condicionante do bloco corrente.
func parseCapa(f *excelize.File, nomeCapa string) []ItemImportado {
	linhas, err := f.GetRows(nomeCapa, opcoesLeitura)
	if err != nil || len(linhas) < 2 {
		return nil
	}

	var itens []ItemImportado
	var atual *ItemImportado

	for _, linha := range linhas[1:] {
		col0 := strings.TrimSpace(celula(linha, 0))
		if col0 != "" && strings.Contains(lao.NormalizeText(col0), "lao") {
			numero, empreendimento := separarCabecalhoLao(col0)
			itens = append(itens, ItemImportado{
				NumeroLao:      numero,
				Titulo:         numero,
				Empreendimento: empreendimento,
			})
			atual = &itens[len(itens)-1]
			continue
		}

		nome := strings.TrimSpace(celula(linha, colNomeCondicionante))
		if nome == "" || atual == nil {
			continue
		}
		rotulo := strings.TrimSpace(celula(linha, colFrequencia))
		freq := lao.ResolveFrequencia(rotulo)

		var datas []string
		for i := 0; i < numColunasData; i++ {
			if iso, ok := lao.ParseWorkbookDate(celula(linha, colPrimeiraData+i)); ok {
				datas = append(datas, iso)
			}
		}
		nova := CondicionanteImportada{
			Nome:           nome,
			Frequencia:     freq.Preset,
			MesesIntervalo: freq.MesesIntervalo,
			DatasVistoria:  unirDatas(datas, nil),
		}
		nova.UltimaVistoria = maxData(nova.DatasVistoria)

		anexarCondicionante(atual, nova, rotulo != "")
	}
	return itens
}

// anexarCondicionante mescla a nova ocorrência numa condicionante de mesmo
// nome normalizado do item, ou a acrescenta quando inédita.
func anexarCondicionante(item *ItemImportado, nova CondicionanteImportada, rotuloPreenchido bool) {
	nomeNorm := lao.NormalizeText(nova.Nome)
	for i, c := range item.Condicionantes {
		if lao.NormalizeText(c.Nome) == nomeNorm {
			item.Condicionantes[i] = mergeCondicionante(c, nova, rotuloPreenchido)
			return
		}
	}
	item.Condicionantes = append(item.Condicionantes, nova)
}

// separarCabecalhoLao extrai número da licença e empreendimento da célula de
// abertura do bloco. Multilinha: primeira linha é o número e as demais o
// empreendimento. Linha única: tenta separar pelo primeiro delimitador após
// o número.
func separarCabecalhoLao(texto string) (numero, empreendimento string) {
	var linhas []string
	for _, l := range strings.Split(texto, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			linhas = append(linhas, t)
		}
	}
	if len(linhas) == 0 {
		return "", ""
	}
	if len(linhas) > 1 {
		return linhas[0], strings.Join(linhas[1:], " ")
	}

	linha := linhas[0]
	for _, sep := range []string{" - ", " – ", " — ", ": ", " | "} {
		if idx := strings.Index(linha, sep); idx > 0 {
			return strings.TrimSpace(linha[:idx]), strings.TrimSpace(linha[idx+len(sep):])
		}
	}
	return linha, ""
}

// mesclarPasses casa cada registro de detalhe com um item da capa.
func mesclarPasses(itensCapa, detalhes []ItemImportado) []ItemImportado {
	out := make([]ItemImportado, len(itensCapa))
	copy(out, itensCapa)

	porChave := make(map[string]int, len(out))
	for i := range out {
		porChave[out[i].ImportKey()] = i
	}

	for _, det := range detalhes {
		if idx, ok := porChave[det.ImportKey()]; ok {
			out[idx] = preencherItem(out[idx], det)
			continue
		}
		// Sem casamento exato de chave: tenta só o empreendimento.
		if idx, ok := buscarPorEmpreendimento(out, det.Empreendimento); ok {
			out[idx] = preencherItem(out[idx], det)
			continue
		}
		out = append(out, det)
	}
	return out
}

func buscarPorEmpreendimento(itens []ItemImportado, empreendimento string) (int, bool) {
	alvo := lao.NormalizeText(empreendimento)
	if alvo == "" {
		return 0, false
	}
	for i := range itens {
		if lao.NormalizeText(itens[i].Empreendimento) == alvo {
			return i, true
		}
	}
	return 0, false
}

// filtrarItens aplica os requisitos obrigatórios de todo registro:
// número da licença, empreendimento e validade.
func filtrarItens(itens []ItemImportado, erros *[]string) []ItemImportado {
	out := make([]ItemImportado, 0, len(itens))
	for _, item := range itens {
		nome := item.NumeroLao
		if nome == "" {
			nome = item.Titulo
		}
		if item.NumeroLao == "" || item.Empreendimento == "" {
			*erros = append(*erros, fmt.Sprintf("item %q descartado: número da licença ou empreendimento ausente", nome))
			continue
		}
		if item.Validade == "" {
			*erros = append(*erros, fmt.Sprintf("licença %q descartada: data de validade ausente", item.NumeroLao))
			continue
		}
		out = append(out, item)
	}
	return out
}

// celula devolve o conteúdo da coluna idx ou vazio quando a linha é curta.
func celula(linha []string, idx int) string {
	if idx < 0 || idx >= len(linha) {
		return ""
	}
	return linha[idx]
}
