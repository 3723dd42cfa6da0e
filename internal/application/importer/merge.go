package importer

import (
	"sort"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
)

// Funções de merge puras: recebem dois valores e devolvem um novo, sem mutar
// os argumentos, para que o algoritmo seja testável isoladamente.

// mergeCondicionante une uma nova ocorrência de condicionante numa já vista
// (mesmo nome normalizado, dentro da mesma entidade): as datas de vistoria
// são unidas, a última vistoria é recalculada como a máxima da união e os
// campos de frequência da nova ocorrência só prevalecem quando o rótulo veio
// preenchido.
func mergeCondicionante(existente, nova CondicionanteImportada, sobrescreverFrequencia bool) CondicionanteImportada {
	out := existente
	out.DatasVistoria = unirDatas(existente.DatasVistoria, nova.DatasVistoria)
	out.UltimaVistoria = maxData(out.DatasVistoria)
	if sobrescreverFrequencia {
		out.Frequencia = nova.Frequencia
		out.MesesIntervalo = nova.MesesIntervalo
	}
	return out
}

// preencherItem completa um item da capa com um registro de detalhe casado
// pela chave de importação: somente campos vazios da capa são preenchidos
// (a capa vence em conflito) e os blocos de detalhe são unidos sem
// duplicatas, preservando a ordem de primeira ocorrência.
func preencherItem(capa, detalhe ItemImportado) ItemImportado {
	out := capa
	if out.Empreendimento == "" {
		out.Empreendimento = detalhe.Empreendimento
	}
	if out.Titulo == "" {
		out.Titulo = detalhe.Titulo
	}
	if out.Categoria == "" {
		out.Categoria = detalhe.Categoria
	}
	if out.Processo == "" {
		out.Processo = detalhe.Processo
	}
	if out.FCEI == "" {
		out.FCEI = detalhe.FCEI
	}
	if out.CODAM == "" {
		out.CODAM = detalhe.CODAM
	}
	if out.Emissao == "" {
		out.Emissao = detalhe.Emissao
	}
	if out.Validade == "" {
		out.Validade = detalhe.Validade
	}
	out.Detalhes = unirDetalhes(capa.Detalhes, detalhe.Detalhes)
	return out
}

// unirDatas une duas listas de datas ISO sem duplicatas, ordem crescente.
// A ordenação lexicográfica de ISO coincide com a cronológica.
func unirDatas(a, b []string) []string {
	vistos := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, d := range a {
		if d != "" && !vistos[d] {
			vistos[d] = true
			out = append(out, d)
		}
	}
	for _, d := range b {
		if d != "" && !vistos[d] {
			vistos[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// unirDetalhes une blocos chave/valor sem duplicatas (par chave+valor
// normalizado), preservando a primeira ocorrência e renumerando Ordem.
func unirDetalhes(a, b []entity.DetalheKV) []entity.DetalheKV {
	vistos := make(map[string]bool, len(a)+len(b))
	out := make([]entity.DetalheKV, 0, len(a)+len(b))
	for _, lista := range [][]entity.DetalheKV{a, b} {
		for _, kv := range lista {
			chave := lao.NormalizeText(kv.Chave) + "\x00" + lao.NormalizeText(kv.Valor)
			if vistos[chave] {
				continue
			}
			vistos[chave] = true
			kv.Ordem = len(out)
			out = append(out, kv)
		}
	}
	return out
}

// maxData devolve a maior data ISO entre a lista e os extras; vazio se nenhuma.
func maxData(datas []string, extras ...string) string {
	max := ""
	for _, d := range datas {
		if d > max {
			max = d
		}
	}
	for _, d := range extras {
		if d > max {
			max = d
		}
	}
	return max
}
