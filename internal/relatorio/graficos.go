package relatorio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Paletas fixas do painel; as cores se repetem em ciclo quando há mais
// operadores do que cores.
var (
	coresQuantidade = []string{"#2563eb", "#7c3aed", "#fb7185", "#0ea5e9", "#f97316", "#059669", "#a855f7"}
	coresValor      = []string{"#d946ef", "#22d3ee", "#f97316", "#14b8a6", "#6366f1", "#f43f5e"}
)

// ConjuntoDeDados é uma linha do gráfico no formato consumido pelo
// front (Chart.js).
type ConjuntoDeDados struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
	Fill            bool      `json:"fill"`
}

type GraficoLinha struct {
	Labels   []string          `json:"labels"`
	Datasets []ConjuntoDeDados `json:"datasets"`
}

// GraficoQuantidade converte a série de contagem no gráfico de linhas do
// painel, plotando o acumulado de cada operador.
func GraficoQuantidade(rel RelatorioQuantidade) GraficoLinha {
	labels := make([]string, 0, len(rel.TotaisMensais))
	for _, p := range rel.TotaisMensais {
		labels = append(labels, p.Mes)
	}
	datasets := make([]ConjuntoDeDados, 0, len(rel.Linhas))
	for i, linha := range rel.Linhas {
		dados := make([]float64, 0, len(linha.Serie))
		for _, p := range linha.Serie {
			dados = append(dados, float64(p.Acumulado))
		}
		cor := coresQuantidade[i%len(coresQuantidade)]
		datasets = append(datasets, ConjuntoDeDados{
			Label:           linha.Nome,
			Data:            dados,
			BorderColor:     cor,
			BackgroundColor: cor,
			Tension:         0.3,
		})
	}
	return GraficoLinha{Labels: labels, Datasets: datasets}
}

// GraficoValor é o equivalente monetário de GraficoQuantidade.
func GraficoValor(rel RelatorioValor) GraficoLinha {
	labels := make([]string, 0, len(rel.TotaisMensais))
	for _, p := range rel.TotaisMensais {
		labels = append(labels, p.Mes)
	}
	datasets := make([]ConjuntoDeDados, 0, len(rel.Linhas))
	for i, linha := range rel.Linhas {
		dados := make([]float64, 0, len(linha.Serie))
		for _, p := range linha.Serie {
			dados = append(dados, p.Acumulado.InexactFloat64())
		}
		cor := coresValor[i%len(coresValor)]
		datasets = append(datasets, ConjuntoDeDados{
			Label:           linha.Nome,
			Data:            dados,
			BorderColor:     cor,
			BackgroundColor: cor,
			Tension:         0.3,
		})
	}
	return GraficoLinha{Labels: labels, Datasets: datasets}
}

// SerieCombinada junta as duas séries de um mesmo operador em uma linha.
type SerieCombinada struct {
	Nome       string            `json:"name"`
	Quantidade []PontoQuantidade `json:"quantitySeries"`
	Valor      []PontoValor      `json:"valueSeries"`
}

type RelatorioCombinado struct {
	Linhas           []SerieCombinada  `json:"rows"`
	TotaisQuantidade []PontoQuantidade `json:"quantityTotals"`
	TotaisValor      []PontoValor      `json:"valueTotals"`
}

// CombinarRelatorios cruza as linhas dos dois relatórios pelo nome do
// operador. Um operador presente em só um dos lados ganha no outro uma
// série zerada sobre o mesmo eixo de meses.
func CombinarRelatorios(quantidade RelatorioQuantidade, valor RelatorioValor, meses []string) RelatorioCombinado {
	porNomeQtd := make(map[string][]PontoQuantidade, len(quantidade.Linhas))
	for _, linha := range quantidade.Linhas {
		porNomeQtd[linha.Nome] = linha.Serie
	}
	porNomeValor := make(map[string][]PontoValor, len(valor.Linhas))
	for _, linha := range valor.Linhas {
		porNomeValor[linha.Nome] = linha.Serie
	}

	nomes := make([]string, 0, len(porNomeQtd))
	for nome := range porNomeQtd {
		nomes = append(nomes, nome)
	}
	for nome := range porNomeValor {
		if _, ok := porNomeQtd[nome]; !ok {
			nomes = append(nomes, nome)
		}
	}
	sort.Strings(nomes)

	linhas := make([]SerieCombinada, 0, len(nomes))
	for _, nome := range nomes {
		serieQtd := porNomeQtd[nome]
		if serieQtd == nil {
			serieQtd = serieQuantidadeZerada(meses)
		}
		serieValor := porNomeValor[nome]
		if serieValor == nil {
			serieValor = serieValorZerada(meses)
		}
		linhas = append(linhas, SerieCombinada{Nome: nome, Quantidade: serieQtd, Valor: serieValor})
	}
	return RelatorioCombinado{
		Linhas:           linhas,
		TotaisQuantidade: quantidade.TotaisMensais,
		TotaisValor:      valor.TotaisMensais,
	}
}

func serieQuantidadeZerada(meses []string) []PontoQuantidade {
	serie := make([]PontoQuantidade, 0, len(meses))
	for _, mes := range meses {
		serie = append(serie, PontoQuantidade{Mes: mes})
	}
	return serie
}

func serieValorZerada(meses []string) []PontoValor {
	serie := make([]PontoValor, 0, len(meses))
	for _, mes := range meses {
		serie = append(serie, PontoValor{Mes: mes, Acumulado: decimal.Zero, Entradas: decimal.Zero, Saidas: decimal.Zero})
	}
	return serie
}
