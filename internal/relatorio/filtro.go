package relatorio

import (
	"github.com/AtrioGestao/api-clientes/internal/periodo"
	"github.com/shopspring/decimal"
)

// IntervaloMeses expande um par de chaves "AAAA-MM" na lista inclusiva de
// meses entre elas. Limites invertidos são trocados em vez de rejeitados.
func IntervaloMeses(inicio, fim string) ([]string, error) {
	dataInicio, err := periodo.ParseChaveMes(inicio)
	if err != nil {
		return nil, err
	}
	dataFim, err := periodo.ParseChaveMes(fim)
	if err != nil {
		return nil, err
	}
	if dataFim.Before(dataInicio) {
		dataInicio, dataFim = dataFim, dataInicio
	}
	var meses []string
	for mes := range periodo.MesesEntre(dataInicio, dataFim) {
		meses = append(meses, periodo.ChaveMes(mes))
	}
	return meses, nil
}

// FiltrarRelatorioQuantidade recorta o relatório para a janela de meses
// pedida. O acumulado é semeado a partir do último ponto anterior à
// janela; meses em que o operador não teve movimento entram com entradas
// e saídas zeradas e o acumulado carregado para frente.
func FiltrarRelatorioQuantidade(rel RelatorioQuantidade, meses []string) RelatorioQuantidade {
	if len(meses) == 0 {
		return rel
	}
	linhas := make([]SerieQuantidade, 0, len(rel.Linhas))
	for _, linha := range rel.Linhas {
		serie := filtrarSerieQuantidade(linha.Serie, meses)
		if serie == nil {
			continue
		}
		linhas = append(linhas, SerieQuantidade{Nome: linha.Nome, Serie: serie})
	}
	return RelatorioQuantidade{
		Linhas:        linhas,
		TotaisMensais: filtrarSerieQuantidade(rel.TotaisMensais, meses),
	}
}

func filtrarSerieQuantidade(serie []PontoQuantidade, meses []string) []PontoQuantidade {
	if len(serie) == 0 {
		return nil
	}
	porMes := make(map[string]PontoQuantidade, len(serie))
	acumulado := 0
	for _, p := range serie {
		porMes[p.Mes] = p
		if p.Mes < meses[0] {
			acumulado = p.Acumulado
		}
	}
	recorte := make([]PontoQuantidade, 0, len(meses))
	for _, mes := range meses {
		if p, ok := porMes[mes]; ok {
			acumulado = p.Acumulado
			recorte = append(recorte, p)
			continue
		}
		recorte = append(recorte, PontoQuantidade{Mes: mes, Acumulado: acumulado})
	}
	return recorte
}

// FiltrarRelatorioValor é o recorte monetário, com a mesma semeadura de
// acumulado de FiltrarRelatorioQuantidade.
func FiltrarRelatorioValor(rel RelatorioValor, meses []string) RelatorioValor {
	if len(meses) == 0 {
		return rel
	}
	linhas := make([]SerieValor, 0, len(rel.Linhas))
	for _, linha := range rel.Linhas {
		serie := filtrarSerieValor(linha.Serie, meses)
		if serie == nil {
			continue
		}
		linhas = append(linhas, SerieValor{Nome: linha.Nome, Serie: serie})
	}
	return RelatorioValor{
		Linhas:        linhas,
		TotaisMensais: filtrarSerieValor(rel.TotaisMensais, meses),
	}
}

func filtrarSerieValor(serie []PontoValor, meses []string) []PontoValor {
	if len(serie) == 0 {
		return nil
	}
	porMes := make(map[string]PontoValor, len(serie))
	acumulado := decimal.Zero
	for _, p := range serie {
		porMes[p.Mes] = p
		if p.Mes < meses[0] {
			acumulado = p.Acumulado
		}
	}
	recorte := make([]PontoValor, 0, len(meses))
	for _, mes := range meses {
		if p, ok := porMes[mes]; ok {
			acumulado = p.Acumulado
			recorte = append(recorte, p)
			continue
		}
		recorte = append(recorte, PontoValor{
			Mes:       mes,
			Acumulado: acumulado,
			Entradas:  decimal.Zero,
			Saidas:    decimal.Zero,
		})
	}
	return recorte
}

// FiltrarRecebimentos recorta a matriz de fluxo de caixa para a janela
// pedida. Clientes sem nenhum recebimento na janela saem da listagem; o
// resumo é recomposto mês a mês a partir do eixo original, com zeros
// para meses fora dele.
func FiltrarRecebimentos(rel RelatorioRecebimentos, meses []string) RelatorioRecebimentos {
	if len(meses) == 0 {
		return rel
	}
	indice := make(map[string]int, len(rel.Meses))
	for i, mes := range rel.Meses {
		indice[mes] = i
	}

	linhas := make([]LinhaRecebimento, 0, len(rel.Linhas))
	for _, linha := range rel.Linhas {
		valores := make([]decimal.Decimal, 0, len(meses))
		total := decimal.Zero
		for _, mes := range meses {
			valor := decimal.Zero
			if idx, ok := indice[mes]; ok {
				valor = linha.Valores[idx]
			}
			total = total.Add(valor)
			valores = append(valores, valor)
		}
		if total.IsZero() {
			continue
		}
		linhas = append(linhas, LinhaRecebimento{Nome: linha.Nome, Valores: valores, Total: total})
	}

	recorteContagem := func(origem SerieContagem) SerieContagem {
		qtd := make([]int, 0, len(meses))
		val := make([]decimal.Decimal, 0, len(meses))
		for _, mes := range meses {
			if idx, ok := indice[mes]; ok {
				qtd = append(qtd, origem.Quantidade[idx])
				val = append(val, origem.Valor[idx])
				continue
			}
			qtd = append(qtd, 0)
			val = append(val, decimal.Zero)
		}
		return SerieContagem{Quantidade: qtd, Valor: val}
	}

	ativos := recorteContagem(rel.Resumo.Ativos)
	return RelatorioRecebimentos{
		Meses:  meses,
		Linhas: linhas,
		Resumo: ResumoRecebimentos{
			ValorTotal: ativos.Valor,
			Ativos:     ativos,
			Entradas:   recorteContagem(rel.Resumo.Entradas),
			Saidas:     recorteContagem(rel.Resumo.Saidas),
		},
	}
}
