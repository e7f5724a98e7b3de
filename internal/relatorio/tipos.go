// Package relatorio reconstrói, mês a mês, a carteira de cada operador a
// partir do retrato atual dos clientes e do seu histórico de
// transferências, e deriva as séries acumuladas e o fluxo de recebimentos
// exibidos no painel.
package relatorio

import "github.com/shopspring/decimal"

// Celula acumula quantidade e valor de um operador em um mês.
type Celula struct {
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// MovimentoOperador agrupa as células de um operador por chave de mês.
type MovimentoOperador struct {
	Entradas map[string]*Celula `json:"entradas"`
	Saidas   map[string]*Celula `json:"saidas"`
	Ativos   map[string]*Celula `json:"ativos"`
}

// ResumoOperador é o retrato atual (não série) por responsável.
type ResumoOperador struct {
	Ativos     int             `json:"ativos"`
	Inativos   int             `json:"inativos"`
	ValorTotal decimal.Decimal `json:"valorTotal"`
}

// ReceitaMes divide a receita reconhecida do mês pelo status atual do
// cliente, não pelo status vigente no mês (simplificação herdada do
// produto, coberta por teste).
type ReceitaMes struct {
	Total    decimal.Decimal `json:"total"`
	Ativos   decimal.Decimal `json:"ativos"`
	Inativos decimal.Decimal `json:"inativos"`
}

// PontoQuantidade é um ponto da série de contagem por operador.
type PontoQuantidade struct {
	Mes       string `json:"month"`
	Acumulado int    `json:"cumulative"`
	Entradas  int    `json:"entries"`
	Saidas    int    `json:"exits"`
}

// PontoValor é o equivalente monetário de PontoQuantidade.
type PontoValor struct {
	Mes       string          `json:"month"`
	Acumulado decimal.Decimal `json:"cumulative"`
	Entradas  decimal.Decimal `json:"entries"`
	Saidas    decimal.Decimal `json:"exits"`
}

type SerieQuantidade struct {
	Nome  string            `json:"name"`
	Serie []PontoQuantidade `json:"series"`
}

type SerieValor struct {
	Nome  string       `json:"name"`
	Serie []PontoValor `json:"series"`
}

type RelatorioQuantidade struct {
	Linhas        []SerieQuantidade `json:"rows"`
	TotaisMensais []PontoQuantidade `json:"monthlyTotals"`
}

type RelatorioValor struct {
	Linhas        []SerieValor `json:"rows"`
	TotaisMensais []PontoValor `json:"monthlyTotals"`
}

// LinhaRecebimento é a linha de um cliente na matriz de fluxo de caixa:
// um valor por mês do eixo e o total da linha.
type LinhaRecebimento struct {
	Nome    string            `json:"name"`
	Valores []decimal.Decimal `json:"values"`
	Total   decimal.Decimal   `json:"total"`
}

// SerieContagem emparelha contagem e valor por mês do eixo.
type SerieContagem struct {
	Quantidade []int             `json:"count"`
	Valor      []decimal.Decimal `json:"value"`
}

type ResumoRecebimentos struct {
	ValorTotal []decimal.Decimal `json:"totalValue"`
	Ativos     SerieContagem     `json:"active"`
	Entradas   SerieContagem     `json:"entries"`
	Saidas     SerieContagem     `json:"exits"`
}

type RelatorioRecebimentos struct {
	Meses  []string           `json:"months"`
	Linhas []LinhaRecebimento `json:"rows"`
	Resumo ResumoRecebimentos `json:"summary"`
}

// Relatorios é a saída completa do construtor.
type Relatorios struct {
	Meses            []string                      `json:"months"`
	Operadores       map[string]*MovimentoOperador `json:"operators"`
	TotaisOperadores map[string]*ResumoOperador    `json:"operatorTotals"`
	ReceitaMensal    map[string]*ReceitaMes        `json:"monthlyRevenue"`
	Quantidade       RelatorioQuantidade           `json:"quantityReport"`
	Valor            RelatorioValor                `json:"valueReport"`
	Recebimentos     RelatorioRecebimentos         `json:"clientCashflowReport"`
}
