package relatorio_test

import (
	"testing"

	"github.com/AtrioGestao/api-clientes/internal/relatorio"
	"github.com/shopspring/decimal"
)

func TestIntervaloMeses(t *testing.T) {
	meses, err := relatorio.IntervaloMeses("2024-02", "2024-05")
	if err != nil {
		t.Fatalf("IntervaloMeses: %v", err)
	}
	esperado := []string{"2024-02", "2024-03", "2024-04", "2024-05"}
	if len(meses) != len(esperado) {
		t.Fatalf("esperava %v, veio %v", esperado, meses)
	}
	for i := range esperado {
		if meses[i] != esperado[i] {
			t.Fatalf("esperava %v, veio %v", esperado, meses)
		}
	}
}

func TestIntervaloMesesInvertidoTroca(t *testing.T) {
	meses, err := relatorio.IntervaloMeses("2024-05", "2024-03")
	if err != nil {
		t.Fatalf("IntervaloMeses: %v", err)
	}
	if len(meses) != 3 || meses[0] != "2024-03" || meses[2] != "2024-05" {
		t.Fatalf("limites invertidos deveriam ser trocados, veio %v", meses)
	}
}

func TestIntervaloMesesInvalido(t *testing.T) {
	if _, err := relatorio.IntervaloMeses("fev/24", "2024-05"); err == nil {
		t.Fatal("esperava erro para chave ilegível")
	}
}

func TestFiltrarRelatorioQuantidadeSemeiaAcumulado(t *testing.T) {
	rel := montar(t)
	recorte := relatorio.FiltrarRelatorioQuantidade(rel.Quantidade, []string{"2024-04", "2024-05", "2024-06"})

	// Alice entra na janela com o acumulado herdado dos meses anteriores
	alice := linhaQuantidade(t, recorte, "Alice")
	if len(alice) != 3 {
		t.Fatalf("esperava 3 pontos, veio %d", len(alice))
	}
	if alice[0].Mes != "2024-04" || alice[0].Acumulado != 1 {
		t.Fatalf("primeiro ponto errado: %+v", alice[0])
	}
}

func TestFiltrarRelatorioQuantidadePreencheLacunas(t *testing.T) {
	serie := relatorio.RelatorioQuantidade{
		Linhas: []relatorio.SerieQuantidade{{
			Nome: "Ana",
			Serie: []relatorio.PontoQuantidade{
				{Mes: "2024-01", Acumulado: 2, Entradas: 2},
				{Mes: "2024-04", Acumulado: 3, Entradas: 1},
			},
		}},
		TotaisMensais: []relatorio.PontoQuantidade{
			{Mes: "2024-01", Acumulado: 2, Entradas: 2},
			{Mes: "2024-04", Acumulado: 3, Entradas: 1},
		},
	}
	recorte := relatorio.FiltrarRelatorioQuantidade(serie, []string{"2024-02", "2024-03", "2024-04"})

	ana := linhaQuantidade(t, recorte, "Ana")
	// fevereiro e março não existiam na série: entram zerados com o
	// acumulado carregado do último ponto anterior à janela
	if ana[0].Acumulado != 2 || ana[0].Entradas != 0 || ana[0].Saidas != 0 {
		t.Fatalf("lacuna de fevereiro errada: %+v", ana[0])
	}
	if ana[1].Acumulado != 2 {
		t.Fatalf("lacuna de março errada: %+v", ana[1])
	}
	if ana[2].Acumulado != 3 || ana[2].Entradas != 1 {
		t.Fatalf("abril deveria vir da série original: %+v", ana[2])
	}
}

func TestFiltrarRelatorioValorSemeiaAcumulado(t *testing.T) {
	rel := montar(t)
	recorte := relatorio.FiltrarRelatorioValor(rel.Valor, []string{"2024-05", "2024-06"})

	alice := linhaValor(t, recorte, "Alice")
	if !alice[0].Acumulado.Equal(valor(1000)) {
		t.Fatalf("Alice deveria entrar na janela com 1000, veio %s", alice[0].Acumulado)
	}
}

func TestFiltrarJanelaVaziaDevolveOriginal(t *testing.T) {
	rel := montar(t)
	recorte := relatorio.FiltrarRelatorioQuantidade(rel.Quantidade, nil)
	if len(recorte.TotaisMensais) != len(rel.Quantidade.TotaisMensais) {
		t.Fatal("janela vazia deveria devolver o relatório completo")
	}
}

func TestFiltrarRecebimentos(t *testing.T) {
	rel := montar(t)
	recorte := relatorio.FiltrarRecebimentos(rel.Recebimentos, []string{"2024-02", "2024-03"})

	// Delta só recebe (com valor zero) a partir de abril: total zero na
	// janela, então a linha some
	for _, linha := range recorte.Linhas {
		if linha.Nome == "Delta" {
			t.Fatal("linha sem recebimento na janela deveria ser omitida")
		}
	}

	var beta *relatorio.LinhaRecebimento
	for i := range recorte.Linhas {
		if recorte.Linhas[i].Nome == "Beta" {
			beta = &recorte.Linhas[i]
		}
	}
	if beta == nil {
		t.Fatal("Beta deveria aparecer na janela")
	}
	if !beta.Total.Equal(valor(1000)) {
		t.Fatalf("total de Beta na janela: esperava 1000, veio %s", beta.Total)
	}

	// resumo recortado acompanha a janela
	if len(recorte.Resumo.Ativos.Quantidade) != 2 {
		t.Fatalf("resumo deveria ter 2 meses, veio %d", len(recorte.Resumo.Ativos.Quantidade))
	}
	if recorte.Resumo.Ativos.Quantidade[0] != 2 {
		t.Fatalf("ativos de fevereiro: esperava 2, veio %d", recorte.Resumo.Ativos.Quantidade[0])
	}
}

func TestFiltrarRecebimentosMesForaDoEixo(t *testing.T) {
	rel := montar(t)
	recorte := relatorio.FiltrarRecebimentos(rel.Recebimentos, []string{"2023-11", "2023-12"})
	if len(recorte.Linhas) != 0 {
		t.Fatalf("janela fora do eixo não deveria ter linhas, veio %d", len(recorte.Linhas))
	}
	for _, v := range recorte.Resumo.ValorTotal {
		if !v.Equal(decimal.Zero) {
			t.Fatal("meses fora do eixo deveriam vir zerados")
		}
	}
}

func TestCombinarRelatorios(t *testing.T) {
	rel := montar(t)
	meses := rel.Meses
	combinado := relatorio.CombinarRelatorios(rel.Quantidade, rel.Valor, meses)

	if len(combinado.Linhas) != 3 {
		t.Fatalf("esperava 3 operadores, veio %d", len(combinado.Linhas))
	}
	// ordem alfabética
	if combinado.Linhas[0].Nome != "Alice" || combinado.Linhas[2].Nome != "Carol" {
		t.Fatalf("ordem errada: %s, %s", combinado.Linhas[0].Nome, combinado.Linhas[2].Nome)
	}
	for _, linha := range combinado.Linhas {
		if len(linha.Quantidade) != len(meses) || len(linha.Valor) != len(meses) {
			t.Fatalf("séries de %s com tamanho errado", linha.Nome)
		}
	}
}

func TestCombinarRelatoriosLadoFaltanteZerado(t *testing.T) {
	meses := []string{"2024-01", "2024-02"}
	quantidade := relatorio.RelatorioQuantidade{
		Linhas: []relatorio.SerieQuantidade{{
			Nome: "Ana",
			Serie: []relatorio.PontoQuantidade{
				{Mes: "2024-01", Acumulado: 1}, {Mes: "2024-02", Acumulado: 1},
			},
		}},
	}
	combinado := relatorio.CombinarRelatorios(quantidade, relatorio.RelatorioValor{}, meses)

	if len(combinado.Linhas) != 1 {
		t.Fatalf("esperava 1 linha, veio %d", len(combinado.Linhas))
	}
	for _, p := range combinado.Linhas[0].Valor {
		if !p.Acumulado.IsZero() {
			t.Fatal("lado de valor ausente deveria vir zerado")
		}
	}
}
