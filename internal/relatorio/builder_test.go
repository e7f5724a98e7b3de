package relatorio_test

import (
	"testing"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/relatorio"
	"github.com/shopspring/decimal"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func valor(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// carteiraDeExemplo monta quatro clientes cobrindo os casos do motor:
// ativo simples, saída, transferência e permuta.
func carteiraDeExemplo() []cliente.Cliente {
	saidaBeta := dia(2024, time.April, 20)
	return []cliente.Cliente{
		{
			ID: 1, Nome: "Acme", Responsavel: "Alice",
			Status: cliente.StatusAtivo, Entrada: dia(2024, time.January, 10),
			Valor: valor(1000),
		},
		{
			ID: 2, Nome: "Beta", Responsavel: "Bob",
			Status: cliente.StatusInativo, Entrada: dia(2024, time.January, 5),
			Saida: &saidaBeta, Valor: valor(500),
		},
		{
			ID: 3, Nome: "Gama", Responsavel: "Carol",
			Status: cliente.StatusAtivo, Entrada: dia(2024, time.February, 1),
			Valor: valor(200),
			Historico: []historico.HistoricoCliente{
				{
					ID: 10, Tipo: historico.TipoTransferencia, Data: dia(2024, time.April, 10),
					ResponsavelAntigo: "Alice", ResponsavelNovo: "Carol",
				},
			},
		},
		{
			ID: 4, Nome: "Delta", Responsavel: "Bob",
			Status: cliente.StatusAtivo, Entrada: dia(2024, time.March, 1),
			Permuta: true, Valor: decimal.Zero,
		},
	}
}

func montar(t *testing.T) *relatorio.Relatorios {
	t.Helper()
	return relatorio.MontarRelatorios(carteiraDeExemplo(), dia(2024, time.June, 15))
}

func linhaQuantidade(t *testing.T, rel relatorio.RelatorioQuantidade, nome string) []relatorio.PontoQuantidade {
	t.Helper()
	for _, linha := range rel.Linhas {
		if linha.Nome == nome {
			return linha.Serie
		}
	}
	t.Fatalf("operador %s não encontrado no relatório de quantidade", nome)
	return nil
}

func linhaValor(t *testing.T, rel relatorio.RelatorioValor, nome string) []relatorio.PontoValor {
	t.Helper()
	for _, linha := range rel.Linhas {
		if linha.Nome == nome {
			return linha.Serie
		}
	}
	t.Fatalf("operador %s não encontrado no relatório de valor", nome)
	return nil
}

func TestMontarRelatoriosEixoDeMeses(t *testing.T) {
	rel := montar(t)
	esperado := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}
	if len(rel.Meses) != len(esperado) {
		t.Fatalf("meses: esperava %v, veio %v", esperado, rel.Meses)
	}
	for i := range esperado {
		if rel.Meses[i] != esperado[i] {
			t.Fatalf("meses: esperava %v, veio %v", esperado, rel.Meses)
		}
	}
}

func TestMontarRelatoriosSerieDeQuantidade(t *testing.T) {
	rel := montar(t)

	// Alice: entradas de Acme (jan) e Gama (fev), perde Gama na
	// transferência de abril
	alice := linhaQuantidade(t, rel.Quantidade, "Alice")
	esperadoAlice := []int{1, 2, 2, 1, 1, 1}
	for i, p := range alice {
		if p.Acumulado != esperadoAlice[i] {
			t.Errorf("Alice %s: esperava %d, veio %d", p.Mes, esperadoAlice[i], p.Acumulado)
		}
	}

	// Bob: Beta (jan) e Delta (mar), perde Beta na saída de abril
	bob := linhaQuantidade(t, rel.Quantidade, "Bob")
	esperadoBob := []int{1, 1, 2, 1, 1, 1}
	for i, p := range bob {
		if p.Acumulado != esperadoBob[i] {
			t.Errorf("Bob %s: esperava %d, veio %d", p.Mes, esperadoBob[i], p.Acumulado)
		}
	}

	// Carol: recebe Gama na transferência de abril
	carol := linhaQuantidade(t, rel.Quantidade, "Carol")
	esperadoCarol := []int{0, 0, 0, 1, 1, 1}
	for i, p := range carol {
		if p.Acumulado != esperadoCarol[i] {
			t.Errorf("Carol %s: esperava %d, veio %d", p.Mes, esperadoCarol[i], p.Acumulado)
		}
	}

	// a transferência conserva o total: o acumulado global não muda
	// entre março e abril além da saída real (Beta)
	esperadoTotal := []int{2, 3, 4, 3, 3, 3}
	for i, p := range rel.Quantidade.TotaisMensais {
		if p.Acumulado != esperadoTotal[i] {
			t.Errorf("total %s: esperava %d, veio %d", p.Mes, esperadoTotal[i], p.Acumulado)
		}
	}
}

func TestMontarRelatoriosValorEntraComUmMesDeCarencia(t *testing.T) {
	rel := montar(t)

	alice := linhaValor(t, rel.Valor, "Alice")
	esperado := map[string]string{
		"2024-01": "0",    // Acme entrou em janeiro, valor só em fevereiro
		"2024-02": "1000",
		"2024-03": "1200", // + Gama (entrada fev, valor em mar)
		"2024-04": "1000", // transferência leva os 200 de Gama
		"2024-06": "1000",
	}
	for _, p := range alice {
		if quer, ok := esperado[p.Mes]; ok {
			if !p.Acumulado.Equal(decimal.RequireFromString(quer)) {
				t.Errorf("Alice %s: esperava %s, veio %s", p.Mes, quer, p.Acumulado)
			}
		}
	}

	carol := linhaValor(t, rel.Valor, "Carol")
	for _, p := range carol {
		if p.Mes == "2024-04" && !p.Acumulado.Equal(valor(200)) {
			t.Errorf("Carol 2024-04: esperava 200, veio %s", p.Acumulado)
		}
	}
}

func TestMontarRelatoriosSaidaAntesDaCarenciaNaoGeraValor(t *testing.T) {
	saida := dia(2024, time.January, 25)
	clientes := []cliente.Cliente{{
		ID: 1, Nome: "Efemera", Responsavel: "Alice",
		Status: cliente.StatusInativo, Entrada: dia(2024, time.January, 5),
		Saida: &saida, Valor: valor(900),
	}}
	rel := relatorio.MontarRelatorios(clientes, dia(2024, time.June, 1))

	alice := linhaValor(t, rel.Valor, "Alice")
	for _, p := range alice {
		if !p.Acumulado.IsZero() {
			t.Fatalf("cliente que sai antes da carência não gera valor; %s veio %s", p.Mes, p.Acumulado)
		}
	}
}

func TestMontarRelatoriosAcumuladoNuncaNegativo(t *testing.T) {
	// transferência credita a saída a um operador que nunca teve entrada
	// no eixo: a série dele trava em zero em vez de ficar negativa
	clientes := []cliente.Cliente{{
		ID: 1, Nome: "Orfao", Responsavel: "Novo",
		Status: cliente.StatusAtivo, Entrada: dia(2024, time.March, 1),
		Valor: valor(300),
		Historico: []historico.HistoricoCliente{
			{
				ID: 1, Tipo: historico.TipoTransferencia, Data: dia(2024, time.January, 10),
				ResponsavelAntigo: "Fantasma", ResponsavelNovo: "Novo",
			},
		},
	}}
	rel := relatorio.MontarRelatorios(clientes, dia(2024, time.June, 1))

	fantasma := linhaQuantidade(t, rel.Quantidade, "Fantasma")
	for _, p := range fantasma {
		if p.Acumulado < 0 {
			t.Fatalf("acumulado negativo em %s: %d", p.Mes, p.Acumulado)
		}
	}
}

func TestMontarRelatoriosReceitaMensalPorStatusAtual(t *testing.T) {
	rel := montar(t)

	// Beta está INATIVO hoje: toda a receita histórica dele cai no
	// balde de inativos, mesmo a dos meses em que ainda era ativo
	fev := rel.ReceitaMensal["2024-02"]
	if fev == nil {
		t.Fatal("fevereiro deveria ter receita")
	}
	if !fev.Total.Equal(valor(1500)) {
		t.Errorf("total de fevereiro: esperava 1500, veio %s", fev.Total)
	}
	if !fev.Ativos.Equal(valor(1000)) || !fev.Inativos.Equal(valor(500)) {
		t.Errorf("divisão de fevereiro: %s ativos / %s inativos", fev.Ativos, fev.Inativos)
	}

	mar := rel.ReceitaMensal["2024-03"]
	if mar == nil || !mar.Total.Equal(valor(1700)) {
		t.Fatalf("total de março: esperava 1700, veio %+v", mar)
	}

	jun := rel.ReceitaMensal["2024-06"]
	if jun == nil || !jun.Total.Equal(valor(1200)) || !jun.Inativos.IsZero() {
		t.Fatalf("junho: esperava 1200 só de ativos, veio %+v", jun)
	}
}

func TestMontarRelatoriosPermutaNaoGeraReceita(t *testing.T) {
	rel := montar(t)
	bob := linhaValor(t, rel.Valor, "Bob")
	for _, p := range bob {
		if p.Mes >= "2024-04" && !p.Acumulado.IsZero() {
			t.Errorf("Bob %s: permuta não soma valor, veio %s", p.Mes, p.Acumulado)
		}
	}
}

func TestMontarRelatoriosResumoAtual(t *testing.T) {
	rel := montar(t)

	bob := rel.TotaisOperadores["Bob"]
	if bob == nil || bob.Ativos != 1 || bob.Inativos != 1 {
		t.Fatalf("resumo de Bob errado: %+v", bob)
	}
	if !bob.ValorTotal.Equal(valor(500)) {
		t.Fatalf("valor total de Bob: esperava 500, veio %s", bob.ValorTotal)
	}

	carol := rel.TotaisOperadores["Carol"]
	if carol == nil || carol.Ativos != 1 || !carol.ValorTotal.Equal(valor(200)) {
		t.Fatalf("resumo de Carol errado: %+v", carol)
	}
}

func TestMontarRelatoriosFluxoDeRecebimentos(t *testing.T) {
	rel := montar(t)
	fluxo := rel.Recebimentos

	if len(fluxo.Linhas) != 4 {
		t.Fatalf("esperava 4 linhas, veio %d", len(fluxo.Linhas))
	}
	// ordenadas por nome
	nomes := []string{"Acme", "Beta", "Delta", "Gama"}
	for i, linha := range fluxo.Linhas {
		if linha.Nome != nomes[i] {
			t.Fatalf("ordem errada: %v", fluxo.Linhas)
		}
	}

	acme := fluxo.Linhas[0]
	if !acme.Total.Equal(valor(5000)) {
		t.Errorf("total de Acme: esperava 5000, veio %s", acme.Total)
	}
	if !acme.Valores[0].IsZero() || !acme.Valores[1].Equal(valor(1000)) {
		t.Errorf("Acme: carência não respeitada: %v", acme.Valores)
	}

	// Beta recebe só em fevereiro e março; o mês da saída já não conta
	beta := fluxo.Linhas[1]
	if !beta.Total.Equal(valor(1000)) {
		t.Errorf("total de Beta: esperava 1000, veio %s", beta.Total)
	}
	if !beta.Valores[3].IsZero() {
		t.Errorf("Beta não deveria receber em abril: %v", beta.Valores)
	}

	// resumo por coluna: fevereiro tem duas entradas (Acme e Beta)
	if fluxo.Resumo.Entradas.Quantidade[1] != 2 {
		t.Errorf("entradas de fevereiro: esperava 2, veio %d", fluxo.Resumo.Entradas.Quantidade[1])
	}
	if !fluxo.Resumo.Entradas.Valor[1].Equal(valor(1500)) {
		t.Errorf("valor de entradas de fevereiro: veio %s", fluxo.Resumo.Entradas.Valor[1])
	}
	// saída de Beta aparece em abril
	if fluxo.Resumo.Saidas.Quantidade[3] != 1 || !fluxo.Resumo.Saidas.Valor[3].Equal(valor(500)) {
		t.Errorf("saídas de abril erradas: %d / %s",
			fluxo.Resumo.Saidas.Quantidade[3], fluxo.Resumo.Saidas.Valor[3])
	}
	// permuta conta como recebedor ativo, com valor zero
	if fluxo.Resumo.Ativos.Quantidade[5] != 3 {
		t.Errorf("ativos de junho: esperava 3, veio %d", fluxo.Resumo.Ativos.Quantidade[5])
	}
	if !fluxo.Resumo.Ativos.Valor[5].Equal(valor(1200)) {
		t.Errorf("valor ativo de junho: esperava 1200, veio %s", fluxo.Resumo.Ativos.Valor[5])
	}
}
