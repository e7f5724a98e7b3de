package relatorio_test

import (
	"testing"

	"github.com/AtrioGestao/api-clientes/internal/relatorio"
)

func TestGraficoQuantidade(t *testing.T) {
	rel := montar(t)
	grafico := relatorio.GraficoQuantidade(rel.Quantidade)

	if len(grafico.Labels) != len(rel.Meses) {
		t.Fatalf("labels: esperava %d, veio %d", len(rel.Meses), len(grafico.Labels))
	}
	if len(grafico.Datasets) != len(rel.Quantidade.Linhas) {
		t.Fatalf("datasets: esperava %d, veio %d", len(rel.Quantidade.Linhas), len(grafico.Datasets))
	}
	for _, ds := range grafico.Datasets {
		if len(ds.Data) != len(grafico.Labels) {
			t.Fatalf("dataset %s com tamanho errado", ds.Label)
		}
		if ds.BorderColor == "" || ds.BorderColor != ds.BackgroundColor {
			t.Fatalf("cores do dataset %s erradas: %s / %s", ds.Label, ds.BorderColor, ds.BackgroundColor)
		}
		if ds.Tension != 0.3 || ds.Fill {
			t.Fatalf("config do dataset %s errada: tension=%v fill=%v", ds.Label, ds.Tension, ds.Fill)
		}
	}
}

func TestGraficoValorPlotaAcumulado(t *testing.T) {
	rel := montar(t)
	grafico := relatorio.GraficoValor(rel.Valor)

	var alice *relatorio.ConjuntoDeDados
	for i := range grafico.Datasets {
		if grafico.Datasets[i].Label == "Alice" {
			alice = &grafico.Datasets[i]
		}
	}
	if alice == nil {
		t.Fatal("dataset de Alice não encontrado")
	}
	// fevereiro: acumulado 1000 depois da carência de Acme
	if alice.Data[1] != 1000 {
		t.Fatalf("Alice em fevereiro: esperava 1000, veio %v", alice.Data[1])
	}
}
