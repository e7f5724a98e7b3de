package historico

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDescricaoAlteracao(t *testing.T) {
	tres, quatro := 3, 4
	mil := decimal.NewFromInt(1000)
	milEQuinhentos := decimal.RequireFromString("1500.50")
	sim, nao := true, false

	casos := []struct {
		nome     string
		evento   HistoricoCliente
		esperado string
	}{
		{
			nome: "transferencia",
			evento: HistoricoCliente{
				Tipo:              TipoTransferencia,
				ResponsavelAntigo: "Alice",
				ResponsavelNovo:   "Bruno",
			},
			esperado: "Responsável: Alice → Bruno",
		},
		{
			nome: "transferencia sem antigo",
			evento: HistoricoCliente{
				Tipo:            TipoTransferencia,
				ResponsavelNovo: "Bruno",
			},
			esperado: "Responsável: - → Bruno",
		},
		{
			nome: "saida",
			evento: HistoricoCliente{
				Tipo:         TipoSaida,
				StatusAntigo: "ATIVO",
				StatusNovo:   "INATIVO",
			},
			esperado: "Status: ATIVO → INATIVO",
		},
		{
			nome: "termometro",
			evento: HistoricoCliente{
				Tipo:             TipoTermometro,
				TermometroAntigo: &tres,
				TermometroNovo:   &quatro,
			},
			esperado: "Termômetro: 3 → 4",
		},
		{
			nome: "valor",
			evento: HistoricoCliente{
				Tipo:        TipoValor,
				ValorAntigo: &mil,
				ValorNovo:   &milEQuinhentos,
			},
			esperado: "Valor: R$ 1000.00 → R$ 1500.50",
		},
		{
			nome: "valor com permuta",
			evento: HistoricoCliente{
				Tipo:          TipoValor,
				ValorAntigo:   &mil,
				ValorNovo:     &mil,
				PermutaAntiga: &nao,
				PermutaNova:   &sim,
			},
			esperado: "Valor: R$ 1000.00 → R$ 1000.00 · Permuta: Não → Sim",
		},
		{
			nome:     "valor sem campos",
			evento:   HistoricoCliente{Tipo: TipoValor},
			esperado: "Valor ajustado",
		},
		{
			nome:     "tipo sem detalhes",
			evento:   HistoricoCliente{Tipo: TipoTransferencia},
			esperado: "",
		},
	}

	for _, caso := range casos {
		if got := caso.evento.DescricaoAlteracao(); got != caso.esperado {
			t.Errorf("%s: esperava %q, veio %q", caso.nome, caso.esperado, got)
		}
	}
}
