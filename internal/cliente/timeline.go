package cliente

import (
	"sort"

	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/periodo"
)

// Transferencias extrai do histórico carregado apenas os eventos de
// transferência, em ordem crescente de data (empates pela ordem de
// inserção, via id). Quem consulta vários meses do mesmo cliente deve
// ordenar uma vez e reutilizar a fatia.
func Transferencias(c *Cliente) []historico.HistoricoCliente {
	var transferencias []historico.HistoricoCliente
	for _, evento := range c.Historico {
		if evento.Tipo == historico.TipoTransferencia {
			transferencias = append(transferencias, evento)
		}
	}
	sort.SliceStable(transferencias, func(i, j int) bool {
		if transferencias[i].Data.Equal(transferencias[j].Data) {
			return transferencias[i].ID < transferencias[j].ID
		}
		return transferencias[i].Data.Before(transferencias[j].Data)
	})
	return transferencias
}

// ResponsavelNoMes reconstrói quem geria o cliente no período "AAAA-MM".
// Varre o prefixo das transferências cuja chave de mês não excede o
// período pedido; sem transferência alguma, vale o responsável atual.
func ResponsavelNoMes(c *Cliente, chave string, transferencias []historico.HistoricoCliente) string {
	if transferencias == nil {
		transferencias = Transferencias(c)
	}
	if len(transferencias) == 0 {
		return c.Responsavel
	}

	responsavel := transferencias[0].ResponsavelAntigo
	if responsavel == "" {
		responsavel = c.Responsavel
	}
	for _, tr := range transferencias {
		if periodo.ChaveMes(tr.Data) > chave {
			break
		}
		if tr.ResponsavelNovo != "" {
			responsavel = tr.ResponsavelNovo
		}
	}
	return responsavel
}
