package planilha

import (
	"fmt"
	"io"

	"github.com/AtrioGestao/api-clientes/internal/agendamento"
	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/xuri/excelize/v2"
)

func escreverLinha(f *excelize.File, aba string, numero int, valores []any) error {
	celula, err := excelize.CoordinatesToCellName(1, numero)
	if err != nil {
		return err
	}
	return f.SetSheetRow(aba, celula, &valores)
}

// ExportarClientes escreve a planilha de clientes (uma aba, mesmas
// colunas aceitas na importação) no writer.
func ExportarClientes(w io.Writer, clientes []cliente.Cliente) error {
	f := excelize.NewFile()
	defer f.Close()

	const aba = "Clientes"
	if err := f.SetSheetName(f.GetSheetName(0), aba); err != nil {
		return err
	}

	cabecalho := []any{
		"Nome", "Responsável", "Status", "Termômetro",
		"Entrada", "Saída", "Valor", "Permuta", "Motivo", "Razão",
	}
	if err := escreverLinha(f, aba, 1, cabecalho); err != nil {
		return err
	}

	for i, c := range clientes {
		permuta := "Não"
		if c.Permuta {
			permuta = "Sim"
		}
		saida := ""
		if c.Saida != nil {
			saida = c.Saida.Format("02/01/2006")
		}
		linha := []any{
			c.Nome,
			c.Responsavel,
			c.Status,
			c.Termometro,
			c.Entrada.Format("02/01/2006"),
			saida,
			c.Valor.InexactFloat64(),
			permuta,
			c.Motivo,
			c.Razao,
		}
		if err := escreverLinha(f, aba, i+2, linha); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// ExportarReunioes escreve as preferências de reunião em duas abas,
// Alinhamento e Fechamento, incluindo as linhas de placeholder dos
// clientes que ainda não cadastraram preferência.
func ExportarReunioes(w io.Writer, listas *agendamento.ListasReunioes) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Alinhamento"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Fechamento"); err != nil {
		return err
	}

	if err := escreverAbaReunioes(f, "Alinhamento", "Responsável", listas.Alinhamentos, false); err != nil {
		return err
	}
	if err := escreverAbaReunioes(f, "Fechamento", "Consultor", listas.Fechamentos, true); err != nil {
		return err
	}

	return f.Write(w)
}

func escreverAbaReunioes(f *excelize.File, aba, colunaContato string, itens []agendamento.ItemReuniao, fechamento bool) error {
	cabecalho := []any{
		"Cliente", colunaContato, "Período", "Dia da semana",
		"Horário", "Local", "Duração", "Dia sugerido",
		"Observações", "Atualizado",
	}
	if err := escreverLinha(f, aba, 1, cabecalho); err != nil {
		return err
	}

	ouTraco := func(valor string) string {
		if valor == "" {
			return "—"
		}
		return valor
	}

	for i, item := range itens {
		var linha []any
		if item.Preferencia == nil {
			linha = []any{
				item.Cliente.Nome,
				ouTraco(item.Cliente.Responsavel),
				item.Mensagem,
				"—", "—", "—", "—", "—", "—", "—",
			}
		} else {
			pref := item.Preferencia
			contato := pref.ResponsavelNome
			if fechamento && pref.Consultor != nil {
				contato = pref.Consultor.Nome
			}
			if contato == "" {
				contato = item.Cliente.Responsavel
			}
			diaSugerido := ""
			if pref.DataSugerida != nil {
				diaSugerido = fmt.Sprintf("%d", *pref.DataSugerida)
			}
			linha = []any{
				item.Cliente.Nome,
				ouTraco(contato),
				pref.RotuloPeriodo(),
				ouTraco(pref.RotuloDiaSemana()),
				ouTraco(pref.RotuloHorario()),
				ouTraco(pref.RotuloLocal()),
				ouTraco(pref.RotuloDuracao()),
				ouTraco(diaSugerido),
				ouTraco(pref.Observacoes),
				pref.AtualizadoEm.Format("02/01/2006 15:04"),
			}
		}
		if err := escreverLinha(f, aba, i+2, linha); err != nil {
			return err
		}
	}
	return nil
}
