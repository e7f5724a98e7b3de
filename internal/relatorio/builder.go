package relatorio

import (
	"sort"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/periodo"
	"github.com/shopspring/decimal"
)

// MontarRelatorios percorre todos os clientes (com histórico carregado) e
// produz o relatório mensal completo por operador. O eixo de meses é a
// união de todos os meses tocados por entrada, saída, transferência ou
// reconhecimento de valor de qualquer cliente.
//
// O valor de um cliente só conta a partir do mês seguinte ao da entrada e
// deixa de contar no mês da saída (o último mês reconhecido é o anterior
// à saída). Um cliente que sai antes do reconhecimento começar nunca
// contribui com valor.
func MontarRelatorios(clientes []cliente.Cliente, hoje time.Time) *Relatorios {
	operadores := map[string]*MovimentoOperador{}
	totaisOperadores := map[string]*ResumoOperador{}
	receitaMensal := map[string]*ReceitaMes{}
	meses := map[string]struct{}{}

	hojeMes := periodo.InicioMes(hoje)

	garantirOperador := func(nome string) *MovimentoOperador {
		mov, ok := operadores[nome]
		if !ok {
			mov = &MovimentoOperador{
				Entradas: map[string]*Celula{},
				Saidas:   map[string]*Celula{},
				Ativos:   map[string]*Celula{},
			}
			operadores[nome] = mov
		}
		if _, ok := totaisOperadores[nome]; !ok {
			totaisOperadores[nome] = &ResumoOperador{ValorTotal: decimal.Zero}
		}
		return mov
	}

	celula := func(m map[string]*Celula, mes string) *Celula {
		cel, ok := m[mes]
		if !ok {
			cel = &Celula{Valor: decimal.Zero}
			m[mes] = cel
		}
		return cel
	}

	for i := range clientes {
		c := &clientes[i]
		transferencias := cliente.Transferencias(c)

		// 1. entrada: uma unidade de contagem para o responsável do mês
		entradaMes := periodo.ChaveMes(c.Entrada)
		meses[entradaMes] = struct{}{}
		respEntrada := cliente.ResponsavelNoMes(c, entradaMes, transferencias)
		celula(garantirOperador(respEntrada).Entradas, entradaMes).Quantidade++

		// 2. valor de entrada, um mês depois (carência de reconhecimento)
		inicioValor := periodo.AdicionarMeses(periodo.InicioMes(c.Entrada), 1)
		podeRegistrarValor := c.Saida == nil || !inicioValor.After(periodo.MesAnterior(*c.Saida))
		if podeRegistrarValor && !inicioValor.After(hojeMes) {
			chaveInicioValor := periodo.ChaveMes(inicioValor)
			meses[chaveInicioValor] = struct{}{}
			cel := celula(garantirOperador(respEntrada).Entradas, chaveInicioValor)
			cel.Valor = cel.Valor.Add(c.Valor)
		}

		// 3. cada transferência é uma saída do antigo e uma entrada do novo
		respAtual := respEntrada
		for _, tr := range transferencias {
			mesTransferencia := periodo.ChaveMes(tr.Data)
			meses[mesTransferencia] = struct{}{}
			respAntigo := tr.ResponsavelAntigo
			if respAntigo == "" {
				respAntigo = respAtual
			}
			respNovo := tr.ResponsavelNovo
			if respNovo == "" {
				respNovo = respAntigo
			}
			celSaida := celula(garantirOperador(respAntigo).Saidas, mesTransferencia)
			celSaida.Quantidade++
			celSaida.Valor = celSaida.Valor.Add(c.Valor)
			celEntrada := celula(garantirOperador(respNovo).Entradas, mesTransferencia)
			celEntrada.Quantidade++
			celEntrada.Valor = celEntrada.Valor.Add(c.Valor)
			respAtual = respNovo
		}

		// 4. saída definitiva
		if c.Saida != nil {
			mesSaida := periodo.ChaveMes(*c.Saida)
			meses[mesSaida] = struct{}{}
			respSaida := cliente.ResponsavelNoMes(c, mesSaida, transferencias)
			cel := celula(garantirOperador(respSaida).Saidas, mesSaida)
			cel.Quantidade++
			cel.Valor = cel.Valor.Add(c.Valor)
		}

		// 5. meses ativos: da entrada até o mês anterior à saída (ou hoje)
		inicioAtivo := periodo.InicioMes(c.Entrada)
		fimAtivo := hojeMes
		if c.Saida != nil {
			fimAtivo = periodo.MesAnterior(*c.Saida)
			if fimAtivo.Before(inicioAtivo) {
				fimAtivo = inicioAtivo
			}
		}
		for mesData := range periodo.MesesEntre(inicioAtivo, fimAtivo) {
			mes := periodo.ChaveMes(mesData)
			meses[mes] = struct{}{}
			respNoMes := cliente.ResponsavelNoMes(c, mes, transferencias)
			cel := celula(garantirOperador(respNoMes).Ativos, mes)
			cel.Quantidade++
			valorAtivo := decimal.Zero
			if !mesData.Before(inicioValor) {
				valorAtivo = c.Valor
			}
			cel.Valor = cel.Valor.Add(valorAtivo)

			if valorAtivo.IsPositive() {
				receita, ok := receitaMensal[mes]
				if !ok {
					receita = &ReceitaMes{Total: decimal.Zero, Ativos: decimal.Zero, Inativos: decimal.Zero}
					receitaMensal[mes] = receita
				}
				receita.Total = receita.Total.Add(valorAtivo)
				if c.Status == cliente.StatusAtivo {
					receita.Ativos = receita.Ativos.Add(valorAtivo)
				} else {
					receita.Inativos = receita.Inativos.Add(valorAtivo)
				}
			}
		}

		// 6. retrato atual por responsável, independente do histórico
		garantirOperador(c.Responsavel)
		resumo := totaisOperadores[c.Responsavel]
		if c.Status == cliente.StatusAtivo {
			resumo.Ativos++
		} else {
			resumo.Inativos++
		}
		resumo.ValorTotal = resumo.ValorTotal.Add(c.Valor)
	}

	mesesOrdenados := make([]string, 0, len(meses))
	for mes := range meses {
		mesesOrdenados = append(mesesOrdenados, mes)
	}
	sort.Strings(mesesOrdenados)

	nomesOperadores := make([]string, 0, len(operadores))
	for nome := range operadores {
		nomesOperadores = append(nomesOperadores, nome)
	}
	sort.Strings(nomesOperadores)

	rel := &Relatorios{
		Meses:            mesesOrdenados,
		Operadores:       operadores,
		TotaisOperadores: totaisOperadores,
		ReceitaMensal:    receitaMensal,
		Quantidade:       montarSerieQuantidade(operadores, nomesOperadores, mesesOrdenados),
		Valor:            montarSerieValor(operadores, nomesOperadores, mesesOrdenados),
	}
	rel.Recebimentos = montarRecebimentos(clientes, mesesOrdenados)
	return rel
}

// montarSerieQuantidade deriva a série acumulada de contagem por
// operador: saldo do mês anterior + entradas - saídas, nunca negativo. O
// total global por mês é a soma dos saldos de cada operador, não um
// acumulado próprio.
func montarSerieQuantidade(operadores map[string]*MovimentoOperador, nomes, meses []string) RelatorioQuantidade {
	totalPorMes := make(map[string]int, len(meses))
	entradasPorMes := make(map[string]int, len(meses))
	saidasPorMes := make(map[string]int, len(meses))

	linhas := make([]SerieQuantidade, 0, len(nomes))
	for _, nome := range nomes {
		mov := operadores[nome]
		acumulado := 0
		serie := make([]PontoQuantidade, 0, len(meses))
		for _, mes := range meses {
			var entradas, saidas int
			if cel := mov.Entradas[mes]; cel != nil {
				entradas = cel.Quantidade
			}
			if cel := mov.Saidas[mes]; cel != nil {
				saidas = cel.Quantidade
			}
			acumulado += entradas - saidas
			if acumulado < 0 {
				acumulado = 0
			}
			serie = append(serie, PontoQuantidade{Mes: mes, Acumulado: acumulado, Entradas: entradas, Saidas: saidas})
			entradasPorMes[mes] += entradas
			saidasPorMes[mes] += saidas
			totalPorMes[mes] += acumulado
		}
		linhas = append(linhas, SerieQuantidade{Nome: nome, Serie: serie})
	}

	totais := make([]PontoQuantidade, 0, len(meses))
	for _, mes := range meses {
		totais = append(totais, PontoQuantidade{
			Mes:       mes,
			Acumulado: totalPorMes[mes],
			Entradas:  entradasPorMes[mes],
			Saidas:    saidasPorMes[mes],
		})
	}
	return RelatorioQuantidade{Linhas: linhas, TotaisMensais: totais}
}

func montarSerieValor(operadores map[string]*MovimentoOperador, nomes, meses []string) RelatorioValor {
	totalPorMes := make(map[string]decimal.Decimal, len(meses))
	entradasPorMes := make(map[string]decimal.Decimal, len(meses))
	saidasPorMes := make(map[string]decimal.Decimal, len(meses))

	linhas := make([]SerieValor, 0, len(nomes))
	for _, nome := range nomes {
		mov := operadores[nome]
		acumulado := decimal.Zero
		serie := make([]PontoValor, 0, len(meses))
		for _, mes := range meses {
			entradas, saidas := decimal.Zero, decimal.Zero
			if cel := mov.Entradas[mes]; cel != nil {
				entradas = cel.Valor
			}
			if cel := mov.Saidas[mes]; cel != nil {
				saidas = cel.Valor
			}
			acumulado = acumulado.Add(entradas).Sub(saidas)
			if acumulado.IsNegative() {
				acumulado = decimal.Zero
			}
			serie = append(serie, PontoValor{Mes: mes, Acumulado: acumulado, Entradas: entradas, Saidas: saidas})
			entradasPorMes[mes] = entradasPorMes[mes].Add(entradas)
			saidasPorMes[mes] = saidasPorMes[mes].Add(saidas)
			totalPorMes[mes] = totalPorMes[mes].Add(acumulado)
		}
		linhas = append(linhas, SerieValor{Nome: nome, Serie: serie})
	}

	totais := make([]PontoValor, 0, len(meses))
	for _, mes := range meses {
		totais = append(totais, PontoValor{
			Mes:       mes,
			Acumulado: totalPorMes[mes],
			Entradas:  entradasPorMes[mes],
			Saidas:    saidasPorMes[mes],
		})
	}
	return RelatorioValor{Linhas: linhas, TotaisMensais: totais}
}

// montarRecebimentos monta a matriz cliente × mês do fluxo de caixa: o
// valor reconhecido em cada mês do eixo, com totais por linha e resumos
// por coluna (quem começa, quem termina e quem segue recebendo no mês).
func montarRecebimentos(clientes []cliente.Cliente, meses []string) RelatorioRecebimentos {
	indiceMes := make(map[string]int, len(meses))
	for i, mes := range meses {
		indiceMes[mes] = i
	}

	entradaQtd := make([]int, len(meses))
	entradaValor := zerosDecimal(len(meses))
	saidaQtd := make([]int, len(meses))
	saidaValor := zerosDecimal(len(meses))
	ativoQtd := make([]int, len(meses))
	ativoValor := zerosDecimal(len(meses))

	ordenados := make([]*cliente.Cliente, len(clientes))
	for i := range clientes {
		ordenados[i] = &clientes[i]
	}
	sort.SliceStable(ordenados, func(i, j int) bool { return ordenados[i].Nome < ordenados[j].Nome })

	linhas := make([]LinhaRecebimento, 0, len(ordenados))
	for _, c := range ordenados {
		inicioRecebimento := periodo.AdicionarMeses(periodo.InicioMes(c.Entrada), 1)
		var fimRecebimento *time.Time
		if c.Saida != nil {
			fim := periodo.InicioMes(*c.Saida)
			fimRecebimento = &fim
		}

		if idx, ok := indiceMes[periodo.ChaveMes(inicioRecebimento)]; ok {
			entradaQtd[idx]++
			entradaValor[idx] = entradaValor[idx].Add(c.Valor)
		}
		if fimRecebimento != nil {
			if idx, ok := indiceMes[periodo.ChaveMes(*fimRecebimento)]; ok {
				saidaQtd[idx]++
				saidaValor[idx] = saidaValor[idx].Add(c.Valor)
			}
		}

		valores := make([]decimal.Decimal, 0, len(meses))
		totalLinha := decimal.Zero
		for i, mes := range meses {
			mesData, _ := periodo.ParseChaveMes(mes)
			recebe := !mesData.Before(inicioRecebimento) &&
				(fimRecebimento == nil || mesData.Before(*fimRecebimento))
			valor := decimal.Zero
			if recebe {
				valor = c.Valor
				totalLinha = totalLinha.Add(valor)
				ativoQtd[i]++
				ativoValor[i] = ativoValor[i].Add(valor)
			}
			valores = append(valores, valor)
		}
		linhas = append(linhas, LinhaRecebimento{Nome: c.Nome, Valores: valores, Total: totalLinha})
	}

	return RelatorioRecebimentos{
		Meses:  meses,
		Linhas: linhas,
		Resumo: ResumoRecebimentos{
			ValorTotal: ativoValor,
			Ativos:     SerieContagem{Quantidade: ativoQtd, Valor: ativoValor},
			Entradas:   SerieContagem{Quantidade: entradaQtd, Valor: entradaValor},
			Saidas:     SerieContagem{Quantidade: saidaQtd, Valor: saidaValor},
		},
	}
}

func zerosDecimal(n int) []decimal.Decimal {
	valores := make([]decimal.Decimal, n)
	for i := range valores {
		valores[i] = decimal.Zero
	}
	return valores
}
