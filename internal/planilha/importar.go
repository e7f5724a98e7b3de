// Package planilha lê e escreve as planilhas xlsx de importação e
// exportação em massa: clientes, responsáveis, motivos/razões e as
// preferências de reunião.
package planilha

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/motivorazao"
	"github.com/AtrioGestao/api-clientes/internal/responsavel"
	"github.com/AtrioGestao/api-clientes/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ErroImportacao agrega os problemas encontrados linha a linha; quando
// presente, nada foi gravado.
type ErroImportacao struct {
	Linhas []string
}

func (e *ErroImportacao) Error() string {
	return strings.Join(e.Linhas, "; ")
}

// lerLinhas abre o xlsx e devolve as linhas da primeira aba.
func lerLinhas(arquivo io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(arquivo)
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler o arquivo: %w", err)
	}
	defer f.Close()
	linhas, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler o arquivo: %w", err)
	}
	return linhas, nil
}

// mapearCabecalho indexa as colunas pela chave normalizada (sem acento,
// maiúsculas, sem espaço), tolerando variações de grafia no cabeçalho.
func mapearCabecalho(cabecalho []string) map[string]int {
	mapa := make(map[string]int, len(cabecalho))
	for idx, valor := range cabecalho {
		chave := utils.ChaveCabecalho(valor)
		if chave != "" {
			mapa[chave] = idx
		}
	}
	return mapa
}

func valorColuna(linha []string, mapa map[string]int, coluna string) string {
	idx, ok := mapa[coluna]
	if !ok || idx >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[idx])
}

func linhaVazia(linha []string) bool {
	for _, celula := range linha {
		if strings.TrimSpace(celula) != "" {
			return false
		}
	}
	return true
}

// ImportarClientes grava os clientes da planilha em lote. A importação
// é tudo-ou-nada: qualquer linha inválida aborta o lote inteiro e os
// problemas voltam em ErroImportacao, um por linha.
func ImportarClientes(db *gorm.DB, arquivo io.Reader) (int, error) {
	linhas, err := lerLinhas(arquivo)
	if err != nil {
		return 0, err
	}
	if len(linhas) < 2 {
		return 0, fmt.Errorf("planilha vazia ou sem dados")
	}

	mapa := mapearCabecalho(linhas[0])
	var faltando []string
	for _, coluna := range []string{"CLIENTE", "ENTRADA"} {
		if _, ok := mapa[coluna]; !ok {
			faltando = append(faltando, coluna)
		}
	}
	if len(faltando) > 0 {
		return 0, fmt.Errorf("a planilha deve conter as colunas: %s", strings.Join(faltando, ", "))
	}

	var pendentes []cliente.Cliente
	var erros []string

	for i, linha := range linhas[1:] {
		numeroLinha := i + 2
		if linhaVazia(linha) {
			continue
		}

		c, err := clienteDaLinha(linha, mapa)
		if err != nil {
			erros = append(erros, fmt.Sprintf("Linha %d: %s", numeroLinha, err))
			continue
		}
		pendentes = append(pendentes, *c)
	}

	if len(erros) > 0 {
		return 0, &ErroImportacao{Linhas: erros}
	}

	respRepo := responsavel.NewRepository()
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range pendentes {
			if err := tx.Create(&pendentes[i]).Error; err != nil {
				return err
			}
			if err := respRepo.GarantirPorNome(tx, pendentes[i].Responsavel); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(pendentes), nil
}

func clienteDaLinha(linha []string, mapa map[string]int) (*cliente.Cliente, error) {
	nome := valorColuna(linha, mapa, "CLIENTE")
	if nome == "" {
		return nil, fmt.Errorf("cliente não informado")
	}

	responsavelNome := valorColuna(linha, mapa, "RESPONSAVEL")
	if responsavelNome == "" {
		responsavelNome = "SEM RESPONSÁVEL"
	}

	termometro := 3
	if bruto := valorColuna(linha, mapa, "TERMOMETRO"); bruto != "" {
		if parsed, err := strconv.Atoi(bruto); err == nil {
			termometro = parsed
		}
	}

	status := strings.ToUpper(valorColuna(linha, mapa, "STATUS"))
	if status != cliente.StatusAtivo && status != cliente.StatusInativo {
		status = cliente.StatusAtivo
	}

	entrada, err := utils.ParseData(valorColuna(linha, mapa, "ENTRADA"))
	if err != nil {
		return nil, fmt.Errorf("data de entrada inválida")
	}
	if entrada == nil {
		return nil, fmt.Errorf("data de entrada obrigatória")
	}

	saida, err := utils.ParseData(valorColuna(linha, mapa, "SAIDA"))
	if err != nil {
		return nil, fmt.Errorf("data de saída inválida")
	}

	permuta := utils.ParsePermuta(valorColuna(linha, mapa, "PERMUTA"))
	valor := decimal.Zero
	if !permuta {
		bruto := valorColuna(linha, mapa, "VALOR")
		vazio := bruto == "" || strings.EqualFold(bruto, "N/A")
		if status == cliente.StatusInativo && vazio {
			valor = decimal.Zero
		} else {
			valor, err = utils.ParseDecimal(bruto)
			if err != nil {
				return nil, fmt.Errorf("valor inválido")
			}
			if status != cliente.StatusInativo && !valor.IsPositive() {
				return nil, fmt.Errorf("valor deve ser maior que zero para clientes ativos sem permuta")
			}
		}
	}

	return &cliente.Cliente{
		Nome:        nome,
		Responsavel: responsavelNome,
		Termometro:  termometro,
		Status:      status,
		Entrada:     *entrada,
		Saida:       saida,
		Valor:       valor,
		Permuta:     permuta,
		Motivo:      valorColuna(linha, mapa, "MOTIVO"),
		Razao:       valorColuna(linha, mapa, "RAZAO"),
	}, nil
}

// ImportarResponsaveis atualiza ou cria responsáveis a partir da
// planilha. Linhas sem NOME são puladas em silêncio.
func ImportarResponsaveis(db *gorm.DB, arquivo io.Reader) (int, error) {
	linhas, err := lerLinhas(arquivo)
	if err != nil {
		return 0, err
	}
	if len(linhas) < 2 {
		return 0, fmt.Errorf("planilha sem dados")
	}

	mapa := mapearCabecalho(linhas[0])
	if _, ok := mapa["NOME"]; !ok {
		return 0, fmt.Errorf("a coluna NOME é obrigatória")
	}

	respRepo := responsavel.NewRepository()
	importados := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, linha := range linhas[1:] {
			if linhaVazia(linha) {
				continue
			}
			nome := valorColuna(linha, mapa, "NOME")
			if nome == "" {
				continue
			}
			email := valorColuna(linha, mapa, "EMAIL")
			ativo := utils.ParseBooleanFlag(valorColuna(linha, mapa, "ATIVO"), true)
			if err := respRepo.AtualizarOuCriar(tx, nome, email, ativo); err != nil {
				return err
			}
			importados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return importados, nil
}

// ImportarMotivosRazoes alimenta o vocabulário de motivos e razões. A
// planilha pode trazer só motivos (MOTIVO, MOTIVO TRANSFERENCIA) ou
// pares razão+tipo (RAZAO, TIPO); cada razão válida fica ligada ao
// motivo da própria linha, quando houver.
func ImportarMotivosRazoes(db *gorm.DB, arquivo io.Reader) (motivos int, razoes int, err error) {
	linhas, err := lerLinhas(arquivo)
	if err != nil {
		return 0, 0, err
	}
	if len(linhas) < 2 {
		return 0, 0, fmt.Errorf("planilha sem dados")
	}

	mapa := mapearCabecalho(linhas[0])
	temColuna := false
	for _, coluna := range []string{"MOTIVO", "RAZAO", "TIPO", "MOTIVOTRANSFERENCIA"} {
		if _, ok := mapa[coluna]; ok {
			temColuna = true
			break
		}
	}
	if !temColuna {
		return 0, 0, fmt.Errorf("a planilha deve conter pelo menos uma das colunas MOTIVO ou RAZAO/TIPO")
	}

	vocab := motivorazao.NewRepository()
	novosMotivos := map[string]bool{}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, linha := range linhas[1:] {
			if linhaVazia(linha) {
				continue
			}

			motivoNome := valorColuna(linha, mapa, "MOTIVO")
			var motivoObj *motivorazao.Motivo
			if motivoNome != "" {
				novosMotivos[motivoNome] = true
				obj, err := vocab.GarantirMotivo(tx, motivoNome)
				if err != nil {
					return err
				}
				motivoObj = obj
			}

			if transfNome := valorColuna(linha, mapa, "MOTIVOTRANSFERENCIA"); transfNome != "" {
				novosMotivos[transfNome] = true
				if _, err := vocab.GarantirMotivo(tx, transfNome); err != nil {
					return err
				}
			}

			razaoNome := valorColuna(linha, mapa, "RAZAO")
			tipo := motivorazao.NormalizarTipo(valorColuna(linha, mapa, "TIPO"))
			if razaoNome != "" && tipo != "" {
				if err := vocab.GarantirRazao(tx, razaoNome, tipo, motivoObj); err != nil {
					return err
				}
				razoes++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return len(novosMotivos), razoes, nil
}
