package utils_test

import (
	"testing"

	"github.com/AtrioGestao/api-clientes/internal/utils"
	"github.com/shopspring/decimal"
)

func TestParseData(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"17/03/2024", "2024-03-17"},
		{"17-03-2024", "2024-03-17"},
		{`17\03\2024`, "2024-03-17"},
		{"05/01/24", "2024-01-05"},
		{"2024/03/17", "2024-03-17"},
	}
	for _, c := range casos {
		data, err := utils.ParseData(c.entrada)
		if err != nil {
			t.Errorf("ParseData(%q): %v", c.entrada, err)
			continue
		}
		if data == nil || data.Format("2006-01-02") != c.esperado {
			t.Errorf("ParseData(%q): esperava %s, veio %v", c.entrada, c.esperado, data)
		}
	}
}

func TestParseDataVazios(t *testing.T) {
	for _, vazio := range []string{"", "  ", "-", "N/A", "na"} {
		data, err := utils.ParseData(vazio)
		if err != nil || data != nil {
			t.Errorf("ParseData(%q): esperava nil sem erro, veio %v / %v", vazio, data, err)
		}
	}
}

func TestParseDataInvalida(t *testing.T) {
	if _, err := utils.ParseData("março de 2024"); err == nil {
		t.Fatal("esperava erro para data ilegível")
	}
}

func TestParseDecimal(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"500", "500"},
		{"", "0"},
		{"N/A", "0"},
	}
	for _, c := range casos {
		valor, err := utils.ParseDecimal(c.entrada)
		if err != nil {
			t.Errorf("ParseDecimal(%q): %v", c.entrada, err)
			continue
		}
		if !valor.Equal(decimal.RequireFromString(c.esperado)) {
			t.Errorf("ParseDecimal(%q): esperava %s, veio %s", c.entrada, c.esperado, valor)
		}
	}

	if _, err := utils.ParseDecimal("abc"); err == nil {
		t.Fatal("esperava erro para valor ilegível")
	}
}

func TestParsePermuta(t *testing.T) {
	for _, sim := range []string{"Sim", "SIM", "true", "1", " sim "} {
		if !utils.ParsePermuta(sim) {
			t.Errorf("ParsePermuta(%q): esperava true", sim)
		}
	}
	for _, nao := range []string{"", "Não", "false", "0", "qualquer"} {
		if utils.ParsePermuta(nao) {
			t.Errorf("ParsePermuta(%q): esperava false", nao)
		}
	}
}

func TestParseBooleanFlag(t *testing.T) {
	if !utils.ParseBooleanFlag("ATIVO", false) {
		t.Error("ATIVO deveria ser true")
	}
	if utils.ParseBooleanFlag("Não", true) {
		t.Error("Não deveria ser false")
	}
	if utils.ParseBooleanFlag("inativo", true) {
		t.Error("inativo deveria ser false")
	}
	if !utils.ParseBooleanFlag("", true) {
		t.Error("vazio deveria cair no padrão")
	}
	if !utils.ParseBooleanFlag("talvez", true) {
		t.Error("desconhecido deveria cair no padrão")
	}
}

func TestNormalizarTexto(t *testing.T) {
	casos := map[string]string{
		"Transferência": "Transferencia",
		"saída":         "saida",
		"João José":     "Joao Jose",
		"sem acento":    "sem acento",
	}
	for entrada, esperado := range casos {
		if got := utils.NormalizarTexto(entrada); got != esperado {
			t.Errorf("NormalizarTexto(%q): esperava %q, veio %q", entrada, esperado, got)
		}
	}
}

func TestChaveCabecalho(t *testing.T) {
	casos := map[string]string{
		"Responsável":          "RESPONSAVEL",
		" motivo transferencia": "MOTIVOTRANSFERENCIA",
		"Termômetro":           "TERMOMETRO",
	}
	for entrada, esperado := range casos {
		if got := utils.ChaveCabecalho(entrada); got != esperado {
			t.Errorf("ChaveCabecalho(%q): esperava %q, veio %q", entrada, esperado, got)
		}
	}
}

func TestHashECheckSenha(t *testing.T) {
	hash, err := utils.HashSenha("segredo123")
	if err != nil {
		t.Fatalf("HashSenha: %v", err)
	}
	if !utils.CheckSenha(hash, "segredo123") {
		t.Fatal("CheckSenha deveria aceitar a senha correta")
	}
	if utils.CheckSenha(hash, "outra") {
		t.Fatal("CheckSenha deveria recusar senha incorreta")
	}
}
