package cliente_test

import (
	"errors"
	"testing"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/shopspring/decimal"
)

func TestNormalizarPermutaZeraValor(t *testing.T) {
	c := &cliente.Cliente{
		Nome:    "Permutado",
		Status:  cliente.StatusAtivo,
		Entrada: dia(2024, time.January, 1),
		Permuta: true,
		Valor:   decimal.NewFromInt(900),
	}
	if err := c.Normalizar(); err != nil {
		t.Fatalf("Normalizar: %v", err)
	}
	if !c.Valor.IsZero() {
		t.Fatalf("permuta deveria zerar o valor, veio %s", c.Valor)
	}
}

func TestNormalizarAtivoSemValor(t *testing.T) {
	c := &cliente.Cliente{
		Nome:    "Sem valor",
		Status:  cliente.StatusAtivo,
		Entrada: dia(2024, time.January, 1),
		Valor:   decimal.Zero,
	}
	if err := c.Normalizar(); !errors.Is(err, cliente.ErrValorObrigatorio) {
		t.Fatalf("esperava ErrValorObrigatorio, veio %v", err)
	}
}

func TestNormalizarInativoNegativoViraZero(t *testing.T) {
	c := &cliente.Cliente{
		Nome:    "Inativo",
		Status:  cliente.StatusInativo,
		Entrada: dia(2024, time.January, 1),
		Valor:   decimal.NewFromInt(-10),
	}
	if err := c.Normalizar(); err != nil {
		t.Fatalf("Normalizar: %v", err)
	}
	if !c.Valor.IsZero() {
		t.Fatalf("inativo negativo deveria virar zero, veio %s", c.Valor)
	}
}

func TestNormalizarSaidaAntesDaEntrada(t *testing.T) {
	saida := dia(2023, time.December, 1)
	c := &cliente.Cliente{
		Nome:    "Invertido",
		Status:  cliente.StatusAtivo,
		Entrada: dia(2024, time.January, 1),
		Saida:   &saida,
		Valor:   decimal.NewFromInt(100),
	}
	if err := c.Normalizar(); !errors.Is(err, cliente.ErrSaidaAntesEntrada) {
		t.Fatalf("esperava ErrSaidaAntesEntrada, veio %v", err)
	}
}

func TestNormalizarDefaults(t *testing.T) {
	c := &cliente.Cliente{
		Nome:       "Padrões",
		Status:     "QUALQUER",
		Termometro: 9,
		Entrada:    dia(2024, time.January, 1),
		Valor:      decimal.NewFromInt(50),
	}
	if err := c.Normalizar(); err != nil {
		t.Fatalf("Normalizar: %v", err)
	}
	if c.Status != cliente.StatusAtivo {
		t.Fatalf("status inválido deveria cair em ATIVO, veio %s", c.Status)
	}
	if c.Termometro != 3 {
		t.Fatalf("termômetro fora da faixa deveria cair em 3, veio %d", c.Termometro)
	}
}
