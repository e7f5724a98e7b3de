package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var formatosData = []string{"02/01/2006", "02/01/06", "01/02/2006", "2006/01/02"}

// ParseData aceita datas de planilha em vários formatos (dd/mm/aaaa,
// dd/mm/aa, mm/dd/aaaa, aaaa/mm/dd, com "/", "-" ou "\" como separador).
// Valores vazios, "-" e "N/A" retornam nil sem erro.
func ParseData(valor string) (*time.Time, error) {
	texto := strings.TrimSpace(valor)
	switch strings.ToUpper(texto) {
	case "", "-", "NA", "N/A":
		return nil, nil
	}
	texto = strings.ReplaceAll(texto, "\\", "/")
	texto = strings.ReplaceAll(texto, "-", "/")
	for _, formato := range formatosData {
		if data, err := time.ParseInLocation(formato, texto, time.UTC); err == nil {
			return &data, nil
		}
	}
	return nil, fmt.Errorf("data em formato inválido: %s", valor)
}

// ParseDecimal interpreta valores monetários em formato brasileiro
// ("R$ 1.234,56"). Vazio e "N/A" valem zero.
func ParseDecimal(valor string) (decimal.Decimal, error) {
	texto := strings.TrimSpace(valor)
	if texto == "" || strings.EqualFold(texto, "N/A") {
		return decimal.Zero, nil
	}
	texto = strings.ReplaceAll(texto, "R$", "")
	texto = strings.ReplaceAll(texto, " ", "")
	texto = strings.ReplaceAll(texto, ".", "")
	texto = strings.ReplaceAll(texto, ",", ".")
	if texto == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(texto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido: %s", valor)
	}
	return d, nil
}

// ParsePermuta reconhece SIM/TRUE/1 como verdadeiro; tudo o mais é falso.
func ParsePermuta(valor string) bool {
	texto := strings.ReplaceAll(strings.ToUpper(NormalizarTexto(valor)), " ", "")
	switch texto {
	case "SIM", "TRUE", "1":
		return true
	}
	return false
}

// ParseBooleanFlag lê sinalizadores de planilha (SIM/NÃO, ATIVO/INATIVO,
// 1/0); valores desconhecidos ou vazios caem no padrão informado.
func ParseBooleanFlag(valor string, padrao bool) bool {
	texto := strings.ReplaceAll(strings.ToUpper(NormalizarTexto(valor)), " ", "")
	switch texto {
	case "SIM", "TRUE", "1", "ATIVO":
		return true
	case "NAO", "FALSE", "0", "INATIVO":
		return false
	}
	return padrao
}
