package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var removerAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarTexto remove acentuação e espaços das pontas.
func NormalizarTexto(valor string) string {
	texto := strings.TrimSpace(valor)
	if texto == "" {
		return ""
	}
	semAcentos, _, err := transform.String(removerAcentos, texto)
	if err != nil {
		return texto
	}
	return semAcentos
}

// ChaveCabecalho converte um título de coluna de planilha em chave canônica:
// sem acentos, maiúscula e sem espaços ("Responsável " -> "RESPONSAVEL").
func ChaveCabecalho(valor string) string {
	return strings.ReplaceAll(strings.ToUpper(NormalizarTexto(valor)), " ", "")
}
