// Package periodo concentra a aritmética de meses usada pelos relatórios:
// todo o eixo temporal do sistema é a chave canônica "AAAA-MM".
package periodo

import (
	"fmt"
	"iter"
	"time"
)

// ChaveMes converte uma data para a chave "AAAA-MM". A ordenação
// lexicográfica das chaves coincide com a cronológica.
func ChaveMes(data time.Time) string {
	return data.Format("2006-01")
}

// InicioMes trunca a data para o dia 1 do mesmo mês.
func InicioMes(data time.Time) time.Time {
	return time.Date(data.Year(), data.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MesAnterior retorna o dia 1 do mês imediatamente anterior.
func MesAnterior(data time.Time) time.Time {
	ano := data.Year()
	mes := int(data.Month()) - 1
	if mes == 0 {
		mes = 12
		ano--
	}
	return time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
}

// AdicionarMeses soma n meses (n pode ser negativo) e normaliza a virada
// de ano, sempre retornando o dia 1.
func AdicionarMeses(data time.Time, n int) time.Time {
	mes := int(data.Month()) - 1 + n
	ano := data.Year() + mes/12
	mes = mes % 12
	if mes < 0 {
		mes += 12
		ano--
	}
	return time.Date(ano, time.Month(mes+1), 1, 0, 0, 0, 0, time.UTC)
}

// MesesEntre percorre os inícios de mês de InicioMes(inicio) até
// InicioMes(fim), inclusivo, de um em um mês. Sequência vazia quando o
// fim antecede o início após o truncamento.
func MesesEntre(inicio, fim time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		atual := InicioMes(inicio)
		ultimo := InicioMes(fim)
		for !atual.After(ultimo) {
			if !yield(atual) {
				return
			}
			atual = AdicionarMeses(atual, 1)
		}
	}
}

// ParseChaveMes é o inverso de ChaveMes para chaves canônicas.
func ParseChaveMes(chave string) (time.Time, error) {
	data, err := time.ParseInLocation("2006-01", chave, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês em formato inválido: %s", chave)
	}
	return data, nil
}
