package historico

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de evento registrados no histórico de um cliente.
const (
	TipoTransferencia = "TRANSFERENCIA"
	TipoSaida         = "SAIDA"
	TipoTermometro    = "TERMOMETRO"
	TipoValor         = "VALOR"
)

// HistoricoCliente é o registro imutável de auditoria de uma mutação.
// Os campos antes/depois só são preenchidos conforme o tipo; os nomes de
// responsável são snapshots em texto, nunca chaves para o cadastro atual.
type HistoricoCliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClienteID uint      `gorm:"not null;index" json:"clienteId"`
	Tipo      string    `gorm:"size:20;not null" json:"tipo"`
	Data      time.Time `gorm:"not null;index" json:"data"`
	Motivo    string    `gorm:"size:255" json:"motivo"`
	Razao     string    `gorm:"size:255" json:"razao"`

	ResponsavelAntigo string `gorm:"size:100" json:"responsavelAntigo,omitempty"`
	ResponsavelNovo   string `gorm:"size:100" json:"responsavelNovo,omitempty"`

	StatusAntigo string `gorm:"size:7" json:"statusAntigo,omitempty"`
	StatusNovo   string `gorm:"size:7" json:"statusNovo,omitempty"`

	TermometroAntigo *int `json:"termometroAntigo,omitempty"`
	TermometroNovo   *int `json:"termometroNovo,omitempty"`

	ValorAntigo   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"valorAntigo,omitempty"`
	ValorNovo     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"valorNovo,omitempty"`
	PermutaAntiga *bool            `json:"permutaAntiga,omitempty"`
	PermutaNova   *bool            `json:"permutaNova,omitempty"`

	CriadoEm time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoCliente{})
}

// DescricaoAlteracao resume o antes/depois do evento para exibição.
func (h HistoricoCliente) DescricaoAlteracao() string {
	formatarPermuta := func(v *bool) string {
		if v == nil {
			return "—"
		}
		if *v {
			return "Sim"
		}
		return "Não"
	}
	ouTraco := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	switch h.Tipo {
	case TipoTransferencia:
		if h.ResponsavelAntigo != "" || h.ResponsavelNovo != "" {
			return fmt.Sprintf("Responsável: %s → %s", ouTraco(h.ResponsavelAntigo), ouTraco(h.ResponsavelNovo))
		}
	case TipoSaida:
		if h.StatusAntigo != "" || h.StatusNovo != "" {
			return fmt.Sprintf("Status: %s → %s", ouTraco(h.StatusAntigo), ouTraco(h.StatusNovo))
		}
	case TipoTermometro:
		if h.TermometroAntigo != nil || h.TermometroNovo != nil {
			antigo, novo := "-", "-"
			if h.TermometroAntigo != nil {
				antigo = fmt.Sprint(*h.TermometroAntigo)
			}
			if h.TermometroNovo != nil {
				novo = fmt.Sprint(*h.TermometroNovo)
			}
			return fmt.Sprintf("Termômetro: %s → %s", antigo, novo)
		}
	case TipoValor:
		detalhes := ""
		if h.ValorAntigo != nil || h.ValorNovo != nil {
			antigo, novo := "—", "—"
			if h.ValorAntigo != nil {
				antigo = "R$ " + h.ValorAntigo.StringFixed(2)
			}
			if h.ValorNovo != nil {
				novo = "R$ " + h.ValorNovo.StringFixed(2)
			}
			detalhes = fmt.Sprintf("Valor: %s → %s", antigo, novo)
		}
		if h.PermutaAntiga != nil || h.PermutaNova != nil {
			permuta := fmt.Sprintf("Permuta: %s → %s", formatarPermuta(h.PermutaAntiga), formatarPermuta(h.PermutaNova))
			if detalhes != "" {
				detalhes += " · " + permuta
			} else {
				detalhes = permuta
			}
		}
		if detalhes == "" {
			detalhes = "Valor ajustado"
		}
		return detalhes
	}
	return ""
}
