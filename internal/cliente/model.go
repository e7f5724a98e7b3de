package cliente

import (
	"errors"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusAtivo   = "ATIVO"
	StatusInativo = "INATIVO"
)

// Cliente é o retrato atual de um cliente da carteira. O campo
// Responsavel é texto livre: o histórico guarda o nome vigente em cada
// evento, nunca uma referência ao cadastro atual.
type Cliente struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Nome            string          `gorm:"size:255;not null" json:"nome"`
	Termometro      int             `gorm:"not null;default:3" json:"termometro"`
	Responsavel     string          `gorm:"size:100;not null" json:"responsavel"`
	QuerAlinhamento bool            `gorm:"not null;default:false" json:"querAlinhamento"`
	Status          string          `gorm:"size:7;not null;default:'ATIVO'" json:"status"`
	Entrada         time.Time       `gorm:"not null" json:"entrada"`
	Saida           *time.Time      `json:"saida,omitempty"`
	Valor           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Permuta         bool            `gorm:"not null;default:false" json:"permuta"`
	// Motivo/Razao da última saída, preservados para exibição
	Motivo string `gorm:"size:255" json:"motivo"`
	Razao  string `gorm:"size:255" json:"razao"`

	Historico []historico.HistoricoCliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"historico,omitempty"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}

var (
	ErrValorObrigatorio = errors.New("o valor deve ser maior que zero para clientes ativos sem permuta")
	ErrSaidaAntesEntrada = errors.New("a data de saída não pode ser anterior à data de entrada")
)

// Normalizar aplica as invariantes de valor e valida o retrato:
// permuta força valor zero; inativo sem valor informado vale zero;
// ativo sem permuta exige valor positivo; entrada precede a saída.
func (c *Cliente) Normalizar() error {
	if c.Status != StatusAtivo && c.Status != StatusInativo {
		c.Status = StatusAtivo
	}
	if c.Termometro < 1 || c.Termometro > 5 {
		c.Termometro = 3
	}
	switch {
	case c.Permuta:
		c.Valor = decimal.Zero
	case c.Status == StatusInativo:
		if c.Valor.IsNegative() {
			c.Valor = decimal.Zero
		}
	default:
		if c.Valor.LessThanOrEqual(decimal.Zero) {
			return ErrValorObrigatorio
		}
	}
	if c.Saida != nil && c.Saida.Before(c.Entrada) {
		return ErrSaidaAntesEntrada
	}
	return nil
}
