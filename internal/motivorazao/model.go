package motivorazao

import (
	"strings"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/utils"
	"gorm.io/gorm"
)

// Tipos de histórico aos quais uma razão pode pertencer. Uma razão de
// mesmo nome sob outro tipo é uma entidade distinta.
const (
	TipoTransferencia         = "transferencia"
	TipoAlteracaoDeValor      = "alteracao_de_valor"
	TipoRegistroDeSaida       = "registro_de_saida"
	TipoAlteracaoDeTermometro = "alteracao_de_termometro"
)

// Motivo é o primeiro nível do vocabulário de justificativas.
type Motivo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:150;not null;uniqueIndex" json:"nome"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// Razao pertence a um motivo e vale para um único tipo de histórico.
type Razao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Nome            string    `gorm:"size:150;not null;uniqueIndex:idx_razao_nome_tipo" json:"nome"`
	TipoDeHistorico string    `gorm:"size:30;not null;uniqueIndex:idx_razao_nome_tipo" json:"tipoDeHistorico"`
	MotivoID        uint      `gorm:"not null;index" json:"motivoId"`
	CriadoEm        time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm    time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motivo{}, &Razao{})
}

var aliasesTipo = map[string]string{
	"transferencia":           TipoTransferencia,
	"transfer":                TipoTransferencia,
	"alteracao_de_valor":      TipoAlteracaoDeValor,
	"alteracaodevalor":        TipoAlteracaoDeValor,
	"valor":                   TipoAlteracaoDeValor,
	"registro_de_saida":       TipoRegistroDeSaida,
	"registrarsaida":          TipoRegistroDeSaida,
	"saida":                   TipoRegistroDeSaida,
	"alteracao_de_termometro": TipoAlteracaoDeTermometro,
	"alteracaodetermometro":   TipoAlteracaoDeTermometro,
	"termometro":              TipoAlteracaoDeTermometro,
}

// NormalizarTipo aceita variações com acento, espaço ou abreviadas
// ("Alteração de Valor" -> "alteracao_de_valor"). Vazio quando o valor
// não corresponde a nenhum tipo conhecido.
func NormalizarTipo(valor string) string {
	normalizado := strings.ReplaceAll(strings.ToLower(utils.NormalizarTexto(valor)), " ", "_")
	return aliasesTipo[normalizado]
}
