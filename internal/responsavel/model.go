package responsavel

import (
	"time"

	"gorm.io/gorm"
)

// Responsavel é o cadastro mutável de gestores de conta. Clientes e
// histórico referenciam responsáveis pelo nome (texto livre): renomear um
// responsável não reescreve registros antigos.
type Responsavel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	Email        string    `gorm:"size:255" json:"email"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Responsavel{})
}
