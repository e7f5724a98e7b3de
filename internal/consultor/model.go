package consultor

import (
	"time"

	"gorm.io/gorm"
)

// Consultor conduz reuniões de fechamento; é um cadastro independente do
// de responsáveis.
type Consultor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	Email        string    `gorm:"size:255" json:"email"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Consultor{})
}
