package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario do sistema. O perfil define o que o token autoriza:
// administradores acessam tudo, o perfil de agendamento só a grade de
// reuniões.
type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:100;not null" json:"nome"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Senha        string    `gorm:"size:255;not null" json:"-"`
	Perfil       string    `gorm:"size:20;not null" json:"perfil"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
