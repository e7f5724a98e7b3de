package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func envOu(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}

// ConectarBanco abre a conexão Postgres a partir das variáveis de
// ambiente DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD e
// DB_SSL_MODE_DISABLE.
func ConectarBanco() (*gorm.DB, error) {
	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s%s",
		envOu("DB_HOST", "localhost"),
		envOu("DB_USER", "postgres"),
		envOu("DB_PASSWORD", "postgres"),
		envOu("DB_NAME", "clientes"),
		envOu("DB_PORT", "5432"),
		sslMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
