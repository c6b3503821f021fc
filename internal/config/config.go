package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabasePath string // arquivo SQLite embutido
	Timezone     string // fuso fixo da academia, nunca o fuso da máquina
	CORSOrigins  string
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8090"),
		DatabasePath: getEnv("DATABASE_PATH", "./academia.db"),
		Timezone:     getEnv("TIMEZONE", "America/Sao_Paulo"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DatabasePath == "./academia.db" {
		log.Println("[WARN] DATABASE_PATH usando valor padrão ./academia.db")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
