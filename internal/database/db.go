package database

import (
	"log"
	"os"
	"path/filepath"

	"academia-backend/internal/config"
	"academia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// garante que o diretório do arquivo existe
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Não foi possível criar o diretório do banco: %v", err)
		}
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível abrir o banco de dados: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Erro na migração: %v", err)
	}

	log.Println("Banco de dados aberto. Migração concluída.")
}

// Migrate cria/atualiza as tabelas. Exportada para os testes abrirem
// bancos em memória com o mesmo esquema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Aluno{},
		&models.Transacao{},
		&models.Fatura{},
		&models.Historico{},
	)
}

// Close fecha a conexão subjacente no encerramento do processo.
func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
