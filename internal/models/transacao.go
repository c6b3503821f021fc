package models

import "time"

type TransacaoTipo string

const (
	TransacaoEntrada TransacaoTipo = "entrada"
	TransacaoSaida   TransacaoTipo = "saida"
)

// Transacao: uma linha do caixa realizado (dinheiro que de fato circulou).
type Transacao struct {
	ID        uint          `gorm:"primaryKey"`
	Data      string        `gorm:"size:10;index;not null"` // "YYYY-MM-DD"
	Descricao string        `gorm:"size:255;not null"`
	Valor     float64       `gorm:"not null"`
	Tipo      TransacaoTipo `gorm:"size:10;not null"`
	Categoria string        `gorm:"size:100"`
	AlunoID   *uint         `gorm:"index"`
	Aluno     *Aluno
	CreatedAt time.Time
	UpdatedAt time.Time
}
