package models

import "time"

// Historico: um registro na linha do tempo de medidas corporais do aluno.
type Historico struct {
	ID          uint    `gorm:"primaryKey"`
	AlunoID     uint    `gorm:"index;not null"`
	Aluno       *Aluno
	Data        string  `gorm:"size:10;index;not null"` // "YYYY-MM-DD"
	Peso        float64 `gorm:"not null"`
	TreinoAtual string  `gorm:"size:255;not null"`
	FotoBalanca string  `gorm:"type:text"` // foto codificada (base64), opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
