package models

import "time"

type FaturaTipo string

const (
	FaturaReceber FaturaTipo = "receber"
	FaturaPagar   FaturaTipo = "pagar"
)

type FaturaStatus string

const (
	FaturaPendente FaturaStatus = "pendente"
	FaturaPaga     FaturaStatus = "pago"
)

// CategoriaMensalidade marca as faturas geradas pela rotina de mensalidades;
// a checagem de duplicidade (aluno + vencimento + categoria) depende dela.
const CategoriaMensalidade = "Mensalidade"

type Fatura struct {
	ID             uint         `gorm:"primaryKey"`
	Descricao      string       `gorm:"size:255;not null"`
	Valor          float64      `gorm:"not null"`
	DataVencimento string       `gorm:"size:10;index;not null"` // "YYYY-MM-DD"
	Tipo           FaturaTipo   `gorm:"size:10;not null"`
	Status         FaturaStatus `gorm:"size:10;default:pendente"`
	Categoria      string       `gorm:"size:100"`
	AlunoID        *uint        `gorm:"index"`
	Aluno          *Aluno
	Parcela        *int // 1-based; presente junto com TotalParcelas ou ausente
	TotalParcelas  *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
