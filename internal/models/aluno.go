package models

import "time"

type AlunoStatus string

const (
	AlunoAtivo   AlunoStatus = "Ativo"
	AlunoInativo AlunoStatus = "Inativo"
)

// HorarioTreino: um treino semanal do aluno (dia da semana + horário).
// A lista inteira é serializada como JSON numa única coluna; o conjunto
// de dias é sempre derivado dela, nunca persistido em separado.
type HorarioTreino struct {
	Dia     string `json:"dia"`     // domingo | segunda | terca | quarta | quinta | sexta | sabado
	Horario string `json:"horario"` // "HH:MM", granularidade de meia hora
}

type Aluno struct {
	ID             uint            `gorm:"primaryKey"`
	Nome           string          `gorm:"size:100;not null"`
	Nascimento     string          `gorm:"size:10"` // "YYYY-MM-DD"
	Telefone       string          `gorm:"size:50;not null"`
	Email          string          `gorm:"size:100;uniqueIndex;not null"`
	HorariosTreino []HorarioTreino `gorm:"serializer:json"`
	Status         AlunoStatus     `gorm:"size:20;default:Ativo"`
	DataMatricula  string          `gorm:"size:10"` // "YYYY-MM-DD"
	CorPadrao      string          `gorm:"size:9;default:#4CAF50"`
	Mensalidade    float64         `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DiasTreino deriva o conjunto de dias a partir da lista de horários.
func (a *Aluno) DiasTreino() []string {
	dias := make([]string, 0, len(a.HorariosTreino))
	for _, h := range a.HorariosTreino {
		dias = append(dias, h.Dia)
	}
	return dias
}

// HorarioDoDia retorna o horário de treino do aluno num dia da semana.
func (a *Aluno) HorarioDoDia(dia string) (string, bool) {
	for _, h := range a.HorariosTreino {
		if h.Dia == dia {
			return h.Horario, true
		}
	}
	return "", false
}

// TreinaNoDia informa se o aluno tem treino marcado no dia.
func (a *Aluno) TreinaNoDia(dia string) bool {
	_, ok := a.HorarioDoDia(dia)
	return ok
}
