package agenda

import (
	"errors"
	"regexp"

	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAlunoNaoEncontrado   = errors.New("aluno não encontrado")
	ErrDiaInvalido          = errors.New("dia da semana inválido")
	ErrHorarioInvalido      = errors.New("horário inválido")
	ErrHorarioOcupado       = errors.New("o aluno já possui treino neste horário")
	ErrHorarioNaoEncontrado = errors.New("o aluno não possui treino neste horário")
)

// meia em meia hora: "06:00", "06:30", ... "23:30"
var horarioRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):(00|30)$`)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func validarSlot(dia, horario string) error {
	if !datas.DiaSemanaValido(dia) {
		return ErrDiaInvalido
	}
	if !horarioRe.MatchString(horario) {
		return ErrHorarioInvalido
	}
	return nil
}

func (s *Service) buscarAluno(alunoID uint) (*models.Aluno, error) {
	var aluno models.Aluno
	if err := s.db.First(&aluno, alunoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlunoNaoEncontrado
		}
		return nil, err
	}
	return &aluno, nil
}

// AtribuirHorario marca um treino semanal para o aluno. Um aluno tem no
// máximo um horário por dia da semana; para trocar o horário de um dia
// já ocupado é preciso remover (ou mover) o treino existente antes.
// Alunos diferentes podem dividir o mesmo horário livremente.
func (s *Service) AtribuirHorario(alunoID uint, dia, horario string) (*models.Aluno, error) {
	if err := validarSlot(dia, horario); err != nil {
		return nil, err
	}

	aluno, err := s.buscarAluno(alunoID)
	if err != nil {
		return nil, err
	}

	if aluno.TreinaNoDia(dia) {
		return nil, ErrHorarioOcupado
	}

	aluno.HorariosTreino = append(aluno.HorariosTreino, models.HorarioTreino{
		Dia:     dia,
		Horario: horario,
	})
	if err := s.db.Save(aluno).Error; err != nil {
		return nil, err
	}
	return aluno, nil
}

// MoverHorario realoca um treino (arrastar e soltar no calendário). O
// destino só conflita com outros treinos do próprio aluno; mover para o
// mesmo lugar é aceito sem efeito.
func (s *Service) MoverHorario(alunoID uint, deDia, deHorario, paraDia, paraHorario string) (*models.Aluno, error) {
	if err := validarSlot(deDia, deHorario); err != nil {
		return nil, err
	}
	if err := validarSlot(paraDia, paraHorario); err != nil {
		return nil, err
	}

	aluno, err := s.buscarAluno(alunoID)
	if err != nil {
		return nil, err
	}

	if deDia == paraDia && deHorario == paraHorario {
		return aluno, nil
	}

	restantes := make([]models.HorarioTreino, 0, len(aluno.HorariosTreino))
	removido := false
	for _, h := range aluno.HorariosTreino {
		if !removido && h.Dia == deDia && h.Horario == deHorario {
			removido = true
			continue
		}
		restantes = append(restantes, h)
	}
	if !removido {
		return nil, ErrHorarioNaoEncontrado
	}

	for _, h := range restantes {
		if h.Dia == paraDia {
			return nil, ErrHorarioOcupado
		}
	}

	aluno.HorariosTreino = append(restantes, models.HorarioTreino{
		Dia:     paraDia,
		Horario: paraHorario,
	})
	if err := s.db.Save(aluno).Error; err != nil {
		return nil, err
	}
	return aluno, nil
}

// RemoverHorario desmarca o treino do aluno num dia da semana.
func (s *Service) RemoverHorario(alunoID uint, dia string) (*models.Aluno, error) {
	if !datas.DiaSemanaValido(dia) {
		return nil, ErrDiaInvalido
	}

	aluno, err := s.buscarAluno(alunoID)
	if err != nil {
		return nil, err
	}

	restantes := make([]models.HorarioTreino, 0, len(aluno.HorariosTreino))
	removido := false
	for _, h := range aluno.HorariosTreino {
		if h.Dia == dia {
			removido = true
			continue
		}
		restantes = append(restantes, h)
	}
	if !removido {
		return nil, ErrHorarioNaoEncontrado
	}

	aluno.HorariosTreino = restantes
	if err := s.db.Save(aluno).Error; err != nil {
		return nil, err
	}
	return aluno, nil
}

// TreinoDoDia: um aluno ativo e o horário dele num dia da semana.
type TreinoDoDia struct {
	AlunoID   uint     `json:"aluno_id"`
	Nome      string   `json:"nome"`
	Horario   string   `json:"horario"`
	CorPadrao string   `json:"corPadrao"`
	Telefone  string   `json:"telefone"`
	Status    string   `json:"status"`
	Dias      []string `json:"diasTreino"`
}

// TreinosDoDia lista os alunos ativos que treinam no dia, cada um com o
// horário daquele dia. Quem não treina no dia fica de fora.
func (s *Service) TreinosDoDia(dia string) ([]TreinoDoDia, error) {
	if !datas.DiaSemanaValido(dia) {
		return nil, ErrDiaInvalido
	}

	var alunos []models.Aluno
	if err := s.db.
		Where("status = ?", models.AlunoAtivo).
		Order("nome").
		Find(&alunos).Error; err != nil {
		return nil, err
	}

	treinos := make([]TreinoDoDia, 0)
	for _, aluno := range alunos {
		horario, ok := aluno.HorarioDoDia(dia)
		if !ok {
			continue
		}
		treinos = append(treinos, TreinoDoDia{
			AlunoID:   aluno.ID,
			Nome:      aluno.Nome,
			Horario:   horario,
			CorPadrao: aluno.CorPadrao,
			Telefone:  aluno.Telefone,
			Status:    string(aluno.Status),
			Dias:      aluno.DiasTreino(),
		})
	}
	return treinos, nil
}

// EstatisticasSemana agrega a carga semanal dos alunos ativos.
type EstatisticasSemana struct {
	PorDia             map[string]int `json:"estatisticasPorDia"`
	TotalAulasSemana   int            `json:"totalAulasSemana"`
	TotalAlunosAtivos  int            `json:"totalAlunosAtivos"`
	MediaAulasPorAluno float64        `json:"mediaAulasPorAluno"`
}

// EstatisticasSemana conta quantos alunos ativos treinam em cada dia da
// semana e a média de aulas por aluno. Sem alunos ativos a média é 0.
func (s *Service) EstatisticasSemana() (*EstatisticasSemana, error) {
	var alunos []models.Aluno
	if err := s.db.
		Where("status = ?", models.AlunoAtivo).
		Find(&alunos).Error; err != nil {
		return nil, err
	}

	stats := &EstatisticasSemana{
		PorDia:            make(map[string]int, len(datas.DiasSemana)),
		TotalAlunosAtivos: len(alunos),
	}
	for _, dia := range datas.DiasSemana {
		stats.PorDia[dia] = 0
	}
	for _, aluno := range alunos {
		for _, h := range aluno.HorariosTreino {
			stats.PorDia[h.Dia]++
			stats.TotalAulasSemana++
		}
	}
	if stats.TotalAlunosAtivos > 0 {
		stats.MediaAulasPorAluno = float64(stats.TotalAulasSemana) / float64(stats.TotalAlunosAtivos)
	}
	return stats, nil
}
