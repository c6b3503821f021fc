package agenda

import (
	"fmt"
	"testing"

	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	require.NoError(t, datas.Init("UTC"))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func criarAluno(t *testing.T, db *gorm.DB, nome string, status models.AlunoStatus, horarios ...models.HorarioTreino) models.Aluno {
	t.Helper()
	aluno := models.Aluno{
		Nome:           nome,
		Telefone:       "(11) 98888-0000",
		Email:          fmt.Sprintf("%s@academia.test", nome),
		Status:         status,
		HorariosTreino: horarios,
	}
	require.NoError(t, db.Create(&aluno).Error)
	return aluno
}

// o conjunto de dias tem que espelhar exatamente a lista de horários
func assertDiasEspelhamHorarios(t *testing.T, aluno *models.Aluno) {
	t.Helper()
	dias := aluno.DiasTreino()
	require.Len(t, dias, len(aluno.HorariosTreino))
	for _, h := range aluno.HorariosTreino {
		assert.Contains(t, dias, h.Dia)
	}
}

func TestAtribuirHorario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo)

	atualizado, err := svc.AtribuirHorario(aluno.ID, "segunda", "08:00")
	require.NoError(t, err)
	require.Len(t, atualizado.HorariosTreino, 1)
	assert.Equal(t, "segunda", atualizado.HorariosTreino[0].Dia)
	assert.Equal(t, "08:00", atualizado.HorariosTreino[0].Horario)
	assertDiasEspelhamHorarios(t, atualizado)

	// persiste
	var relido models.Aluno
	require.NoError(t, db.First(&relido, aluno.ID).Error)
	require.Len(t, relido.HorariosTreino, 1)
}

func TestAtribuirHorarioSameWeekdayTwiceFails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo)

	_, err := svc.AtribuirHorario(aluno.ID, "segunda", "08:00")
	require.NoError(t, err)

	// mesmo dia, mesmo horário
	_, err = svc.AtribuirHorario(aluno.ID, "segunda", "08:00")
	require.ErrorIs(t, err, ErrHorarioOcupado)

	// mesmo dia, outro horário: também falha, um horário por dia
	_, err = svc.AtribuirHorario(aluno.ID, "segunda", "10:00")
	require.ErrorIs(t, err, ErrHorarioOcupado)
}

func TestAtribuirHorarioCollisionIsPerMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	joao := criarAluno(t, db, "joao", models.AlunoAtivo)
	maria := criarAluno(t, db, "maria", models.AlunoAtivo)

	_, err := svc.AtribuirHorario(joao.ID, "segunda", "08:00")
	require.NoError(t, err)

	// alunos diferentes dividem o mesmo horário sem conflito
	_, err = svc.AtribuirHorario(maria.ID, "segunda", "08:00")
	require.NoError(t, err)
}

func TestAtribuirHorarioValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo)

	_, err := svc.AtribuirHorario(aluno.ID, "monday", "08:00")
	require.ErrorIs(t, err, ErrDiaInvalido)

	_, err = svc.AtribuirHorario(aluno.ID, "segunda", "08:15")
	require.ErrorIs(t, err, ErrHorarioInvalido)

	_, err = svc.AtribuirHorario(aluno.ID, "segunda", "25:00")
	require.ErrorIs(t, err, ErrHorarioInvalido)

	_, err = svc.AtribuirHorario(9999, "segunda", "08:00")
	require.ErrorIs(t, err, ErrAlunoNaoEncontrado)
}

func TestMoverHorario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
		models.HorarioTreino{Dia: "quarta", Horario: "18:30"},
	)

	atualizado, err := svc.MoverHorario(aluno.ID, "segunda", "08:00", "terca", "09:30")
	require.NoError(t, err)
	require.Len(t, atualizado.HorariosTreino, 2)
	assert.False(t, atualizado.TreinaNoDia("segunda"))

	horario, ok := atualizado.HorarioDoDia("terca")
	require.True(t, ok)
	assert.Equal(t, "09:30", horario)
	assertDiasEspelhamHorarios(t, atualizado)
}

func TestMoverHorarioWithinSameDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
	)

	atualizado, err := svc.MoverHorario(aluno.ID, "segunda", "08:00", "segunda", "10:00")
	require.NoError(t, err)
	require.Len(t, atualizado.HorariosTreino, 1)

	horario, ok := atualizado.HorarioDoDia("segunda")
	require.True(t, ok)
	assert.Equal(t, "10:00", horario)
}

func TestMoverHorarioToOccupiedDayFails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
		models.HorarioTreino{Dia: "quarta", Horario: "18:30"},
	)

	_, err := svc.MoverHorario(aluno.ID, "segunda", "08:00", "quarta", "18:30")
	require.ErrorIs(t, err, ErrHorarioOcupado)

	// nada mudou
	var relido models.Aluno
	require.NoError(t, db.First(&relido, aluno.ID).Error)
	assert.True(t, relido.TreinaNoDia("segunda"))
	assert.True(t, relido.TreinaNoDia("quarta"))
}

func TestMoverHorarioSamePlaceIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
	)

	atualizado, err := svc.MoverHorario(aluno.ID, "segunda", "08:00", "segunda", "08:00")
	require.NoError(t, err)
	require.Len(t, atualizado.HorariosTreino, 1)
}

func TestMoverHorarioMissingOrigin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo)

	_, err := svc.MoverHorario(aluno.ID, "segunda", "08:00", "terca", "09:00")
	require.ErrorIs(t, err, ErrHorarioNaoEncontrado)
}

func TestRemoverHorario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	aluno := criarAluno(t, db, "joao", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
		models.HorarioTreino{Dia: "quarta", Horario: "18:30"},
	)

	atualizado, err := svc.RemoverHorario(aluno.ID, "segunda")
	require.NoError(t, err)
	require.Len(t, atualizado.HorariosTreino, 1)
	assert.False(t, atualizado.TreinaNoDia("segunda"))
	assertDiasEspelhamHorarios(t, atualizado)

	_, err = svc.RemoverHorario(aluno.ID, "segunda")
	require.ErrorIs(t, err, ErrHorarioNaoEncontrado)
}

func TestTreinosDoDia(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	criarAluno(t, db, "ana", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
	)
	criarAluno(t, db, "bruno", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
		models.HorarioTreino{Dia: "sexta", Horario: "07:00"},
	)
	// inativo não aparece mesmo treinando na segunda
	criarAluno(t, db, "carla", models.AlunoInativo,
		models.HorarioTreino{Dia: "segunda", Horario: "10:00"},
	)
	// ativo sem treino na segunda fica de fora, sem horário padrão
	criarAluno(t, db, "diego", models.AlunoAtivo,
		models.HorarioTreino{Dia: "terca", Horario: "19:00"},
	)

	treinos, err := svc.TreinosDoDia("segunda")
	require.NoError(t, err)
	require.Len(t, treinos, 2)
	assert.Equal(t, "ana", treinos[0].Nome)
	assert.Equal(t, "08:00", treinos[0].Horario)
	assert.Equal(t, "bruno", treinos[1].Nome)
	assert.Equal(t, "08:00", treinos[1].Horario)
}

func TestTreinosDoDiaInvalidDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.TreinosDoDia("feriado")
	require.ErrorIs(t, err, ErrDiaInvalido)
}

func TestEstatisticasSemana(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	criarAluno(t, db, "ana", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "08:00"},
		models.HorarioTreino{Dia: "quarta", Horario: "08:00"},
	)
	criarAluno(t, db, "bruno", models.AlunoAtivo,
		models.HorarioTreino{Dia: "segunda", Horario: "18:00"},
	)
	criarAluno(t, db, "carla", models.AlunoInativo,
		models.HorarioTreino{Dia: "segunda", Horario: "10:00"},
	)

	stats, err := svc.EstatisticasSemana()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.PorDia["segunda"])
	assert.Equal(t, 1, stats.PorDia["quarta"])
	assert.Equal(t, 0, stats.PorDia["domingo"])
	assert.Equal(t, 3, stats.TotalAulasSemana)
	assert.Equal(t, 2, stats.TotalAlunosAtivos)
	assert.InDelta(t, 1.5, stats.MediaAulasPorAluno, 1e-9)
}

func TestEstatisticasSemanaNoActiveMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	stats, err := svc.EstatisticasSemana()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAlunosAtivos)
	assert.Equal(t, 0, stats.TotalAulasSemana)
	assert.Equal(t, 0.0, stats.MediaAulasPorAluno)
}
