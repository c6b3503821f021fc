package agenda

import (
	"errors"

	"academia-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type AtribuirHorarioRequest struct {
	Dia     string `json:"dia"`
	Horario string `json:"horario"` // "HH:MM"
}

type MoverHorarioRequest struct {
	DeDia       string `json:"deDia"`
	DeHorario   string `json:"deHorario"`
	ParaDia     string `json:"paraDia"`
	ParaHorario string `json:"paraHorario"`
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrAlunoNaoEncontrado):
		return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
	case errors.Is(err, ErrDiaInvalido):
		return fiber.NewError(fiber.StatusBadRequest, "Dia da semana inválido")
	case errors.Is(err, ErrHorarioInvalido):
		return fiber.NewError(fiber.StatusBadRequest, "Horário inválido, use 'HH:MM' de meia em meia hora")
	case errors.Is(err, ErrHorarioOcupado):
		return fiber.NewError(fiber.StatusConflict, "Este aluno já possui agendamento neste horário!")
	case errors.Is(err, ErrHorarioNaoEncontrado):
		return fiber.NewError(fiber.StatusNotFound, "O aluno não possui treino neste horário")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Agenda não pôde ser atualizada")
	}
}

func alunoIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return uint(id), nil
}

// -------------------------------------------------
// POST /api/alunos/:id/agenda
// -------------------------------------------------
func AtribuirHorarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		alunoID, err := alunoIDParam(c)
		if err != nil {
			return err
		}

		var body AtribuirHorarioRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		svc := NewService(database.DB)
		aluno, err := svc.AtribuirHorario(alunoID, body.Dia, body.Horario)
		if err != nil {
			return mapServiceError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":             aluno.ID,
			"diasTreino":     aluno.DiasTreino(),
			"horariosTreino": aluno.HorariosTreino,
		})
	}
}

// -------------------------------------------------
// PUT /api/alunos/:id/agenda  (arrastar e soltar)
// -------------------------------------------------
func MoverHorarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		alunoID, err := alunoIDParam(c)
		if err != nil {
			return err
		}

		var body MoverHorarioRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		svc := NewService(database.DB)
		aluno, err := svc.MoverHorario(alunoID, body.DeDia, body.DeHorario, body.ParaDia, body.ParaHorario)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"id":             aluno.ID,
			"diasTreino":     aluno.DiasTreino(),
			"horariosTreino": aluno.HorariosTreino,
		})
	}
}

// -------------------------------------------------
// DELETE /api/alunos/:id/agenda/:dia
// -------------------------------------------------
func RemoverHorarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		alunoID, err := alunoIDParam(c)
		if err != nil {
			return err
		}

		svc := NewService(database.DB)
		aluno, err := svc.RemoverHorario(alunoID, c.Params("dia"))
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"id":             aluno.ID,
			"diasTreino":     aluno.DiasTreino(),
			"horariosTreino": aluno.HorariosTreino,
		})
	}
}
