package dashboard

import (
	"errors"

	"academia-backend/internal/agenda"
	"academia-backend/internal/database"
	"academia-backend/internal/datas"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/dashboard/resumo
// -------------------------------------------------
func ResumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc := NewService(database.DB)
		resumo, err := svc.Resumo(datas.Hoje())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Resumo não pôde ser montado")
		}
		return c.JSON(resumo)
	}
}

// -------------------------------------------------
// GET /api/dashboard/treinos-do-dia?dia=segunda
// dia vazio = dia da semana de hoje no fuso da academia
// -------------------------------------------------
func TreinosDoDiaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dia := c.Query("dia")
		if dia == "" {
			dia = datas.DiaSemanaHoje()
		}

		svc := agenda.NewService(database.DB)
		treinos, err := svc.TreinosDoDia(dia)
		if err != nil {
			if errors.Is(err, agenda.ErrDiaInvalido) {
				return fiber.NewError(fiber.StatusBadRequest, "Dia da semana inválido")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Treinos do dia não puderam ser listados")
		}

		return c.JSON(fiber.Map{
			"dia":     dia,
			"treinos": treinos,
		})
	}
}

// -------------------------------------------------
// GET /api/dashboard/estatisticas-semana
// -------------------------------------------------
func EstatisticasSemanaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc := agenda.NewService(database.DB)
		stats, err := svc.EstatisticasSemana()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Estatísticas não puderam ser calculadas")
		}
		return c.JSON(stats)
	}
}
