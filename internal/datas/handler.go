package datas

import "github.com/gofiber/fiber/v2"

// -------------------------------------------------
// GET /api/utils/hoje
// -------------------------------------------------
func HojeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"hoje":      Hoje(),
			"diaSemana": DiaSemanaHoje(),
		})
	}
}

// -------------------------------------------------
// GET /api/utils/formatar-data?data=2025-12-09
// -------------------------------------------------
func FormatarDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := c.Query("data")
		formatada, err := FormatarExibicao(data)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
		}
		return c.JSON(fiber.Map{"formatada": formatada})
	}
}

// -------------------------------------------------
// GET /api/utils/idade?nascimento=2000-03-01
// -------------------------------------------------
func IdadeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		nascimento := c.Query("nascimento")
		idade, err := IdadeEmAnos(nascimento, Hoje())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de nascimento inválida, use 'YYYY-MM-DD'")
		}
		return c.JSON(fiber.Map{"idade": idade})
	}
}
