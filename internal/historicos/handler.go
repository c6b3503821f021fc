package historicos

import (
	"strings"

	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type HistoricoRequest struct {
	AlunoID     uint    `json:"aluno_id"`
	Data        string  `json:"data"` // "YYYY-MM-DD"
	Peso        float64 `json:"peso"`
	TreinoAtual string  `json:"treinoAtual"`
	FotoBalanca string  `json:"fotoBalanca"` // base64, opcional
}

type HistoricoResponse struct {
	ID          uint    `json:"id"`
	AlunoID     uint    `json:"aluno_id"`
	AlunoNome   string  `json:"aluno_nome,omitempty"`
	Data        string  `json:"data"`
	Peso        float64 `json:"peso"`
	TreinoAtual string  `json:"treinoAtual"`
	FotoBalanca string  `json:"fotoBalanca,omitempty"`
}

func toHistoricoResponse(h models.Historico) HistoricoResponse {
	resp := HistoricoResponse{
		ID:          h.ID,
		AlunoID:     h.AlunoID,
		Data:        h.Data,
		Peso:        h.Peso,
		TreinoAtual: h.TreinoAtual,
		FotoBalanca: h.FotoBalanca,
	}
	if h.Aluno != nil {
		resp.AlunoNome = h.Aluno.Nome
	}
	return resp
}

func validarHistorico(body *HistoricoRequest) error {
	if _, err := datas.ParseLocal(body.Data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
	}
	if body.Peso <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Peso deve ser maior que 0")
	}
	if strings.TrimSpace(body.TreinoAtual) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Treino atual é obrigatório")
	}
	return nil
}

// -------------------------------------------------
// GET /api/historicos
// -------------------------------------------------
func ListHistoricosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var historicos []models.Historico
		if err := database.DB.Preload("Aluno").
			Order("data desc, id desc").
			Find(&historicos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Históricos não puderam ser listados")
		}

		resp := make([]HistoricoResponse, 0, len(historicos))
		for _, h := range historicos {
			resp = append(resp, toHistoricoResponse(h))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/alunos/:id/historicos
// -------------------------------------------------
func ListHistoricosByAlunoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		alunoID, err := c.ParamsInt("id")
		if err != nil || alunoID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var historicos []models.Historico
		if err := database.DB.Preload("Aluno").
			Where("aluno_id = ?", alunoID).
			Order("data desc, id desc").
			Find(&historicos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Históricos não puderam ser listados")
		}

		resp := make([]HistoricoResponse, 0, len(historicos))
		for _, h := range historicos {
			resp = append(resp, toHistoricoResponse(h))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/historicos
// -------------------------------------------------
func CreateHistoricoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body HistoricoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.AlunoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "aluno_id é obrigatório")
		}
		if err := validarHistorico(&body); err != nil {
			return err
		}

		var aluno models.Aluno
		if err := database.DB.First(&aluno, body.AlunoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
		}

		historico := models.Historico{
			AlunoID:     body.AlunoID,
			Data:        body.Data,
			Peso:        body.Peso,
			TreinoAtual: body.TreinoAtual,
			FotoBalanca: body.FotoBalanca,
		}
		if err := database.DB.Create(&historico).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Histórico não pôde ser criado")
		}

		return c.Status(fiber.StatusCreated).JSON(toHistoricoResponse(historico))
	}
}

// -------------------------------------------------
// PUT /api/historicos/:id
// -------------------------------------------------
func UpdateHistoricoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var body HistoricoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validarHistorico(&body); err != nil {
			return err
		}

		var historico models.Historico
		if err := database.DB.First(&historico, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Histórico não encontrado")
		}

		historico.Data = body.Data
		historico.Peso = body.Peso
		historico.TreinoAtual = body.TreinoAtual
		historico.FotoBalanca = body.FotoBalanca

		if err := database.DB.Save(&historico).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Histórico não pôde ser atualizado")
		}
		return c.JSON(toHistoricoResponse(historico))
	}
}

// -------------------------------------------------
// DELETE /api/historicos/:id
// -------------------------------------------------
func DeleteHistoricoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		res := database.DB.Delete(&models.Historico{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Histórico não pôde ser excluído")
		}
		return c.JSON(fiber.Map{"deletedId": id, "changes": res.RowsAffected})
	}
}
