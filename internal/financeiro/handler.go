package financeiro

import (
	"strings"

	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TransacaoRequest struct {
	Data      string  `json:"data"` // "YYYY-MM-DD"
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"` // "entrada" | "saida"
	Categoria string  `json:"categoria"`
	AlunoID   *uint   `json:"aluno_id"`
}

type TransacaoResponse struct {
	ID        uint    `json:"id"`
	Data      string  `json:"data"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
	Categoria string  `json:"categoria"`
	AlunoID   *uint   `json:"aluno_id"`
	AlunoNome string  `json:"aluno_nome,omitempty"`
}

func toTransacaoResponse(t models.Transacao) TransacaoResponse {
	resp := TransacaoResponse{
		ID:        t.ID,
		Data:      t.Data,
		Descricao: t.Descricao,
		Valor:     t.Valor,
		Tipo:      string(t.Tipo),
		Categoria: t.Categoria,
		AlunoID:   t.AlunoID,
	}
	if t.Aluno != nil {
		resp.AlunoNome = t.Aluno.Nome
	}
	return resp
}

func validarTransacao(body *TransacaoRequest) error {
	if _, err := datas.ParseLocal(body.Data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
	}
	if strings.TrimSpace(body.Descricao) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Descrição é obrigatória")
	}
	if body.Valor <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Valor deve ser maior que 0")
	}
	switch models.TransacaoTipo(body.Tipo) {
	case models.TransacaoEntrada, models.TransacaoSaida:
		return nil
	}
	return fiber.NewError(fiber.StatusBadRequest, "Tipo inválido (entrada|saida)")
}

// -------------------------------------------------
// GET /api/transacoes
// -------------------------------------------------
func ListTransacoesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var transacoes []models.Transacao
		if err := database.DB.Preload("Aluno").
			Order("data desc, id desc").
			Find(&transacoes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transações não puderam ser listadas")
		}

		resp := make([]TransacaoResponse, 0, len(transacoes))
		for _, t := range transacoes {
			resp = append(resp, toTransacaoResponse(t))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/transacoes
// -------------------------------------------------
func CreateTransacaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TransacaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validarTransacao(&body); err != nil {
			return err
		}

		transacao := models.Transacao{
			Data:      body.Data,
			Descricao: body.Descricao,
			Valor:     body.Valor,
			Tipo:      models.TransacaoTipo(body.Tipo),
			Categoria: body.Categoria,
			AlunoID:   body.AlunoID,
		}
		if err := database.DB.Create(&transacao).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transação não pôde ser criada")
		}

		return c.Status(fiber.StatusCreated).JSON(toTransacaoResponse(transacao))
	}
}

// -------------------------------------------------
// PUT /api/transacoes/:id
// -------------------------------------------------
func UpdateTransacaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var body TransacaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validarTransacao(&body); err != nil {
			return err
		}

		var transacao models.Transacao
		if err := database.DB.First(&transacao, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transação não encontrada")
		}

		transacao.Data = body.Data
		transacao.Descricao = body.Descricao
		transacao.Valor = body.Valor
		transacao.Tipo = models.TransacaoTipo(body.Tipo)
		transacao.Categoria = body.Categoria
		transacao.AlunoID = body.AlunoID

		if err := database.DB.Save(&transacao).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transação não pôde ser atualizada")
		}
		return c.JSON(toTransacaoResponse(transacao))
	}
}

// -------------------------------------------------
// DELETE /api/transacoes/:id
// -------------------------------------------------
func DeleteTransacaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		res := database.DB.Delete(&models.Transacao{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transação não pôde ser excluída")
		}
		return c.JSON(fiber.Map{"deletedId": id, "changes": res.RowsAffected})
	}
}

// -------------------------------------------------
// DELETE /api/transacoes  (zera o caixa — fechamento de período)
// -------------------------------------------------
func ClearTransacoesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Where("1 = 1").Delete(&models.Transacao{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transações não puderam ser zeradas")
		}
		return c.JSON(fiber.Map{"deletedCount": res.RowsAffected})
	}
}
