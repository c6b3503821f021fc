package faturamento

import (
	"errors"

	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateFaturaRequest struct {
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"` // "YYYY-MM-DD"
	Tipo           string  `json:"tipo"`           // "receber" | "pagar"
	Status         *string `json:"status"`         // default "pendente"
	Categoria      string  `json:"categoria"`
	AlunoID        *uint   `json:"aluno_id"`
}

type UpdateFaturaRequest struct {
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Tipo           string  `json:"tipo"`
	Status         string  `json:"status"`
	Categoria      string  `json:"categoria"`
	AlunoID        *uint   `json:"aluno_id"`
}

type ParcelamentoRequest struct {
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"` // primeira parcela
	Tipo           string  `json:"tipo"`
	Categoria      string  `json:"categoria"`
	AlunoID        *uint   `json:"aluno_id"`
	TotalParcelas  int     `json:"totalParcelas"`
}

type FaturaResponse struct {
	ID             uint    `json:"id"`
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Tipo           string  `json:"tipo"`
	Status         string  `json:"status"`
	Categoria      string  `json:"categoria"`
	AlunoID        *uint   `json:"aluno_id"`
	AlunoNome      string  `json:"aluno_nome,omitempty"`
	Parcela        *int    `json:"parcela,omitempty"`
	TotalParcelas  *int    `json:"totalParcelas,omitempty"`
}

func toFaturaResponse(f models.Fatura) FaturaResponse {
	resp := FaturaResponse{
		ID:             f.ID,
		Descricao:      f.Descricao,
		Valor:          f.Valor,
		DataVencimento: f.DataVencimento,
		Tipo:           string(f.Tipo),
		Status:         string(f.Status),
		Categoria:      f.Categoria,
		AlunoID:        f.AlunoID,
		Parcela:        f.Parcela,
		TotalParcelas:  f.TotalParcelas,
	}
	if f.Aluno != nil {
		resp.AlunoNome = f.Aluno.Nome
	}
	return resp
}

func validarTipo(tipo string) error {
	switch models.FaturaTipo(tipo) {
	case models.FaturaReceber, models.FaturaPagar:
		return nil
	}
	return fiber.NewError(fiber.StatusBadRequest, "Tipo inválido (receber|pagar)")
}

// -------------------------------------------------
// GET /api/faturas
// -------------------------------------------------
func ListFaturasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var faturas []models.Fatura
		if err := database.DB.Preload("Aluno").
			Order("data_vencimento asc, id asc").
			Find(&faturas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Faturas não puderam ser listadas")
		}

		resp := make([]FaturaResponse, 0, len(faturas))
		for _, f := range faturas {
			resp = append(resp, toFaturaResponse(f))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/faturas
// -------------------------------------------------
func CreateFaturaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFaturaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Descricao == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Descrição é obrigatória")
		}
		if _, err := datas.ParseLocal(body.DataVencimento); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de vencimento inválida, use 'YYYY-MM-DD'")
		}
		if err := validarTipo(body.Tipo); err != nil {
			return err
		}

		status := models.FaturaPendente
		if body.Status != nil && *body.Status != "" {
			status = models.FaturaStatus(*body.Status)
		}

		fatura := models.Fatura{
			Descricao:      body.Descricao,
			Valor:          body.Valor,
			DataVencimento: body.DataVencimento,
			Tipo:           models.FaturaTipo(body.Tipo),
			Status:         status,
			Categoria:      body.Categoria,
			AlunoID:        body.AlunoID,
		}
		if err := database.DB.Create(&fatura).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fatura não pôde ser criada")
		}

		return c.Status(fiber.StatusCreated).JSON(toFaturaResponse(fatura))
	}
}

// -------------------------------------------------
// PUT /api/faturas/:id
// -------------------------------------------------
func UpdateFaturaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var body UpdateFaturaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if _, err := datas.ParseLocal(body.DataVencimento); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de vencimento inválida, use 'YYYY-MM-DD'")
		}
		if err := validarTipo(body.Tipo); err != nil {
			return err
		}

		var fatura models.Fatura
		if err := database.DB.First(&fatura, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Fatura não encontrada")
		}

		fatura.Descricao = body.Descricao
		fatura.Valor = body.Valor
		fatura.DataVencimento = body.DataVencimento
		fatura.Tipo = models.FaturaTipo(body.Tipo)
		fatura.Status = models.FaturaStatus(body.Status)
		fatura.Categoria = body.Categoria
		fatura.AlunoID = body.AlunoID

		if err := database.DB.Save(&fatura).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fatura não pôde ser atualizada")
		}
		return c.JSON(toFaturaResponse(fatura))
	}
}

// -------------------------------------------------
// DELETE /api/faturas/:id
// -------------------------------------------------
func DeleteFaturaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		res := database.DB.Delete(&models.Fatura{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fatura não pôde ser excluída")
		}
		return c.JSON(fiber.Map{"deletedId": id, "changes": res.RowsAffected})
	}
}

// -------------------------------------------------
// DELETE /api/faturas  (zera todas — fechamento de período)
// -------------------------------------------------
func ClearFaturasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc := NewService(database.DB)
		count, err := svc.LimparFaturas()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Faturas não puderam ser zeradas")
		}
		return c.JSON(fiber.Map{"deletedCount": count})
	}
}

// -------------------------------------------------
// POST /api/faturas/gerar-mensalidades
// -------------------------------------------------
func GerarMensalidadesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc := NewService(database.DB)
		criadas, err := svc.GerarMensalidades(datas.AgoraLocal())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mensalidades não puderam ser geradas")
		}

		resp := make([]FaturaResponse, 0, len(criadas))
		for _, f := range criadas {
			resp = append(resp, toFaturaResponse(f))
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/faturas/:id/pagar
// -------------------------------------------------
func MarcarPagaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		svc := NewService(database.DB)
		transacao, err := svc.MarcarPaga(uint(id))
		switch {
		case errors.Is(err, ErrFaturaNaoEncontrada):
			return fiber.NewError(fiber.StatusNotFound, "Fatura não encontrada")
		case errors.Is(err, ErrFaturaJaPaga):
			return fiber.NewError(fiber.StatusConflict, "Fatura já está paga")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Fatura marcada como paga falhou; nada foi alterado")
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"transacao_id": transacao.ID,
		})
	}
}

// -------------------------------------------------
// POST /api/faturas/parcelamentos
// -------------------------------------------------
func CriarParcelasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ParcelamentoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Descricao == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Descrição é obrigatória")
		}
		if err := validarTipo(body.Tipo); err != nil {
			return err
		}

		svc := NewService(database.DB)
		parcelas, err := svc.CriarParcelas(ParcelamentoBase{
			Descricao:      body.Descricao,
			Valor:          body.Valor,
			DataVencimento: body.DataVencimento,
			Tipo:           models.FaturaTipo(body.Tipo),
			Categoria:      body.Categoria,
			AlunoID:        body.AlunoID,
		}, body.TotalParcelas)
		switch {
		case errors.Is(err, ErrParcelasInvalidas):
			return fiber.NewError(fiber.StatusBadRequest, "Número de parcelas deve ser no mínimo 2")
		case errors.Is(err, ErrVencimentoInvalido):
			return fiber.NewError(fiber.StatusBadRequest, "Data de vencimento inválida, use 'YYYY-MM-DD'")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Parcelas não puderam ser criadas")
		}

		resp := make([]FaturaResponse, 0, len(parcelas))
		for _, f := range parcelas {
			resp = append(resp, toFaturaResponse(f))
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}
