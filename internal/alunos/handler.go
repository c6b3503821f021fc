package alunos

import (
	"strings"

	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AlunoRequest struct {
	Nome           string                 `json:"nome"`
	Nascimento     string                 `json:"nascimento"` // "YYYY-MM-DD"
	Telefone       string                 `json:"telefone"`
	Email          string                 `json:"email"`
	HorariosTreino []models.HorarioTreino `json:"horariosTreino"`
	Status         string                 `json:"status"`
	DataMatricula  string                 `json:"dataMatricula"` // vazio = hoje
	CorPadrao      string                 `json:"corPadrao"`
	Mensalidade    float64                `json:"mensalidade"`
}

type AlunoResponse struct {
	ID             uint                   `json:"id"`
	Nome           string                 `json:"nome"`
	Nascimento     string                 `json:"nascimento"`
	Telefone       string                 `json:"telefone"`
	Email          string                 `json:"email"`
	DiasTreino     []string               `json:"diasTreino"`
	HorariosTreino []models.HorarioTreino `json:"horariosTreino"`
	Status         string                 `json:"status"`
	DataMatricula  string                 `json:"dataMatricula"`
	CorPadrao      string                 `json:"corPadrao"`
	Mensalidade    float64                `json:"mensalidade"`
}

func toAlunoResponse(a models.Aluno) AlunoResponse {
	horarios := a.HorariosTreino
	if horarios == nil {
		horarios = []models.HorarioTreino{}
	}
	return AlunoResponse{
		ID:             a.ID,
		Nome:           a.Nome,
		Nascimento:     a.Nascimento,
		Telefone:       a.Telefone,
		Email:          a.Email,
		DiasTreino:     a.DiasTreino(),
		HorariosTreino: horarios,
		Status:         string(a.Status),
		DataMatricula:  a.DataMatricula,
		CorPadrao:      a.CorPadrao,
		Mensalidade:    a.Mensalidade,
	}
}

func validarAluno(body *AlunoRequest) error {
	if strings.TrimSpace(body.Nome) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nome é obrigatório")
	}
	if strings.TrimSpace(body.Email) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "E-mail é obrigatório")
	}
	if body.Mensalidade < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Mensalidade não pode ser negativa")
	}
	if body.Nascimento != "" {
		if _, err := datas.ParseLocal(body.Nascimento); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de nascimento inválida, use 'YYYY-MM-DD'")
		}
	}
	if body.DataMatricula != "" {
		if _, err := datas.ParseLocal(body.DataMatricula); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de matrícula inválida, use 'YYYY-MM-DD'")
		}
	}
	return nil
}

// e-mail é único entre os alunos; a checagem explícita dá uma mensagem
// específica em vez do erro genérico do índice único
func emailJaExiste(email string, ignorarID uint) (bool, error) {
	var count int64
	q := database.DB.Model(&models.Aluno{}).Where("email = ?", email)
	if ignorarID > 0 {
		q = q.Where("id <> ?", ignorarID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// -------------------------------------------------
// GET /api/alunos
// -------------------------------------------------
func ListAlunosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var alunos []models.Aluno
		if err := database.DB.Order("nome").Find(&alunos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alunos não puderam ser listados")
		}

		resp := make([]AlunoResponse, 0, len(alunos))
		for _, a := range alunos {
			resp = append(resp, toAlunoResponse(a))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/alunos/:id
// -------------------------------------------------
func GetAlunoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var aluno models.Aluno
		if err := database.DB.First(&aluno, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
		}
		return c.JSON(toAlunoResponse(aluno))
	}
}

// -------------------------------------------------
// POST /api/alunos
// -------------------------------------------------
func CreateAlunoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AlunoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validarAluno(&body); err != nil {
			return err
		}

		existe, err := emailJaExiste(body.Email, 0)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aluno não pôde ser criado")
		}
		if existe {
			return fiber.NewError(fiber.StatusConflict, "Já existe um aluno com este e-mail")
		}

		matricula := body.DataMatricula
		if matricula == "" {
			matricula = datas.Hoje()
		}
		status := models.AlunoAtivo
		if body.Status != "" {
			status = models.AlunoStatus(body.Status)
		}
		cor := body.CorPadrao
		if cor == "" {
			cor = "#4CAF50"
		}

		aluno := models.Aluno{
			Nome:           body.Nome,
			Nascimento:     body.Nascimento,
			Telefone:       body.Telefone,
			Email:          body.Email,
			HorariosTreino: body.HorariosTreino,
			Status:         status,
			DataMatricula:  matricula,
			CorPadrao:      cor,
			Mensalidade:    body.Mensalidade,
		}
		if err := database.DB.Create(&aluno).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aluno não pôde ser criado")
		}

		return c.Status(fiber.StatusCreated).JSON(toAlunoResponse(aluno))
	}
}

// -------------------------------------------------
// PUT /api/alunos/:id
// -------------------------------------------------
func UpdateAlunoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var body AlunoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validarAluno(&body); err != nil {
			return err
		}

		var aluno models.Aluno
		if err := database.DB.First(&aluno, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
		}

		existe, err := emailJaExiste(body.Email, aluno.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aluno não pôde ser atualizado")
		}
		if existe {
			return fiber.NewError(fiber.StatusConflict, "Já existe um aluno com este e-mail")
		}

		aluno.Nome = body.Nome
		aluno.Nascimento = body.Nascimento
		aluno.Telefone = body.Telefone
		aluno.Email = body.Email
		aluno.HorariosTreino = body.HorariosTreino
		if body.Status != "" {
			aluno.Status = models.AlunoStatus(body.Status)
		}
		if body.DataMatricula != "" {
			aluno.DataMatricula = body.DataMatricula
		}
		if body.CorPadrao != "" {
			aluno.CorPadrao = body.CorPadrao
		}
		aluno.Mensalidade = body.Mensalidade

		if err := database.DB.Save(&aluno).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aluno não pôde ser atualizado")
		}
		return c.JSON(toAlunoResponse(aluno))
	}
}

// -------------------------------------------------
// DELETE /api/alunos/:id
// -------------------------------------------------
func DeleteAlunoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		res := database.DB.Delete(&models.Aluno{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aluno não pôde ser excluído")
		}
		return c.JSON(fiber.Map{"deletedId": id, "changes": res.RowsAffected})
	}
}
