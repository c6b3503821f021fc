package main

import (
	"log"
	"strings"

	"academia-backend/internal/agenda"
	"academia-backend/internal/alunos"
	"academia-backend/internal/config"
	"academia-backend/internal/dashboard"
	"academia-backend/internal/database"
	"academia-backend/internal/datas"
	"academia-backend/internal/faturamento"
	"academia-backend/internal/financeiro"
	"academia-backend/internal/historicos"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	// o fuso é regra de negócio (a data "de hoje" é a da academia),
	// nunca o fuso da máquina onde o processo roda
	if err := datas.Init(cfg.Timezone); err != nil {
		log.Fatalf("Fuso horário inválido: %v", err)
	}

	database.Init(cfg)
	defer database.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Alunos
	api.Get("/alunos", alunos.ListAlunosHandler())
	api.Post("/alunos", alunos.CreateAlunoHandler())
	api.Get("/alunos/:id", alunos.GetAlunoHandler())
	api.Put("/alunos/:id", alunos.UpdateAlunoHandler())
	api.Delete("/alunos/:id", alunos.DeleteAlunoHandler())

	// Agenda de treinos
	api.Post("/alunos/:id/agenda", agenda.AtribuirHorarioHandler())
	api.Put("/alunos/:id/agenda", agenda.MoverHorarioHandler())
	api.Delete("/alunos/:id/agenda/:dia", agenda.RemoverHorarioHandler())

	// Caixa
	api.Get("/transacoes", financeiro.ListTransacoesHandler())
	api.Post("/transacoes", financeiro.CreateTransacaoHandler())
	api.Put("/transacoes/:id", financeiro.UpdateTransacaoHandler())
	api.Delete("/transacoes/:id", financeiro.DeleteTransacaoHandler())
	api.Delete("/transacoes", financeiro.ClearTransacoesHandler())

	// Faturas
	api.Get("/faturas", faturamento.ListFaturasHandler())
	api.Post("/faturas", faturamento.CreateFaturaHandler())
	api.Post("/faturas/gerar-mensalidades", faturamento.GerarMensalidadesHandler())
	api.Post("/faturas/parcelamentos", faturamento.CriarParcelasHandler())
	api.Post("/faturas/:id/pagar", faturamento.MarcarPagaHandler())
	api.Put("/faturas/:id", faturamento.UpdateFaturaHandler())
	api.Delete("/faturas/:id", faturamento.DeleteFaturaHandler())
	api.Delete("/faturas", faturamento.ClearFaturasHandler())

	// Históricos de medidas
	api.Get("/historicos", historicos.ListHistoricosHandler())
	api.Post("/historicos", historicos.CreateHistoricoHandler())
	api.Get("/alunos/:id/historicos", historicos.ListHistoricosByAlunoHandler())
	api.Put("/historicos/:id", historicos.UpdateHistoricoHandler())
	api.Delete("/historicos/:id", historicos.DeleteHistoricoHandler())

	// Dashboard
	api.Get("/dashboard/resumo", dashboard.ResumoHandler())
	api.Get("/dashboard/treinos-do-dia", dashboard.TreinosDoDiaHandler())
	api.Get("/dashboard/estatisticas-semana", dashboard.EstatisticasSemanaHandler())

	// Utilidades de data
	api.Get("/utils/hoje", datas.HojeHandler())
	api.Get("/utils/formatar-data", datas.FormatarDataHandler())
	api.Get("/utils/idade", datas.IdadeHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
