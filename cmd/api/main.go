package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jportela/almoxarifado-api/internal/application/almox"
	"github.com/jportela/almoxarifado-api/internal/application/analytics"
	"github.com/jportela/almoxarifado-api/internal/application/auth"
	"github.com/jportela/almoxarifado-api/internal/application/report"
	appsync "github.com/jportela/almoxarifado-api/internal/application/sync"
	infraexcel "github.com/jportela/almoxarifado-api/internal/infrastructure/excel"
	infrapdf "github.com/jportela/almoxarifado-api/internal/infrastructure/pdf"
	"github.com/jportela/almoxarifado-api/internal/infrastructure/postgres"
	infrasheets "github.com/jportela/almoxarifado-api/internal/infrastructure/sheets"
	httpRouter "github.com/jportela/almoxarifado-api/internal/interfaces/http"
	"github.com/jportela/almoxarifado-api/pkg/config"
	"github.com/jportela/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	importer := infraexcel.NewImporter()
	sheetSender := infrasheets.NewWebAppClient(cfg.Sheets)
	if cfg.Sheets.WebAppURL == "" {
		log.Warn().Msg("SHEETS_WEBAPP_URL vazio: sync com a planilha desabilitado")
	}

	itemUC := almox.NewItemUseCase(itemRepo, movRepo, importer)
	movementUC := almox.NewMovementUseCase(itemRepo, movRepo)
	syncUC := appsync.NewUseCase(itemRepo, movRepo, sheetSender, log)
	reportUC := report.NewUseCase(itemRepo, movRepo, infraexcel.NewExporter(), infrapdf.NewMarotoReportGenerator())
	dashboardUC := analytics.NewDashboardUseCase(itemRepo, movRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almoxarifado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		MovementUC:  movementUC,
		SyncUC:      syncUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
