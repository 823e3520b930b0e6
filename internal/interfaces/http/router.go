package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jportela/almoxarifado-api/internal/application/almox"
	"github.com/jportela/almoxarifado-api/internal/application/analytics"
	"github.com/jportela/almoxarifado-api/internal/application/auth"
	"github.com/jportela/almoxarifado-api/internal/application/report"
	"github.com/jportela/almoxarifado-api/internal/application/sync"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ItemUC      *almox.ItemUseCase
	MovementUC  *almox.MovementUseCase
	SyncUC      *sync.UseCase
	ReportUC    *report.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de itens
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/import", itemHandler.Import)
	items.Get("/", itemHandler.Search)
	items.Delete("/", itemHandler.ClearAll)
	items.Get("/:id/stock", itemHandler.Stock)
	items.Get("/:id/history", itemHandler.History)

	// Movimentações
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Delete("/:id", movementHandler.Delete)

	// Sincronização com a planilha remota
	syncHandler := NewSyncHandler(deps.SyncUC)
	protected.Post("/sync", syncHandler.Run)

	// Relatórios
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements.xlsx", reportHandler.MovementsXLSX)
	reports.Get("/movements.pdf", reportHandler.MovementsPDF)

	// Dashboard de valorização
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
}
