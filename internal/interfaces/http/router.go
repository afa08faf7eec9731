package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-stock/internal/application/analytics"
	"github.com/jhoicas/control-stock/internal/application/backup"
	"github.com/jhoicas/control-stock/internal/application/catalog"
	"github.com/jhoicas/control-stock/internal/application/inventory"
	"github.com/jhoicas/control-stock/internal/domain/permission"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store            repository.StockStore
	ProductUC        *catalog.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	CountUC          *inventory.CountUseCase
	RestockUC        *inventory.RestockUseCase
	DashboardUC      *analytics.DashboardUseCase
	BackupUC         *backup.UseCase
	RestockPDF       *export.RestockPDFGenerator
	JWTSecret        string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; el
// gate por tipo de movimiento se verifica dentro de los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Ledger de movimientos
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.Store)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.History)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
	api.Get("/sales-history", dashboardHandler.SalesHistory)

	// Reconciliación: conteo físico y reposición
	reconciliation := api.Group("/reconciliation")
	reconciliationHandler := NewReconciliationHandler(deps.CountUC, deps.RestockUC, deps.RestockPDF)
	reconciliation.Get("/count", reconciliationHandler.CountPlan)
	reconciliation.Post("/count", reconciliationHandler.ConfirmCount)
	reconciliation.Get("/restock", reconciliationHandler.RestockPlan)
	reconciliation.Post("/restock", reconciliationHandler.ConfirmRestock)
	reconciliation.Get("/restock/pdf", reconciliationHandler.RestockPDF)

	// Backup (admin-only; el caso de uso además verifica el gate BackupExport)
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup", RequireRole(permission.RoleAdmin), backupHandler.Export)
}
