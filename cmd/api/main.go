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

	"github.com/jhoicas/control-stock/internal/application/analytics"
	"github.com/jhoicas/control-stock/internal/application/backup"
	"github.com/jhoicas/control-stock/internal/application/catalog"
	"github.com/jhoicas/control-stock/internal/application/inventory"
	"github.com/jhoicas/control-stock/internal/infrastructure/export"
	"github.com/jhoicas/control-stock/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/control-stock/internal/interfaces/http"
	"github.com/jhoicas/control-stock/pkg/config"
	"github.com/jhoicas/control-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Agregado en memoria: único escritor del ledger.
	var store *memory.Store
	if cfg.Store.SeedPath != "" {
		store, err = memory.NewFromSeedFile(cfg.Store.SeedPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.SeedPath).Msg("cargar seed")
		}
		snap := store.Snapshot()
		log.Info().
			Int("products", len(snap.Products)).
			Int("movements", len(snap.Movements)).
			Msg("seed cargado")
	} else {
		store = memory.New()
	}

	registerMovementUC := inventory.NewRegisterMovementUseCase(store)
	countUC := inventory.NewCountUseCase(store)
	restockUC := inventory.NewRestockUseCase(store, registerMovementUC)
	productUC := catalog.NewProductUseCase(store)
	dashboardUC := analytics.NewDashboardUseCase(store)
	backupUC := backup.New(store)
	restockPDF := export.NewRestockPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Control de Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:            store,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		CountUC:          countUC,
		RestockUC:        restockUC,
		DashboardUC:      dashboardUC,
		BackupUC:         backupUC,
		RestockPDF:       restockPDF,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
