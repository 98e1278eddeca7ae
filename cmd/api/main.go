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

	"github.com/jhoicas/PhotoCRM-api/internal/application/auth"
	"github.com/jhoicas/PhotoCRM-api/internal/application/documents"
	appsync "github.com/jhoicas/PhotoCRM-api/internal/application/sync"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
	"github.com/jhoicas/PhotoCRM-api/internal/infrastructure/bolt"
	infrapdf "github.com/jhoicas/PhotoCRM-api/internal/infrastructure/pdf"
	"github.com/jhoicas/PhotoCRM-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PhotoCRM-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/PhotoCRM-api/internal/interfaces/http"
	"github.com/jhoicas/PhotoCRM-api/pkg/config"
	"github.com/jhoicas/PhotoCRM-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("cloud", cfg.Store.CloudEnabled).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento local: siempre presente, es el respaldo offline.
	localStore, err := bolt.Open(cfg.Store.BoltPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.BoltPath).Msg("abrir almacenamiento local")
	}
	defer localStore.Close()

	// Nube opcional: PostgreSQL detrás del mismo puerto de documentos.
	var cloudStore repository.DocumentStore
	var authUC *auth.AuthUseCase
	if cfg.Store.CloudEnabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		cloudStore = postgres.NewDocumentRepository(pool)
		authUC = auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	}
	docStore := store.NewTiered(cloudStore, localStore, log)

	customerUC := usecase.NewCustomerUseCase(docStore)
	planUC := usecase.NewPlanUseCase(docStore)
	expenseUC := usecase.NewExpenseUseCase(docStore)
	teamUC := usecase.NewTeamUseCase(docStore)
	settingsUC := usecase.NewSettingsUseCase(docStore)
	dashboardUC := usecase.NewDashboardUseCase(docStore)
	syncUC := appsync.NewUseCase(docStore, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	documentUC := documents.NewUseCase(customerUC, settingsUC, pdfGenerator, log)

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
		Title:    "PhotoCRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		PlanUC:      planUC,
		ExpenseUC:   expenseUC,
		TeamUC:      teamUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		DocumentUC:  documentUC,
		SyncUC:      syncUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	}
	if !cfg.Store.CloudEnabled {
		// Modo local: sin login, todo bajo el usuario fijo del estudio.
		deps.LocalUserID = cfg.Store.LocalUserID
	}
	httpRouter.Router(app, deps)

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
