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

	_ "github.com/protecfuego/gestion-api/docs"
	"github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/domain/repository"
	"github.com/protecfuego/gestion-api/internal/infrastructure/memory"
	infrapdf "github.com/protecfuego/gestion-api/internal/infrastructure/pdf"
	"github.com/protecfuego/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/protecfuego/gestion-api/internal/interfaces/http"
	"github.com/protecfuego/gestion-api/pkg/config"
	"github.com/protecfuego/gestion-api/pkg/logger"
	"github.com/protecfuego/gestion-api/pkg/money"
)

// @title           Gestión API - Estados de cuenta
// @version         1.0
// @description     Libro de estados de cuenta: migración de formato legado, saldos y totales, exportación PDF.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var statementRepo repository.AccountStatementRepository
	switch cfg.App.Storage {
	case "memory":
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		statementRepo = memory.NewAccountStatementRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		statementRepo = postgres.NewAccountStatementRepository(pool)
	}

	// PDF: representación gráfica del estado de cuenta
	pdfGenerator := infrapdf.NewMarotoStatementGenerator(
		cfg.Company,
		money.NewFormatter(cfg.PDF.Locale, cfg.PDF.CurrencySymbol),
	)
	statementUC := statement.NewUseCase(statementRepo, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONDecoder:  httpRouter.DecodeJSON,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StatementUC: statementUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		Log:         log,
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
