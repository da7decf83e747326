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

	"github.com/Yashxdev2805/Project-Shop-App/internal/application/auth"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/ledger"
	"github.com/Yashxdev2805/Project-Shop-App/internal/application/report"
	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/repository"
	"github.com/Yashxdev2805/Project-Shop-App/internal/infrastructure/jsonfile"
	infrapdf "github.com/Yashxdev2805/Project-Shop-App/internal/infrastructure/pdf"
	"github.com/Yashxdev2805/Project-Shop-App/internal/infrastructure/postgres"
	httpRouter "github.com/Yashxdev2805/Project-Shop-App/internal/interfaces/http"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/config"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend del snapshot: archivo JSON local o PostgreSQL.
	var snapshotRepo repository.SnapshotRepository
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewSnapshotRepository(pool, cfg.Storage.Key, log)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de snapshots")
		}
		snapshotRepo = repo
	default:
		snapshotRepo = jsonfile.NewSnapshotRepository(cfg.Storage.FilePath, cfg.Storage.Key, log)
	}

	// Reconciliación: corre una sola vez, antes de exponer cualquier operación.
	store, err := ledger.NewReconciler(snapshotRepo, log).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliar estado del ledger")
	}

	// Cierre de día en caliente: deadline de medianoche + poll de seguridad.
	scheduler := ledger.NewScheduler(store, log)
	scheduler.Start()

	authUC, err := auth.New(cfg.Auth, cfg.JWT, log)
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales del operador")
	}
	pdfUC := report.NewPDFUseCase(store, infrapdf.NewMarotoDayCloseGenerator(), cfg.App.Name)

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
		Title:    "Project Shop App API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     store,
		AuthUC:    authUC,
		PDFUC:     pdfUC,
		JWTSecret: cfg.JWT.Secret,
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

	// Primero se cancelan los timers, después se drenan los guardados en vuelo.
	scheduler.Stop()
	store.Flush()

	log.Info().Msg("aplicación detenida")
}
