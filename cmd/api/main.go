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

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/application/operations"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
	"github.com/jhoicas/accounts-api/internal/infrastructure/metrics"
	infraredis "github.com/jhoicas/accounts-api/internal/infrastructure/redis"
	"github.com/jhoicas/accounts-api/internal/infrastructure/storage"
	"github.com/jhoicas/accounts-api/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/accounts-api/internal/interfaces/http"
	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer stores.Close(context.Background())

	// Denylist de logout: Redis si está configurado, si no en memoria (por proceso).
	var denylist repository.TokenDenylist = memory.NewDenylist()
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		denylist = infraredis.NewDenylist(client)
	}

	creds := auth.NewCredentials(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		TTL:        cfg.JWT.TTL(),
		Issuer:     cfg.JWT.Issuer,
		BcryptCost: cfg.JWT.BcryptCost,
	})
	accountUC := usecase.NewAccountUseCase(stores.Accounts, creds)
	userUC := usecase.NewUserUseCase(stores.Users, stores.Accounts)
	authUC := auth.NewAuthUseCase(accountUC, userUC, stores.Accounts, stores.Tx, creds, denylist)
	guard := access.NewGuard(creds, stores.Accounts, denylist)
	svc := operations.NewService(guard, authUC, accountUC, userUC)

	m := metrics.New("accounts_api")
	schema, err := gql.NewSchema(svc, log, m)
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Accounts API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:  schema,
		Log:     log,
		Metrics: m,
		AppName: cfg.App.Name,
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
