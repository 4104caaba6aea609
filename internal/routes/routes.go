package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bankcore/bankcore/internal/config"
	"github.com/bankcore/bankcore/internal/middleware"
	"github.com/bankcore/bankcore/internal/notification"
	"github.com/bankcore/bankcore/internal/store"
	"github.com/bankcore/bankcore/internal/transaction"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a database
// or cache the service degrades to in-memory backends, which only development
// allows.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var backend store.Store
	if d.DB != nil {
		backend = store.NewPostgresStore(d.DB)
	} else {
		backend = store.NewMemory()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	txService := transaction.NewService(backend, notifier, d.Logger)
	txHandler := transaction.NewHandler(txService)

	api := app.Group("/api/v1")
	RegisterAccountRoutes(api, txHandler)

	return nil
}
