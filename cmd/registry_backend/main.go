package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/parishbooks/parish_registry_app/internal/adapters/database/pgsql"
	"github.com/parishbooks/parish_registry_app/internal/adapters/notification"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/core/services"
	"github.com/parishbooks/parish_registry_app/internal/handlers"
	"github.com/parishbooks/parish_registry_app/internal/metrics"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
	"github.com/parishbooks/parish_registry_app/pkg/config"
	"github.com/parishbooks/parish_registry_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		os.Exit(1)
	}

	// Notification sink; nil when REDIS_URL is not configured.
	var notifier *notification.RedisNotifier
	notifier, err = notification.NewRedisNotifier(context.Background(), cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to connect to notification sink", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if notifier != nil {
		defer notifier.Close()
	}

	store := pgsql.NewDocumentStore(dbPool)
	repos := portsrepo.RepositoryProvider{
		RecordRepo:   pgsql.NewRecordRepository(store),
		DecreeRepo:   pgsql.NewDecreeRepository(store),
		ConceptRepo:  pgsql.NewConceptRepository(store),
		TemplateRepo: pgsql.NewTemplateRepository(store),
	}

	m := metrics.New()
	container := services.NewServiceContainer(cfg, repos, notifierOrNil(notifier), m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// notifierOrNil avoids handing services a non-nil interface wrapping a nil
// pointer when notifications are not configured.
func notifierOrNil(n *notification.RedisNotifier) portssvc.Notifier {
	if n == nil {
		return nil
	}
	return n
}

func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
