package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bizdays/config"
	"github.com/guttosm/bizdays/internal/api"
	"github.com/guttosm/bizdays/internal/calendar"
	"github.com/guttosm/bizdays/internal/service"
	"github.com/guttosm/bizdays/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the calendar registry with the built-in calendars.
//   - When custom calendars are enabled, connects to PostgreSQL using
//     InitPostgres() and registers every stored calendar as a list calendar.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Built-in calendars are always available
	registry := calendar.DefaultRegistry()

	// Readiness probe pings the DB only when one is open
	var storePing func() error
	cleanup := func() {}

	if cfg.Calendars.CustomEnabled {
		// Connect to PostgreSQL
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}

		if err := registerStoredCalendars(registry, storage.NewCalendarRepository(db)); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to load custom calendars: %w", err)
		}

		storePing = db.Ping
		cleanup = func() {
			_ = db.Close()
		}
	}

	// Initialize service layer (business logic)
	svc := service.NewBusinessDayService(registry)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(storePing)
	healthHandler.Register(router)

	return router, cleanup, nil
}

// registerStoredCalendars loads every DB-defined calendar and registers it
// as a list calendar alongside the built-ins.
func registerStoredCalendars(registry *calendar.Registry, repo storage.CalendarRepository) error {
	infos, err := repo.ListCalendars()
	if err != nil {
		return fmt.Errorf("list calendars: %w", err)
	}
	for _, info := range infos {
		holidays, err := repo.GetHolidays(info.Name)
		if err != nil {
			return fmt.Errorf("load holidays for %s: %w", info.Name, err)
		}
		registry.Register(calendar.NewListCalendar(info.Name, info.Description, holidays))
	}
	return nil
}
