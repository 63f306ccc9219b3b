package api

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"

	"github.com/vivekrai1999/shopspy/api/export"
	"github.com/vivekrai1999/shopspy/api/health"
	"github.com/vivekrai1999/shopspy/api/middleware"
	"github.com/vivekrai1999/shopspy/api/presets"
	"github.com/vivekrai1999/shopspy/api/products"
	"github.com/vivekrai1999/shopspy/config"
	"github.com/vivekrai1999/shopspy/database"
	"github.com/vivekrai1999/shopspy/services"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// config
	cfg := config.GetConfig()

	// db is optional; presets are the only persisted data
	var db *database.DB
	if cfg.Database.Enabled && database.Initialized() {
		db = database.GetInstance()
	}

	// services
	sm := services.NewServiceManager(standardLogger, cfg, db)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	newRouterManager(
		products.NewProductRoutesManager(standardLogger, cfg, sm.CatalogService, mw),
		export.NewExportRoutesManager(standardLogger, sm.ExportService, sm.PresetService),
		presets.NewPresetRoutesManager(standardLogger, sm.PresetService),
		health.NewHealthRoutesManager(sm.HealthService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the ShopSpy API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
