package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	"github.com/fitweek/fitweek/internal/envstruct"
	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/logging"
	"github.com/fitweek/fitweek/internal/nutrition"
	"github.com/fitweek/fitweek/internal/plan"
	"github.com/fitweek/fitweek/internal/points"
	"github.com/fitweek/fitweek/internal/profile"
	"github.com/fitweek/fitweek/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	db             *sqlite.Database
	profileService *profile.Service
	planService    *plan.Service
	foodService    *nutrition.Service
	pointsService  *points.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITWEEK_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITWEEK_SQLITE_URL" envDefault:"./fitweek.sqlite3"`
	// OpenAIAPIKey enables plan generation. Leaving it empty disables the
	// generation endpoint while keeping stored plans readable.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// OpenAIModel overrides the chat model used for plan generation.
	OpenAIModel string `env:"FITWEEK_OPENAI_MODEL" envDefault:""`
	// CORSOrigin is the browser origin allowed to call the API.
	CORSOrigin string `env:"FITWEEK_CORS_ORIGIN" envDefault:"http://localhost:3000"`
	// PointsDebounce is the quiescence window before a recomputed score is persisted.
	PointsDebounce time.Duration `env:"FITWEEK_POINTS_DEBOUNCE" envDefault:"2s"`
	// CatalogHTMLPath optionally extends the exercise catalog from an exported HTML equipment list.
	CatalogHTMLPath string `env:"FITWEEK_CATALOG_HTML" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	catalog := plan.DefaultCatalog()
	if cfg.CatalogHTMLPath != "" {
		if err = importCatalog(ctx, catalog, cfg.CatalogHTMLPath, logger); err != nil {
			return errors.Wrap(err, "import catalog", slog.String("path", cfg.CatalogHTMLPath))
		}
	}

	var generator *plan.Generator
	if cfg.OpenAIAPIKey != "" {
		generator = plan.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, catalog, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelWarn, "no OpenAI API key, plan generation disabled")
	}

	profileService := profile.NewService(db, logger)
	foodService := nutrition.NewService(db, logger)
	pointsService := points.NewService(db, foodService, cfg.PointsDebounce, logger)
	defer pointsService.Flush()

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		db:             db,
		profileService: profileService,
		planService:    plan.NewService(db, profileService, generator, catalog, logger),
		foodService:    foodService,
		pointsService:  pointsService,
	}

	scheduler := cron.New()
	// Shortly past midnight so stale today-scores roll into the totals.
	if err = scheduler.AddFunc("0 5 0 * * *", func() {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), time.Minute)
		defer sweepCancel()
		if sweepErr := pointsService.RolloverSweep(sweepCtx); sweepErr != nil {
			logger.LogAttrs(sweepCtx, slog.LevelError, "rollover sweep failed", errors.SlogError(sweepErr))
		}
	}); err != nil {
		return errors.Wrap(err, "schedule rollover sweep")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes(cfg.CORSOrigin)); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func importCatalog(ctx context.Context, catalog *plan.Catalog, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open catalog document")
	}
	defer f.Close()

	added, err := catalog.ImportHTML(f)
	if err != nil {
		return errors.Wrap(err, "parse catalog document")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "imported catalog entries", slog.Int("added", added))
	return nil
}

func initializeSessionManager(db *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                               //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	// Missing .env is fine in production where real env vars are set.
	_ = godotenv.Load()

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
