package main

import (
	"context"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/joho/godotenv"
	"github.com/myrjola/findmoney/internal/envstruct"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/logging"
	"github.com/myrjola/findmoney/internal/pprofserver"
	"github.com/myrjola/findmoney/internal/session"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	games          *session.Store
	metrics        *metrics
	templates      *template.Template
}

type config struct {
	// Addr is the address the server listens on. Port 0 picks a free port.
	Addr string `env:"FINDMONEY_ADDR" envDefault:"localhost:4000"`
	// MaxGames bounds how many games are kept in memory. Zero means no limit.
	MaxGames int `env:"FINDMONEY_MAX_GAMES" envDefault:"1000"`
	// PprofAddr is where the profiling endpoints are served. Empty disables them.
	PprofAddr string `env:"FINDMONEY_PPROF_ADDR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cfg config
		err error
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PprofAddr != "" {
		if _, err = pprofserver.Start(ctx, logger, cfg.PprofAddr); err != nil {
			return errors.Wrap(err, "start pprof server")
		}
	}

	sessionManager := scs.New()
	sessionManager.Store = memstore.NewWithCleanupInterval(time.Hour)
	sessionManager.Lifetime = 12 * time.Hour //nolint:mnd // an evening of play
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	games := session.NewStore(logger, session.WithMaxGames(cfg.MaxGames))
	// A game idle for a whole session lifetime has outlived its session.
	go games.Cleanup(ctx, time.Hour, sessionManager.Lifetime)

	var templates *template.Template
	if templates, err = parseTemplates(); err != nil {
		return errors.Wrap(err, "parse templates")
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		games:          games,
		metrics:        newMetrics(games),
		templates:      templates,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	})))
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failure loading .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
