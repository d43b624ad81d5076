package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-intake/internal/adapters/auth/odin"
	"pet-intake/internal/adapters/capabilities/plansfeatures"
	"pet-intake/internal/adapters/petservice"
	pg "pet-intake/internal/adapters/storage/postgres"
	"pet-intake/internal/config"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		DocsEnabled:        cfg.DocsEnabled,
	}

	// Ledger: Postgres si hay DSN, si no in-memory.
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer func(db *sql.DB) { _ = db.Close() }(db)

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
	}

	// Creador de mascotas: sin URL queda el in-memory del router.
	if cfg.PetServiceURL != "" {
		c, err := petservice.NewClient(petservice.Config{
			BaseURL: cfg.PetServiceURL,
			APIKey:  cfg.PetServiceAPIKey,
			Timeout: cfg.PetServiceTimeout,
		})
		if err != nil {
			return err
		}
		opts.PetCreator = c
	}

	// Identidad: sin Odin => modo dev (X-Debug-User-ID).
	if cfg.OdinBaseURL != "" {
		opts.AuthVerifier = odin.NewVerifier(odin.NewClient(odin.Config{
			BaseURL: cfg.OdinBaseURL,
			APIKey:  cfg.OdinAPIKey,
		}))
	} else {
		log.Warn("ODIN_BASE_URL not set, accepting X-Debug-User-ID (dev mode)", nil)
	}

	if cfg.PlansEnabled() {
		opts.Capabilities = plansfeatures.NewResolver(
			plansfeatures.NewClient(plansfeatures.Config{BaseURL: cfg.PlansBaseURL, APIKey: cfg.PlansAPIKey}),
			cfg.AllowAllCapabilities,
		)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.PetServiceTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
