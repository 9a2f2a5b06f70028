package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"finai/internal/config"
	"finai/internal/database"
	"finai/internal/events"
	"finai/internal/llm"
	"finai/internal/logger"
	"finai/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "finai: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	root, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()
	log := logger.WithComponent(root, logger.ComponentApp)

	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Database.Driver == "sqlite" {
		if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := database.Init(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("openai api_key is empty, chat and receipt parsing will fail")
	}
	completer := llm.NewOpenAIClient(cfg.OpenAI)

	publisher, closePublisher := newPublisher(cfg.AMQP, root)
	defer closePublisher()

	r := router.SetupRouter(cfg, db, router.Deps{
		Completer: completer,
		Publisher: publisher,
		Logger:    root,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("run server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newPublisher connects to the broker when amqp.url is set. Without a broker, or when
// it cannot be reached at startup, notifications are only stored.
func newPublisher(cfg config.AMQPConfig, root zerolog.Logger) (events.Publisher, func()) {
	log := logger.WithComponent(root, logger.ComponentEvents)
	if cfg.URL == "" {
		return events.NopPublisher{}, func() {}
	}
	p, err := events.NewAMQPPublisher(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("amqp unavailable, notifications will not be published")
		return events.NopPublisher{}, func() {}
	}
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("close amqp publisher")
		}
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
