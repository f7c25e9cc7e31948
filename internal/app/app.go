// Package app wires configuration, storage, services, and the HTTP server
// into the two runnable service variants.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postlog-io/postlog-backend/internal/adapter/postgres"
	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/eventrepo"
	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/mailrepo"
	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/migrations"
	"github.com/postlog-io/postlog-backend/internal/adapter/provider/ses"
	"github.com/postlog-io/postlog-backend/internal/adapter/provider/stdout"
	"github.com/postlog-io/postlog-backend/internal/config"
	"github.com/postlog-io/postlog-backend/internal/service/event"
	"github.com/postlog-io/postlog-backend/internal/service/mail"
	"github.com/postlog-io/postlog-backend/internal/transport/middleware"
	"github.com/postlog-io/postlog-backend/internal/transport/rest"
)

// RunMailService starts the mail service and blocks until ctx is cancelled
// or the server fails.
func RunMailService(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting mail-service",
		slog.String("version", BuildVersion()),
		slog.String("delivery_mode", cfg.Delivery.Mode),
	)

	pool, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	sender, err := newSender(ctx, cfg.Delivery, logger)
	if err != nil {
		return fmt.Errorf("init delivery backend: %w", err)
	}

	repo := mailrepo.New(pool, logger)
	svc := mail.NewService(logger, repo, sender, cfg.Delivery.FromAddress)

	major, minor, rev := VersionParts()
	router := rest.NewMailRouter(
		rest.NewInfoHandler("mail-service", major, minor, rev),
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewMailHandler(svc, logger),
	)

	return serve(ctx, cfg, logger, router)
}

// RunLogService starts the log service and blocks until ctx is cancelled
// or the server fails.
func RunLogService(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting log-service",
		slog.String("version", BuildVersion()),
	)

	pool, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := eventrepo.New(pool, logger)
	svc := event.NewService(logger, repo)

	major, minor, rev := VersionParts()
	router := rest.NewEventRouter(
		rest.NewInfoHandler("log-service", major, minor, rev),
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewEventHandler(svc, logger),
	)

	return serve(ctx, cfg, logger, router)
}

func setupDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, cfg.Database.DSN); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// mailSender matches the delivery interface the mail service consumes.
type mailSender interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}

// newSender picks the delivery backend once at startup.
func newSender(ctx context.Context, cfg config.DeliveryConfig, logger *slog.Logger) (mailSender, error) {
	switch cfg.Mode {
	case config.DeliveryModeSES:
		return ses.New(ctx, cfg.AWSRegion)
	default:
		return stdout.New(logger), nil
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, router http.Handler) error {
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(5 * time.Minute)
		defer rl.Stop()
		mws = append(mws, rl.Limit(cfg.Server.RateLimitPerMinute))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
