package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animal-registry/internal/adapters/auth/jwtauth"
	"animal-registry/internal/adapters/messaging/kafkabus"
	pg "animal-registry/internal/adapters/storage/postgres"
	"animal-registry/internal/adapters/storage/redisstore"
	"animal-registry/internal/config"
	"animal-registry/internal/domain/events"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/router"
)

// @title Animal Registry API
// @version 1.0
// @description Registro de animales y de sus eventos: diálogo de creación, listado filtrado y ordenado por fecha.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	opts := router.Options{
		Logger:   log,
		DraftTTL: cfg.Redis.DraftTTL,
		Catalog:  events.DefaultCatalog().WithOverrides(cfg.Events.Types, cfg.Events.Categories),
	}

	// Sin DB_DSN => in-memory (modo dev)
	if cfg.DB.DSN != "" {
		db, err := pg.Open(ctx, cfg.DB.DSN, pg.PoolOptions{
			MaxOpenConns: cfg.DB.MaxOpenConns,
			MaxIdleConns: cfg.DB.MaxIdleConns,
		})
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres", nil)
	}

	if cfg.Redis.Addr != "" {
		client, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Redis = client
		log.Info("using redis for drafts", map[string]any{"addr": cfg.Redis.Addr})
	}

	if len(cfg.Kafka.Brokers) > 0 {
		pub := kafkabus.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		defer func() {
			if err := pub.Close(); err != nil {
				log.Warn("kafka close", map[string]any{"error": err.Error()})
			}
		}()
		opts.Publisher = pub
		log.Info("publishing events to kafka", map[string]any{"topic": cfg.Kafka.EventsTopic})
	}

	// Sin JWT_SECRET => X-Debug-User-ID (modo dev)
	if cfg.Auth.JWTSecret != "" {
		opts.AuthVerifier = jwtauth.NewVerifier(cfg.Auth.JWTSecret)
	} else {
		log.Warn("JWT_SECRET not set, accepting X-Debug-User-ID", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}
