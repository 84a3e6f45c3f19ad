package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"railbook/internal/booking"
	"railbook/internal/booking/confirm"
	"railbook/internal/booking/handler"
	"railbook/internal/platform/config"
	"railbook/internal/platform/httpserver"
	"railbook/internal/platform/logger"
	"railbook/internal/platform/metrics"
	platformredis "railbook/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/booking.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		log.Error("session store init failed", "backend", cfg.StoreBackend, "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	var publisher confirm.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := confirm.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ConfirmTopic)
		if err != nil {
			log.Error("kafka publisher init failed", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		publisher = confirm.NewLogPublisher(log)
	}

	m := metrics.New()
	service := booking.NewService(store, publisher, log, m)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	handler.New(service, log, m).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting railbook", "addr", cfg.Addr, "store", cfg.StoreBackend)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}

// newStore builds the configured session draft store and a cleanup func for
// whatever connection it holds.
func newStore(ctx context.Context, cfg config.Server) (booking.Store, func(), error) {
	switch cfg.StoreBackend {
	case "memory", "":
		return booking.NewInMemoryStore(), func() {}, nil
	case "redis":
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, errors.New("redis backend selected but RAILBOOK_REDIS_URL is empty")
		}
		store := booking.NewRedisStore(client.Client, booking.WithDraftTTL(cfg.DraftTTL))
		return store, func() { _ = client.Close() }, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store := booking.NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	default:
		return nil, nil, errors.New("unknown store backend: " + cfg.StoreBackend)
	}
}
