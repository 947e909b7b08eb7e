package main

import (
	"context"
	"net/http"
	"time"

	"github.com/mehedi-hasan-dev/rentora/libs/config"
	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/libs/httpx"
	"github.com/mehedi-hasan-dev/rentora/libs/kafkax"
	otelx "github.com/mehedi-hasan-dev/rentora/libs/otel"
	"github.com/mehedi-hasan-dev/rentora/libs/runtime"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/handlers"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/outbox"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "catalog-service")
	port, err := config.Port("PORT", "8082")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := storage.NewRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	if err := startGrpcServer(ctx, logger, pool, repo); err != nil {
		logger.Error("grpc server init failed", "err", err)
	}

	catalogHandler := handlers.NewCatalogHandler(repo, outboxRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/catalog/products", catalogHandler.ListProducts)
	mux.HandleFunc("/api/v1/catalog/products/upsert", catalogHandler.UpsertProduct)
	mux.HandleFunc("/api/v1/catalog/zones", catalogHandler.ListZones)
	mux.HandleFunc("/api/v1/catalog/zones/upsert", catalogHandler.UpsertZone)
	mux.HandleFunc("/api/v1/catalog/zones/same-day", catalogHandler.SameDay)
	mux.HandleFunc("/api/v1/catalog/bundles", catalogHandler.ListBundles)
	mux.HandleFunc("/api/v1/catalog/bundles/upsert", catalogHandler.UpsertBundle)
	mux.HandleFunc("/api/v1/catalog/bundles/quote", catalogHandler.QuoteBundle)

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "catalog")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
