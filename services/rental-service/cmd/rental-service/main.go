package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mehedi-hasan-dev/rentora/libs/config"
	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/libs/httpx"
	"github.com/mehedi-hasan-dev/rentora/libs/kafkax"
	otelx "github.com/mehedi-hasan-dev/rentora/libs/otel"
	"github.com/mehedi-hasan-dev/rentora/libs/runtime"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/catalog"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/consumer"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/handlers"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/inbox"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/outbox"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/returns"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/sessions"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/storage"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "rental-service")
	port, err := config.Port("PORT", "8083")
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

	rentalRepo := storage.NewRentalRepository(pool)
	maintenanceRepo := storage.NewMaintenanceRepository(pool)
	cacheRepo := storage.NewCatalogCacheRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	inboxRepo := inbox.NewRepository(pool)

	sessionStore := sessions.NewStore(
		config.String("REDIS_ADDR", "localhost:6379"),
		time.Duration(config.Int("SELECTION_TTL_MINUTES", 30))*time.Minute,
	)
	defer sessionStore.Close()

	provider, err := catalog.NewProvider(config.String("CATALOG_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("catalog provider init failed; using local cache only", "err", err)
		provider = nil
	}

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	returnsWorker := returns.NewWorker(pool, rentalRepo, outboxRepo, logger, returns.WorkerConfig{
		Interval:  time.Duration(config.Int("RETURNS_SWEEP_SECONDS", 60)) * time.Second,
		BatchSize: 100,
	})
	go returnsWorker.Run(ctx)

	startConsumer := func(topic string, handler consumer.Handler) {
		if strings.TrimSpace(topic) == "" {
			return
		}
		eventConsumer := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "rental-service"),
			Topic:   topic,
		}, handler)
		go eventConsumer.Run(ctx)
	}

	startConsumer(config.String("KAFKA_PRODUCT_TOPIC", "catalog.product.updated.v1"), func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			ProductID       string `json:"product_id"`
			Name            string `json:"name"`
			DailyPriceCents int64  `json:"daily_price_cents"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}
		if payload.ProductID == "" {
			logger.Error("missing product_id in event", "topic", msg.Topic)
			return nil
		}
		return cacheRepo.UpsertProduct(ctx, catalog.Product{
			ID:              payload.ProductID,
			Name:            payload.Name,
			DailyPriceCents: payload.DailyPriceCents,
		})
	})

	startConsumer(config.String("KAFKA_ZONE_TOPIC", "catalog.zone.updated.v1"), func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			ZoneID           string `json:"zone_id"`
			Name             string `json:"name"`
			SameDayAvailable bool   `json:"same_day_available"`
			SameDayFeeCents  int64  `json:"same_day_fee_cents"`
			CutoffTime       string `json:"cutoff_time"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}
		if payload.ZoneID == "" {
			logger.Error("missing zone_id in event", "topic", msg.Topic)
			return nil
		}
		return cacheRepo.UpsertZone(ctx, catalog.Zone{
			ID:               payload.ZoneID,
			Name:             payload.Name,
			SameDayAvailable: payload.SameDayAvailable,
			SameDayFeeCents:  payload.SameDayFeeCents,
			CutoffTime:       payload.CutoffTime,
		})
	})

	availabilityHandler := handlers.NewAvailabilityHandler(
		handlers.IntervalSourceFunc(rentalRepo.ListOccupiedIntervals),
		handlers.IntervalSourceFunc(maintenanceRepo.ListBlockingIntervals),
		cacheRepo,
		sessionStore,
		provider,
		logger,
	)
	orderHandler := handlers.NewOrderHandler(rentalRepo, maintenanceRepo, outboxRepo, cacheRepo, provider, logger)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
		sessionStore.ReadyCheck(),
	)
	mux.HandleFunc("/api/v1/public/blocked-dates", availabilityHandler.BlockedDates)
	mux.HandleFunc("/api/v1/public/selection", availabilityHandler.Select)
	mux.HandleFunc("/api/v1/public/quote", availabilityHandler.Quote)
	mux.HandleFunc("/api/v1/public/rentals", orderHandler.Create)
	mux.HandleFunc("/api/v1/rentals", orderHandler.List)
	mux.HandleFunc("/api/v1/rentals/cancel", orderHandler.Cancel)
	mux.HandleFunc("/api/v1/maintenance", maintenanceHandler.Create)
	mux.HandleFunc("/api/v1/maintenance/list", maintenanceHandler.List)
	mux.HandleFunc("/api/v1/maintenance/delete", maintenanceHandler.Delete)

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "rental")
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
