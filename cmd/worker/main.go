package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"

	cartmemory "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/memory"
	cartpostgres "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/persistence/postgres"
	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"

	ordercart "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/cart"
	ordercatalog "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/vnstore/go-shop-api-server/internal/domains/orders/application"
	ordersports "github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"

	orderactivities "github.com/vnstore/go-shop-api-server/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/vnstore/go-shop-api-server/internal/durable/temporal/workflows/orders"
	platformobservability "github.com/vnstore/go-shop-api-server/internal/platform/observability"
	platformpostgres "github.com/vnstore/go-shop-api-server/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "shop-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()

	orderService := ordersobs.New(
		buildOrderService(db, logger),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderService(db *gorm.DB, logger *slog.Logger) *ordersapp.Service {
	var (
		orders   ordersports.Repository
		carts    cartports.Repository
		products catalogports.ProductRepository
	)
	if db == nil {
		logger.Warn("worker repositories configured in-memory")
		orders = ordersmemory.NewRepository()
		carts = cartmemory.NewRepository()
		products = catalogmemory.NewProductRepository()
	} else {
		logger.Info("worker repositories configured with postgres")
		orders = orderspostgres.NewRepository(db)
		carts = cartpostgres.NewRepository(db)
		products = catalogpostgres.NewProductRepository(db)
	}
	return ordersapp.NewService(orders, ordercart.NewReader(carts), ordercatalog.NewReader(products))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
