package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	shopserver "github.com/vnstore/go-shop-api-server/go"

	catalogmemory "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/vnstore/go-shop-api-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/vnstore/go-shop-api-server/internal/domains/catalog/application"
	catalogports "github.com/vnstore/go-shop-api-server/internal/domains/catalog/ports"

	cartcatalog "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/memory"
	cartobs "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/observability"
	cartpostgres "github.com/vnstore/go-shop-api-server/internal/domains/cart/adapters/persistence/postgres"
	cartapp "github.com/vnstore/go-shop-api-server/internal/domains/cart/application"
	cartports "github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"

	ordercart "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/cart"
	ordercatalog "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/vnstore/go-shop-api-server/internal/domains/orders/application"
	ordersports "github.com/vnstore/go-shop-api-server/internal/domains/orders/ports"

	"github.com/vnstore/go-shop-api-server/internal/platform/migrations"
	platformobservability "github.com/vnstore/go-shop-api-server/internal/platform/observability"
	platformpostgres "github.com/vnstore/go-shop-api-server/internal/platform/postgres"
)

// Run boots the shop HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "shop-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	repos := buildRepositories(db, logger)

	coreCatalogService := catalogapp.NewService(repos.products, repos.categories)
	catalogService := catalogobs.New(
		coreCatalogService,
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	coreCartService := cartapp.NewService(repos.carts, cartcatalog.NewReader(repos.products))
	cartService := cartobs.New(
		coreCartService,
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	coreOrderService := ordersapp.NewService(
		repos.orders,
		ordercart.NewReader(repos.carts),
		ordercatalog.NewReader(repos.products),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := shopserver.ApiHandleFunctions{
		ProductAPI:  shopserver.NewProductAPI(catalogService),
		CategoryAPI: shopserver.NewCategoryAPI(catalogService),
		CartAPI:     shopserver.NewCartAPI(cartService),
		OrderAPI:    shopserver.NewOrderAPI(orderService, orderWorkflows),
	}

	router := shopserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("shop API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("shop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	products   catalogports.ProductRepository
	categories catalogports.CategoryRepository
	carts      cartports.Repository
	orders     ordersports.Repository
}

func buildRepositories(db *gorm.DB, logger *slog.Logger) repositories {
	if db == nil {
		logger.Warn("repositories configured in-memory")
		return repositories{
			products:   catalogmemory.NewProductRepository(),
			categories: catalogmemory.NewCategoryRepository(),
			carts:      cartmemory.NewRepository(),
			orders:     ordersmemory.NewRepository(),
		}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		products:   catalogpostgres.NewProductRepository(db),
		categories: catalogpostgres.NewCategoryRepository(db),
		carts:      cartpostgres.NewRepository(db),
		orders:     orderspostgres.NewRepository(db),
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
