package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	cartsmemory "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/memory"
	cartsobs "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/observability"
	cartspostgres "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/persistence/postgres"
	cartsproviders "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/providers"
	cartsapp "github.com/hungryhub/food-order-api/internal/domains/carts/application"
	cartsports "github.com/hungryhub/food-order-api/internal/domains/carts/ports"

	menusmemory "github.com/hungryhub/food-order-api/internal/domains/menus/adapters/memory"
	menuspostgres "github.com/hungryhub/food-order-api/internal/domains/menus/adapters/persistence/postgres"
	menusapp "github.com/hungryhub/food-order-api/internal/domains/menus/application"
	menusports "github.com/hungryhub/food-order-api/internal/domains/menus/ports"

	ordersmemory "github.com/hungryhub/food-order-api/internal/domains/orders/adapters/memory"
	orderspostgres "github.com/hungryhub/food-order-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/hungryhub/food-order-api/internal/domains/orders/application"
	ordersports "github.com/hungryhub/food-order-api/internal/domains/orders/ports"

	usersclient "github.com/hungryhub/food-order-api/internal/clients/http/users"
	"github.com/hungryhub/food-order-api/internal/platform/migrations"
	platformobservability "github.com/hungryhub/food-order-api/internal/platform/observability"
	platformpostgres "github.com/hungryhub/food-order-api/internal/platform/postgres"
	transporthttp "github.com/hungryhub/food-order-api/internal/transport/http"
)

// Run boots the food ordering HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "food-order-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

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

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil && cfg.RunMigrations {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	menuRepo := buildMenuRepository(db, logger)
	cartRepo := buildCartRepository(db, logger)
	orderRepo := buildOrderRepository(db, logger)

	menuService := menusapp.NewService(menuRepo)
	orderService := ordersapp.NewService(orderRepo)

	catalog := cartsproviders.NewMenuCatalog(menuRepo)
	users := buildUserProvider(cfg, logger)
	coreCartService := cartsapp.NewService(
		cartRepo,
		orderRepo,
		catalog,
		catalog,
		users,
		cartsapp.WithRetryConfig(cfg.UserLookup),
	)
	var cartService cartsports.Service = cartsobs.New(
		coreCartService,
		cartsobs.WithLogger(logger),
		cartsobs.WithTracer(instruments.Tracer("internal.carts.application")),
		cartsobs.WithMeter(instruments.Meter("internal.carts.application")),
	)

	handlers := transporthttp.NewHandlers(cartService, menuService, orderService)
	router := transporthttp.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("food ordering API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("food ordering API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildUserProvider(cfg Config, logger *slog.Logger) cartsports.UserProvider {
	if cfg.UserServiceURL == "" {
		logger.Warn("USER_SERVICE_URL not set, accepting any non-blank user id")
		return cartsproviders.NewUserDirectory()
	}
	client, err := usersclient.NewClient(cfg.UserServiceURL)
	if err != nil {
		logger.Warn("invalid user service URL, accepting any non-blank user id", slog.String("error", err.Error()))
		return cartsproviders.NewUserDirectory()
	}
	logger.Info("user validation configured with remote user service", slog.String("url", cfg.UserServiceURL))
	return client
}

func buildMenuRepository(db *gorm.DB, logger *slog.Logger) menusports.Repository {
	if db == nil {
		return menusmemory.NewRepository()
	}
	logger.Info("menu repository configured with postgres")
	return menuspostgres.NewRepository(db)
}

func buildCartRepository(db *gorm.DB, logger *slog.Logger) cartsports.Repository {
	if db == nil {
		return cartsmemory.NewRepository()
	}
	logger.Info("cart repository configured with postgres")
	return cartspostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}
