package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mnishanth02/navodhai-ecom-sub000/internal/api/http"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/http/handlers"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/config"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/mail"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/observability"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/persistence"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/service"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	tokenRepo := repository.NewVerificationTokenRepository(pool)
	storeRepo := repository.NewStoreRepository(pool)
	billboardRepo := repository.NewBillboardRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	sizeRepo := repository.NewSizeRepository(pool)
	colorRepo := repository.NewColorRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	tokenService := service.NewTokenService(cfg.Auth, tokenRepo)
	throttle := auth.NewSigninThrottle(redis.Client, cfg.Auth.SigninMaxFailures, cfg.Auth.SigninLockout())

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		AccountRepo: accountRepo,
		TxRunner:    repository.NewTxRunner(pool),
		TokenSvc:    tokenService,
		Throttle:    throttle,
		Dispatcher:  dispatcher,
	})
	storeService := service.NewStoreService(storeRepo)
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		BillboardRepo: billboardRepo,
		CategoryRepo:  categoryRepo,
		SizeRepo:      sizeRepo,
		ColorRepo:     colorRepo,
		ProductRepo:   productRepo,
	})
	orderService := service.NewOrderService(orderRepo, productRepo, dispatcher)

	mailer := mail.NewSMTPMailer(cfg.Mail, cfg.App.BaseURL, logger)
	notificationService := service.NewNotificationService(dispatcher, mailer, tokenService, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	storeGuard := auth.NewStoreGuard(storeRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Stores:         handlers.NewStoresHandler(storeService),
		Billboards:     handlers.NewBillboardsHandler(catalogService),
		Categories:     handlers.NewCategoriesHandler(catalogService),
		Sizes:          handlers.NewSizesHandler(catalogService),
		Colors:         handlers.NewColorsHandler(catalogService),
		Products:       handlers.NewProductsHandler(catalogService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: authMiddleware,
		StoreGuard:     storeGuard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
