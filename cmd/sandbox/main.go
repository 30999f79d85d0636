package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/events"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

// Sandbox backend serving the shipping quote, order and payment contracts.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.ValidateSandbox())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)

	var (
		orderRepo service.OrderRepo
		txManager trm.Manager
	)
	switch conf.Sandbox.Storage {
	case config.StoragePostgres:
		db, err := postgres.New(ctx, logger, conf.Postgres, postgres.DefaultConnectRetry)
		panicIfErr("failed to connect to db", err)
		defer db.Close()

		orderRepo = repo.NewPostgresRepo(db)
		txManager = trm.NewManager(db)
	default:
		memRepo := repo.NewMemoryRepo(repo.SandboxCatalog())
		orderRepo = memRepo
		txManager = memRepo
		logger.Info("using in-memory storage")
	}

	var publisher service.EventPublisher = events.NopPublisher{}
	if conf.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(logger, conf.Kafka)
		application.SetClosers(kafkaPublisher)
		publisher = kafkaPublisher
	}

	orderCache := cache.NewLRUCache[entities.Order](conf.Sandbox.OrderCacheSize, conf.Sandbox.OrderCacheTTL)

	pricingService := service.NewPricingService(logger, orderRepo, service.PricingParams{
		FreeShippingThreshold: conf.Sandbox.FreeShippingThreshold,
		CODFee:                conf.Sandbox.CODFee,
		Currency:              money.EUR,
	})

	orderParams := service.DefaultOrderParams()
	orderParams.TaxRate = conf.Sandbox.TaxRate
	orderParams.FreeShippingThreshold = conf.Sandbox.FreeShippingThreshold
	orderService := service.NewOrderService(logger, txManager, orderRepo, pricingService, publisher, orderCache, orderParams)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, pricingService, orderService)

	application.SetHTTPHandlers(httpHandler)
	application.SetStarters(janitor{cache: orderCache})

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type janitorCache interface {
	StartJanitor(ctx context.Context)
}

type janitor struct {
	cache janitorCache
}

func (j janitor) Start(ctx context.Context) error {
	j.cache.StartJanitor(ctx)
	return nil
}
