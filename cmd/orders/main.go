package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/app"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/client"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/feed"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/guard"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/handler"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/postgres"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/repo"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/saga"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/store"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/cache"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/trm"

	"github.com/joho/godotenv"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type orderStore interface {
	Put(ctx context.Context, order entities.Order) error
	Get(ctx context.Context, orderID string) (entities.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	Subscribe(handler entities.ChangeHandler)
}

// @title           Orders API
// @version         1.0
// @description     Order submission and status
func main() {
	conf := config.NewOrders()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var (
		orders    orderStore
		consumers []app.Consumer
		starters  []app.Starter
	)

	switch conf.Store.Driver {
	case "postgres":
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		orderRepo := repo.NewPostgresRepo(db)
		txManager := trm.NewManager(db)
		orderCache := cache.NewLRUCache[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

		writer := feed.NewWriter(conf.Kafka)
		defer writer.Close()

		consumer := feed.NewConsumer(logger, conf.Kafka)
		relay := feed.NewRelay(logger, txManager, orderRepo, writer, conf.Outbox)

		orders = store.NewOrderStore(logger, txManager, orderRepo, orderCache, consumer)
		consumers = append(consumers, consumer)
		starters = append(starters, orderCache, relay)

	case "memory":
		memory := feed.NewMemory(logger, conf.Store.MemoryWorkers)
		orders = memory
		consumers = append(consumers, memory)
	}

	var claims saga.Guard
	switch conf.Guard.Driver {
	case "redis":
		rdb, err := guard.NewRedisClient(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		defer rdb.Close()
		logger.Info("redis connected")
		claims = guard.NewRedis(rdb, conf.Guard.TTL)
	case "memory":
		claims = guard.NewMemory(conf.Guard.TTL)
	}

	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	engine := saga.New(logger, conf.Saga, orders,
		client.NewPaymentClient(conf.Payment),
		client.NewShippingClient(conf.Shipping),
		claims,
		saga.WithTracerProvider(tp),
	)

	saga.RegisterMetrics()
	feed.RegisterMetrics()
	handler.RegisterMetrics()

	// The engine subscribes before any consumer runs.
	starters = append([]app.Starter{engine}, starters...)

	app := app.New(logger, conf.Http, conf.Cors)

	app.SetHTTPHandlers(handler.NewHTTPHandler(logger, engine, orders))
	app.SetConsumers(consumers...)
	app.SetStarters(starters...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
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
