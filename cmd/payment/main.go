package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/app"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/payment"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/postgres"

	"github.com/joho/godotenv"
)

// @title           Payment API
// @version         1.0
// @description     Reference payment authorization service
func main() {
	conf := config.NewPayment()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	svc := payment.NewService(logger, payment.NewAuthorizer(conf.DeclineOver), payment.NewPostgresRepo(db))

	app := app.New(logger, conf.Http, conf.Cors)
	app.SetHTTPHandlers(payment.NewHTTPHandler(logger, svc))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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
