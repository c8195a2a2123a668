package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/handler"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var socks = []wire.Item{
	{ItemID: "03fef6ac-1896-4ce8-bd69-b798f85c6e0b", UnitPrice: 99.99},
	{ItemID: "3395a43e-2d88-40de-b95f-e00e1502085b", UnitPrice: 18},
	{ItemID: "510a0d7e-8e83-4193-b483-e27e09ddc34d", UnitPrice: 15},
	{ItemID: "808a2de1-1aaa-4c25-a9b9-6612e8f29a38", UnitPrice: 17.32},
	{ItemID: "819e1fbf-8b7e-4f6d-811f-693534916a8b", UnitPrice: 14},
	{ItemID: "837ab141-399e-4c1f-9abc-bace40296bac", UnitPrice: 11.99},
	{ItemID: "a0a4f044-b040-410d-8ead-4de0446aec7e", UnitPrice: 7.99},
	{ItemID: "d3588630-ad8e-49df-bbd7-3167f7efb246", UnitPrice: 12},
	{ItemID: "zzz4f044-b040-410d-8ead-4de0446aec7e", UnitPrice: 22.99},
}

func randomOrder() handler.NewOrderRequest {
	n := rand.Intn(5) + 1
	items := make([]wire.Item, 0, n)
	for i := 0; i < n; i++ {
		it := socks[rand.Intn(len(socks))]
		it.Quantity = rand.Intn(3) + 1
		items = append(items, it)
	}

	id := rand.Intn(100)
	return handler.NewOrderRequest{
		Customer: wire.Customer{
			ID:        fmt.Sprintf("customer-%02d", id),
			FirstName: "User",
			LastName:  fmt.Sprintf("%02d", id),
			Username:  fmt.Sprintf("user%02d", id),
		},
		Address: wire.Address{
			Number:   fmt.Sprintf("%d", rand.Intn(200)+1),
			Street:   "Whitelees Road",
			City:     "Glasgow",
			Postcode: "G67 3DL",
			Country:  "United Kingdom",
		},
		Card: wire.Card{
			LongNum: fmt.Sprintf("5544154011%06d", rand.Intn(1000000)),
			Expires: "08/29",
			CCV:     fmt.Sprintf("%03d", rand.Intn(1000)),
		},
		Items: items,
	}
}

func submit(ctx context.Context, c *http.Client, url string, order handler.NewOrderRequest) (wire.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return wire.Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return wire.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	correlation.Inject(req.Header, correlation.New(ctx))

	res, err := c.Do(req)
	if err != nil {
		return wire.Order{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusAccepted {
		return wire.Order{}, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var created wire.Order
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return wire.Order{}, err
	}
	return created, nil
}

func main() {
	conf := config.NewLoadgen()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	url := strings.TrimRight(conf.Orders.URL, "/") + "/orders"
	c := &http.Client{Timeout: conf.Orders.Timeout}

	ticker := time.NewTicker(conf.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			created, err := submit(ctx, c, url, randomOrder())
			if err != nil {
				logger.Error("failed to submit order", slog.Any("error", err))
				continue
			}
			logger.Info("order submitted",
				slog.String("order_id", created.OrderID),
				slog.Float64("total", created.Total),
				slog.String("correlation_token", created.CorrelationToken),
			)
		case <-ctx.Done():
			return
		}
	}
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
