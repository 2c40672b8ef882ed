package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	orderspostgres "github.com/vnstore/go-shop-api-server/internal/domains/orders/adapters/persistence/postgres"
	platformpostgres "github.com/vnstore/go-shop-api-server/internal/platform/postgres"
)

const defaultExpiryHours = 24

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot expire orders")
	}

	cutoff := time.Now().UTC().Add(-expiryFromEnv())
	repo := orderspostgres.NewRepository(db)
	cancelled, err := repo.CancelStale(ctx, cutoff)
	if err != nil {
		log.Fatalf("failed to expire orders: %v", err)
	}
	log.Printf("order expiry completed, cancelled %d stale pending orders", cancelled)
}

func expiryFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("ORDER_EXPIRY_HOURS"))
	if raw == "" {
		return defaultExpiryHours * time.Hour
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return defaultExpiryHours * time.Hour
	}
	return time.Duration(hours) * time.Hour
}
