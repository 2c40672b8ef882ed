package main

import (
	"context"
	"log"

	"github.com/vnstore/go-shop-api-server/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("shop API exited: %v", err)
	}
}
