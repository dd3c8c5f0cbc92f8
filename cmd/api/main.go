package main

import (
	"context"
	"log"

	"github.com/hungryhub/food-order-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("food ordering API failed: %v", err)
	}
}
