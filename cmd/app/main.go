package main

import (
	"context"
	"log"
	"os"

	"github.com/ivmart/flightbook/config"
	"github.com/ivmart/flightbook/internal/cli"
	"github.com/ivmart/flightbook/internal/repository"
	"github.com/ivmart/flightbook/internal/service/auth"
	"github.com/ivmart/flightbook/internal/service/booking"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	accounts := repository.NewFileAccountRepository(cfg.Storage.Path)
	if err := accounts.Load(ctx); err != nil {
		log.Fatalf("load account store: %v", err)
	}

	authService := auth.NewService(accounts)
	bookingService := booking.NewService(accounts)

	app := cli.New(os.Stdin, os.Stdout, authService, bookingService, accounts)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("save account store: %v", err)
	}
}
