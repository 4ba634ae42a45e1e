package main

import (
	"context"
	"log"

	"github.com/redsocial/redsocial-cli/internal/client/cli"
	"github.com/redsocial/redsocial-cli/internal/client/config"
	"github.com/redsocial/redsocial-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
