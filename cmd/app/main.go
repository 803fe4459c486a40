package main

import (
	"context"

	"innkeep/config"
	"innkeep/di"
	"innkeep/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.SyncRunner.Run(ctx)

	app.HTTP.Serve()
}
