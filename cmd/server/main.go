package main

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/handler"
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/mail"
	"github.com/avdeyev/go-signup/internal/server"
	"github.com/avdeyev/go-signup/internal/service"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/avdeyev/go-signup/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-signup-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		// the underlying error may carry the DSN, keep it out of the logs
		log.Fatal().Msg("error initializing database")
	}
	defer storages.Close()

	sender := mail.NewSender(cfg.Mailer, log)

	dispatcher := workers.NewMailDispatcher(sender, log)
	workers.NewWorkers(dispatcher).Run()
	defer dispatcher.Shutdown()

	services := service.NewServices(storages, dispatcher, log)

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
