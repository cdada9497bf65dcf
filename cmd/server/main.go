package main

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/config"
	handlerhttp "github.com/e2ee-notes/notevault/internal/handler/http"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/server"
	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notevault-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// The integrity middleware and the clients sign request bodies with
	// the same key.
	utils.InitHasherPool(cfg.App.HashKey)

	handler := handlerhttp.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
