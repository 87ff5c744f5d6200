package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tribeworks/loanflow/internal/api"
	"github.com/tribeworks/loanflow/internal/config"
	"github.com/tribeworks/loanflow/internal/process"
	"github.com/tribeworks/loanflow/internal/storage"
	"github.com/tribeworks/loanflow/internal/storage/cache"
	"github.com/tribeworks/loanflow/internal/storage/inmem"
	"github.com/tribeworks/loanflow/internal/storage/postgres"
	"github.com/tribeworks/loanflow/internal/user"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Initialize the storage driver.
	// Without a configured DSN the backend runs on the in-memory driver only.
	log.Info().Msg("initializing the storage driver...")
	var underlying storage.Driver
	if cfg.PostgresDSN != "" {
		underlying = postgres.New(cfg.PostgresDSN)
	} else {
		log.Warn().Msg("no PostgreSQL DSN configured; loan applications will not survive a restart")
		underlying = inmem.New()
	}
	if err := underlying.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	driver := cache.New(underlying)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the caching storage driver")
	}
	defer driver.Close()

	// Seed the demo accounts
	accounts, err := user.DemoAccounts()
	if err != nil {
		log.Fatal().Err(err).Msg("could not prepare the demo accounts")
	}
	for _, account := range accounts {
		if _, err := driver.Users().Create(context.Background(), account); err != nil {
			log.Fatal().Err(err).Str("username", account.Username).Msg("could not seed a demo account")
		}
	}

	// Start up the loan API
	log.Info().Str("listen_address", cfg.APIListenAddress).Msg("starting up the loan API...")
	apis := &api.Service{
		Config:  cfg,
		Storage: driver,
		Engine:  process.New(),
	}
	apiErrs := make(chan error, 1)
	if err := apis.Startup(apiErrs); err != nil {
		log.Fatal().Err(err).Msg("could not start up the loan API")
	}
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the loan API raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the loan API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
