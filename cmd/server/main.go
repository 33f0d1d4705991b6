package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/engineering-bank/backend/cmd/httpserver"
	"github.com/engineering-bank/backend/internal/accountrepo"
	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/internal/middleware"
	"github.com/engineering-bank/backend/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	store, err := keyvalue.Open(config.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open data dir")
	}

	if err := seedDemoAccount(logger.WithContext(context.Background()), store); err != nil {
		logger.Fatal().Err(err).Msg("cannot seed demo account")
	}

	server, err := httpserver.New(store, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

// seedDemoAccount bootstraps an empty directory with the built-in demo
// account so a fresh deployment is immediately usable.
func seedDemoAccount(ctx context.Context, store *keyvalue.Store) error {
	repo := accountrepo.NewRepoKV(store)

	accounts, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if len(accounts) > 0 {
		return nil
	}

	_, err = repo.Create(ctx, domain.Account{
		ID:        "1",
		Username:  "jaya",
		Password:  "ntr",
		Email:     "jaya@example.com",
		Balance:   "10000",
		CreatedAt: time.Now().UTC(),
	})

	if errors.Is(err, domain.ErrUsernameAlreadyExists) {
		return nil
	}

	return err
}
