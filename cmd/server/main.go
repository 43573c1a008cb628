package main

import (
	"context"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/ponyexpress/backend/internal/auth"
	"github.com/ponyexpress/backend/internal/server"
	"github.com/ponyexpress/backend/internal/storage"
	"go.uber.org/zap"
)

type appConfig struct {
	LogMode string `env:"LOG_MODE" envDefault:"development"`
	Server  server.EnvConfig
	Auth    auth.EnvConfig
	Storage storage.Config
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := appConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Cannot parse env config: %v", err)
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("zap logger: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Application is starting")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.New(ctx, sugar, cfg.Storage, storage.ConnectionTimeout(30*time.Second))
	if err != nil {
		cancel()
		sugar.Fatalf("Cannot create Store instance: %v", err)
	}

	err = store.Migrate(ctx)
	cancel()
	if err != nil {
		sugar.Fatalf("Cannot migrate database: %v", err)
	}

	hasher, err := auth.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		sugar.Fatalf("Cannot create password hasher: %v", err)
	}
	tokens := auth.NewTokens(cfg.Auth.JWTKey)

	serverOpts := []server.Option{
		server.WithEnvConfig(cfg.Server),
		server.RegisterAfterShutdown(func() {
			sugar.Info("Closing store")
			store.Close()
			sugar.Info("Store is closed")
		}),
	}

	srv, err := server.NewServer(sugar, store, hasher, tokens, serverOpts...)
	if err != nil {
		sugar.Fatalf("Cannot create Server instance: %v", err)
	}

	if err := srv.Start(); err != nil {
		sugar.Fatalf("Cannot start http srv: %v", err)
	}
}
