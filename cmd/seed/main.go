package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creativehub/config"
	logs "creativehub/internal/infra/log"
	"creativehub/internal/infra/persistence/mongodb"
	"creativehub/internal/seed"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := logs.NewWithWriter(cfg.Env.Log, os.Stdout)
	if err != nil {
		return err
	}

	client, err := mongodb.Open(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("Failed to disconnect from MongoDB", slog.Any("error", err))
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "failed to ping MongoDB")
	}
	logger.Info("Connected to MongoDB", slog.String("database", cfg.Mongo.Database))

	seeder := seed.New(seed.NewMongoTarget(client.Database(cfg.Mongo.Database)), logger)
	_, err = seeder.Run(ctx, seed.Default(time.Now()))

	return err
}
