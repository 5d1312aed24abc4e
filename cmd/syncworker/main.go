package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/siamscreen/stocksync/cmd/syncworker/config"
	"github.com/siamscreen/stocksync/internal/handler"
	"github.com/siamscreen/stocksync/internal/platform/rabbitmq"
	"github.com/siamscreen/stocksync/internal/platform/storage"
	"github.com/siamscreen/stocksync/internal/stockapi"
	"github.com/siamscreen/stocksync/internal/syncer"

	_ "github.com/lib/pq"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	catalog := stockapi.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.StockAPIURL,
		cfg.StockAPIKey,
	)

	snc := syncer.NewSyncer(
		catalog,
		storage.NewPostgres(pgDB),
		cfg.PageSize,
		cfg.StockPageSize,
	)

	han := handler.NewHandler(conn, snc, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	if status, err := snc.Status(ctx); err != nil {
		logger.Warn().
			Err(err).
			Msg("can't read sync status")
	} else {
		logger.Info().
			Int64("totalProducts", status.TotalProducts).
			Int64("stockProducts", status.StockProducts).
			Int64("localProducts", status.LocalProducts).
			Msg("sync status")
	}

	logger.Info().Msg("stock sync worker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
