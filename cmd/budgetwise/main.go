package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetwise/internal/amqp"
	"budgetwise/internal/cache"
	"budgetwise/internal/cli"
	apphttp "budgetwise/internal/http"
	"budgetwise/internal/log"
	"budgetwise/internal/store"
	"budgetwise/internal/suggest"
	"budgetwise/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	backendResult := cli.InitBackend(logger, cfg)
	defer backendResult.Cleanup()

	entityStore := store.New(store.NewSynchronizer(backendResult.KV))
	entityStore.Load(context.Background())

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, category suggestions will be unavailable")
	}
	classifier := suggest.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.SuggestModel)
	suggestCache := cache.NewLRU[string](cfg.SuggestCacheSize, cfg.SuggestCacheTTL)
	gateway := suggest.NewGateway(classifier, suggestCache, logger)
	suggester := suggest.NewDebounced(gateway, cfg.SuggestDebounce)

	srv := apphttp.NewServer(":"+cfg.Port, entityStore, suggester)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 15 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	// The reminder scheduler only runs when a broker is configured.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
	} else {
		logger.Info("AMQP disabled, reminder alerts will not be published")
	}

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("Starting budgetwise server",
			"port", cfg.Port,
			"backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if amqpClient != nil {
		scheduler := worker.NewScheduler(entityStore, amqpClient, cfg.ReminderPollInterval, cfg.ReminderLookahead)
		group.Go(func() error {
			if err := scheduler.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
