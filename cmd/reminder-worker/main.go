package main

import (
	"context"
	"errors"
	"os"
	"time"

	"budgetwise/internal/amqp"
	"budgetwise/internal/cli"
	"budgetwise/internal/log"
	"budgetwise/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting reminder-worker")

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the reminder worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, nil)

	deliverer := worker.NewDeliverer()
	err = amqpClient.ConsumeReminderDue(ctx, func(msg *amqp.ReminderDueMessage) error {
		return deliverer.HandleReminderDue(ctx, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped with error", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
