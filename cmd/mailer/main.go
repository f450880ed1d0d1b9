// Command mailer consumes auth e-mail events from RabbitMQ and delivers them
// over SMTP. Without MAIL_SMTP_HOST it logs each message instead.
//
// Requires BROKER_URL. SIGINT and SIGTERM stop consumption.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
	"github.com/heartmarshall/clientforge-backend/internal/app"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if !cfg.Broker.Enabled() {
		logger.Error("BROKER_URL is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := mailer.NewHandler(mailer.NewSender(cfg.Mail, logger), logger)
	consumer := broker.NewConsumer(cfg.Broker.URL, cfg.Broker.MailQueue, cfg.Broker.ConsumerID, logger)

	logger.Info("mailer starting",
		slog.String("version", app.BuildVersion()),
		slog.String("queue", cfg.Broker.MailQueue),
		slog.Bool("smtp", cfg.Mail.SMTPHost != ""),
	)

	if err := consumer.Run(ctx, handler.Handle); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mailer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mailer stopped")
}
