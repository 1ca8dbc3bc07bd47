package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherly/internal/config"
	"gatherly/internal/consumers"
	"gatherly/internal/database"
	"gatherly/internal/logger"
	"gatherly/internal/messaging"
	"gatherly/internal/repository"
	"gatherly/internal/search"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	// Unlike the API, the workers exist to drain the stream; no connection
	// means nothing to do.
	natsCfg := cfg.NATS
	natsCfg.ClientID = natsCfg.ClientID + "-worker"
	natsClient, err := messaging.NewNATSClient(natsCfg)
	if err != nil {
		logger.Fatal("Failed to connect to NATS Streaming", "error", err)
	}
	defer natsClient.Close()

	var searchClient *search.Client
	if cfg.Elasticsearch.URL != "" {
		searchClient, err = search.NewClient(cfg.Elasticsearch)
		if err != nil {
			logger.Get().Warn("Elasticsearch unavailable, index sync disabled", "error", err)
			searchClient = nil
		}
	}

	repos := repository.NewRepositories(db)

	service := consumers.NewService(natsClient, searchClient, repos.Events)
	if err := service.Start(); err != nil {
		logger.Fatal("Failed to start consumers", "error", err)
	}

	reminder := consumers.NewPaymentReminderJob(repos.Payments, cfg.PaymentReminderAge, time.Hour)
	reminder.Start()

	logger.Get().Info("Consumers started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("Shutting down consumers...")
	reminder.Stop()
	service.Stop()
	logger.Get().Info("Consumers stopped")
}
