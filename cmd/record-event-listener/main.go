package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"scholarpress-backend/internal/repo"
	kafkarepo "scholarpress-backend/internal/repo/kafka"
	"scholarpress-backend/pkg/retry"
)

// Слушатель потока событий отправки записей: печатает ленту новых
// книг, статей и датасетов для операционного наблюдения.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Info(".env file not found")
	}
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		log.Fatal("KAFKA_BROKERS is required")
	}

	var eventRepo repo.RecordEvent
	err = retry.Retry(func() error {
		var connErr error
		eventRepo, connErr = kafkarepo.NewRecordEventKafkaRepository(strings.Split(kafkaBrokers, ","))
		return connErr
	})
	if err != nil {
		log.Fatalf("failed to connect to kafka: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	events, err := eventRepo.SubscribeRecordEvents(ctx)
	if err != nil {
		log.Fatalf("failed to subscribe to record events: %v", err)
	}

	log.Info("listening for record events")
	for event := range events {
		log.Infof("%s %s: %s (%q) by user %d at %s",
			event.Kind, event.Type, event.RecordID, event.Title, event.UserID, event.OccurredAt.Format("15:04:05"))
	}
}
