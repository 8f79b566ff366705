package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/adapters/event"
	"github.com/namdhoang/portfolio-hub/adapters/persistence"
	"github.com/namdhoang/portfolio-hub/internal/config"
	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

// The worker tails profile.events and keeps aggregate event counters in
// Redis. Losing a message only skews a counter, so offsets are committed
// as messages are read.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	stats := persistence.NewRedisStats(redisClient)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-stats-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents))

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker shutting down")
				return
			}
			appLogger.Error("failed to read message", err)
			continue
		}

		var ev profile.Event
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Warn("skipping malformed event", zap.Error(err))
			continue
		}

		if err := stats.IncrementEvent(ctx, string(ev.Type)); err != nil {
			appLogger.Error("failed to count event", err, zap.String("type", string(ev.Type)))
			continue
		}

		appLogger.Info("Counted profile event",
			zap.String("type", string(ev.Type)),
			zap.String("profile_id", ev.ProfileID.String()))
	}
}
