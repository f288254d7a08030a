package worker

import (
	"PhotoVault/config"
	"PhotoVault/internal/mq"
	"PhotoVault/internal/repo"
	"PhotoVault/model"
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

// RunAuditWorker consumes photo.uploaded events from RabbitMQ and records
// one audit row per upload.
func RunAuditWorker(ctx context.Context) error {
	client, err := mq.Dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}

	prefetch := config.AppConfig.RabbitMQPrefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := client.Channel.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := client.Channel.Consume(
		mq.QueueUploads,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	burst := config.AppConfig.AuditBurst
	if burst <= 0 {
		burst = 1
	}
	rateLimit := config.AppConfig.AuditRate
	var limiter *rate.Limiter
	if rateLimit <= 0 {
		limiter = rate.NewLimiter(rate.Inf, burst)
	} else {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("audit worker: delivery channel closed")
			}
			handleUploadEvent(ctx, limiter, delivery)
		}
	}
}

func handleUploadEvent(ctx context.Context, limiter *rate.Limiter, delivery amqp.Delivery) {
	var event mq.PhotoUploadedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		log.Printf("audit worker: invalid message: %v", err)
		_ = delivery.Ack(false)
		return
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			_ = delivery.Nack(false, true)
			return
		}
	}

	row := &model.UploadEvent{
		PhotoID:    event.PhotoID,
		UserID:     event.UserID,
		StorageKey: event.StorageKey,
		FileSize:   event.FileSize,
		UploadedAt: event.UploadedAt,
	}
	if err := repo.Db.WithContext(ctx).Create(row).Error; err != nil {
		log.Printf("audit worker: record upload event failed: %v", err)
		_ = delivery.Nack(false, true)
		return
	}
	_ = delivery.Ack(false)
}
