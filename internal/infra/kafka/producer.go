package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kinovzor/internal/config"
	"kinovzor/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// Review lifecycle event types.
const (
	ReviewSubmitted = "submitted"
	ReviewApproved  = "approved"
	ReviewDeleted   = "deleted"
)

// ReviewEvent is published whenever a review is created, approved or deleted.
// Consumers refresh derived data (search index rating fields) from it; the
// event never carries approval decisions itself.
type ReviewEvent struct {
	Type     string `json:"type"`
	ReviewID int64  `json:"review_id"`
	MovieID  int64  `json:"movie_id"`
	UserID   int64  `json:"user_id"`
}

// InitProducer initializes the Kafka producer.
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendReviewEvent publishes a review lifecycle event. Events for one movie
// share a key so consumers see them in order.
func SendReviewEvent(ctx context.Context, topic string, event *ReviewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("movie-%d", event.MovieID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send review event: %w", err)
	}

	logger.Info("Review event sent",
		zap.String("type", event.Type),
		zap.Int64("review_id", event.ReviewID),
		zap.Int64("movie_id", event.MovieID),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer closes the producer.
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
