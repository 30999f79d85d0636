package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event_type"

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	logger *slog.Logger
	writer Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return NewPublisherWithWriter(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(logger *slog.Logger, writer Writer) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("component", "kafka_publisher")),
		writer: writer,
	}
}

type orderEvent struct {
	Type        string       `json:"type"`
	OrderID     int64        `json:"order_id"`
	PublicToken string       `json:"public_token"`
	Status      string       `json:"status"`
	GrandTotal  money.Amount `json:"grand_total"`
	Currency    string       `json:"currency"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// Publish writes the event keyed by order ID, so events of one order stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, ev entities.OrderEvent) error {
	data, err := json.Marshal(orderEvent{
		Type:        string(ev.Type),
		OrderID:     ev.OrderID,
		PublicToken: ev.PublicToken,
		Status:      string(ev.Status),
		GrandTotal:  money.Amount(ev.GrandTotal),
		Currency:    ev.Currency,
		OccurredAt:  ev.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(ev.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		eventsFailed.WithLabelValues(string(ev.Type)).Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues(string(ev.Type)).Inc()
	p.logger.DebugContext(ctx, "event published", slog.String("type", string(ev.Type)), slog.Int64("order_id", ev.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entities.OrderEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
