package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"storefront/model"
)

const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status.changed"
)

// Producer publishes order lifecycle events.
type Producer struct {
	producer sarama.SyncProducer
	logger   zerolog.Logger
}

// NewProducer connects to the broker, waiting for it to come up the way the
// rest of the stack does in compose environments.
func NewProducer(broker string, logger zerolog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error

	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			logger.Info().Str("broker", broker).Msg("kafka producer initialized")
			return &Producer{producer: producer, logger: logger}, nil
		}
		logger.Warn().Err(err).Msgf("waiting for kafka... (%d/10)", i)
		time.Sleep(5 * time.Second)
	}
	return nil, fmt.Errorf("kafka producer: %w", err)
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) OrderCreated(order *model.Order) {
	p.publish(TopicOrderCreated, map[string]any{
		"event_type": TopicOrderCreated,
		"data": map[string]any{
			"tracking_id": order.TrackingID.String(),
			"city":        order.City,
			"total_price": order.TotalPrice,
			"item_count":  len(order.Items),
			"created_at":  order.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (p *Producer) OrderStatusChanged(order *model.Order) {
	p.publish(TopicOrderStatusChanged, map[string]any{
		"event_type": TopicOrderStatusChanged,
		"data": map[string]any{
			"tracking_id": order.TrackingID.String(),
			"status":      order.Status,
			"updated_at":  order.UpdatedAt.Format(time.RFC3339),
		},
	})
}

func (p *Producer) publish(topic string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Str("topic", topic).Msg("failed to marshal event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.logger.Error().Err(err).Str("topic", topic).Msg("failed to send event")
		return
	}
	p.logger.Info().Str("topic", topic).RawJSON("event", data).Msg("published event")
}
