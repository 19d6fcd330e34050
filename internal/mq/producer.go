package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"linkhub/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes tracking events to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates and starts a RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// SendTrackEvent publishes one tracking event. A nil producer drops it.
func (p *Producer) SendTrackEvent(ctx context.Context, msg *TrackEventMessage) error {
	if p == nil {
		return nil
	}

	m, err := p.buildMessage(msg)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("kind", msg.Kind).
		Str("link_id", msg.LinkID).
		Msg("Track event sent to RocketMQ")

	return nil
}

func (p *Producer) buildMessage(msg *TrackEventMessage) (*primitive.Message, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(p.topic, body)
	m.WithTag(TrackEventTag)
	keys := []string{msg.Kind}
	if msg.LinkID != "" {
		keys = append(keys, msg.LinkID)
	}
	m.WithKeys(keys)
	return m, nil
}

// Close shuts the producer down
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
