package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"linkhub/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// TrackEventHandler is the handler for tracking messages
type TrackEventHandler func(ctx context.Context, msg *TrackEventMessage) error

// Consumer feeds tracking messages from RocketMQ into a handler
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler TrackEventHandler
	started bool
}

// NewConsumer creates a new RocketMQ push consumer
func NewConsumer(cfg *config.RocketMQConfig, handler TrackEventHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to tracking messages on the topic and starts consuming
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: TrackEventTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume handles one delivered batch. Malformed messages are dropped since a
// retry would never decode them; handler failures are retried.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var event TrackEventMessage
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping malformed track event")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("kind", event.Kind).
			Msg("Processing track event")

		if c.handler != nil {
			if err := c.handler(ctx, &event); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close shuts the consumer down
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
