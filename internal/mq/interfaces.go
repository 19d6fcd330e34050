package mq

import (
	"context"
)

// ProducerInterface publishes tracking events. The HTTP layer depends on
// this so it can run without a broker.
type ProducerInterface interface {
	// SendTrackEvent publishes one view or click
	SendTrackEvent(ctx context.Context, msg *TrackEventMessage) error
	Close() error
}

// ConsumerInterface feeds tracking events into a TrackEventHandler until closed
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}

var (
	_ ProducerInterface = (*Producer)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
