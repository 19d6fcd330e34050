package mq

import (
	"time"

	"linkhub/internal/model"
)

// TrackEventTag is the RocketMQ tag carried by tracking messages
const TrackEventTag = "track_event"

// TrackEventMessage represents a recorded view or click on the wire
type TrackEventMessage struct {
	Kind       string    `json:"kind"`
	LinkID     string    `json:"link_id,omitempty"`
	ClientIP   string    `json:"client_ip"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTrackEventMessage builds the message for a traffic event
func NewTrackEventMessage(event *model.TrafficEvent) *TrackEventMessage {
	return &TrackEventMessage{
		Kind:       string(event.Kind),
		LinkID:     event.LinkID,
		ClientIP:   event.ClientIP,
		UserAgent:  event.UserAgent,
		Referrer:   event.Referrer,
		OccurredAt: event.OccurredAt,
	}
}

// ToTrafficEvent converts the message back into a traffic event
func (m *TrackEventMessage) ToTrafficEvent() *model.TrafficEvent {
	return &model.TrafficEvent{
		Kind:       model.TrafficKind(m.Kind),
		LinkID:     m.LinkID,
		ClientIP:   m.ClientIP,
		UserAgent:  m.UserAgent,
		Referrer:   m.Referrer,
		OccurredAt: m.OccurredAt,
	}
}
