package model

import (
	"time"
)

// ViewEvent is one recorded profile page view
type ViewEvent struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	UserAgent string    `json:"userAgent" gorm:"type:varchar(512)"`
	IP        string    `json:"ip" gorm:"type:varchar(64)"`
	Referrer  string    `json:"referrer" gorm:"type:varchar(512)"`
}

// TableName returns the table name for ViewEvent
func (ViewEvent) TableName() string {
	return "view_events"
}

// ClickEvent is one recorded click on a link
type ClickEvent struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	LinkID    string    `json:"linkId" gorm:"type:varchar(36);index:idx_click_link_time;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_click_link_time;index;not null"`
	UserAgent string    `json:"userAgent" gorm:"type:varchar(512)"`
	IP        string    `json:"ip" gorm:"type:varchar(64)"`
	Referrer  string    `json:"referrer" gorm:"type:varchar(512)"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// RequestMeta carries the client metadata attached to a tracking event
type RequestMeta struct {
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
	Referrer  string `json:"referrer"`
}

// TrafficKind tells which tracking call produced a TrafficEvent
type TrafficKind string

const (
	TrafficKindView  TrafficKind = "view"
	TrafficKindClick TrafficKind = "click"
)

// TrafficEvent is the visitor-level view of a recorded view or click
type TrafficEvent struct {
	Kind       TrafficKind `json:"kind"`
	LinkID     string      `json:"linkId,omitempty"`
	ClientIP   string      `json:"ip"`
	UserAgent  string      `json:"userAgent"`
	Referrer   string      `json:"referrer"`
	OccurredAt time.Time   `json:"occurredAt"`
}
