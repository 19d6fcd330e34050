package model

import (
	"time"
)

// LinkType is the kind of destination a link points to
type LinkType string

const (
	LinkTypeWebsite LinkType = "website"
	LinkTypeSocial  LinkType = "social"
	LinkTypeEmail   LinkType = "email"
	LinkTypePhone   LinkType = "phone"
)

// Valid reports whether t is one of the known link types
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeWebsite, LinkTypeSocial, LinkTypeEmail, LinkTypePhone:
		return true
	}
	return false
}

// Link represents an outbound link shown on the profile page
type Link struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null"`
	URL        string    `json:"url" gorm:"type:varchar(2048);not null"`
	Type       LinkType  `json:"type" gorm:"type:varchar(16);not null"`
	ClickCount int64     `json:"clicks" gorm:"column:click_count;default:0;not null;index"`
	Gradient   string    `json:"gradient" gorm:"type:varchar(128);not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Gradient string `json:"gradient"`
}

// UpdateLinkRequest represents a partial link update; nil fields are left unchanged
type UpdateLinkRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Type     *string `json:"type"`
	Gradient *string `json:"gradient"`
}
