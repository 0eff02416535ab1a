package model

import "time"

// Notification kinds
const (
	NotificationEventCancel  = "event.cancel"
	NotificationEventMessage = "event.message"
)

// Notification domain object defining something a user should be told about
// swagger:model
type Notification struct {
	ID       uint             `gorm:"primarykey" json:"id"`
	UserID   uint             `gorm:"index" json:"userId"`
	User     *User            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Datetime time.Time        `json:"datetime"`
	Read     bool             `json:"read"`
	Data     NotificationData `gorm:"type:jsonb;serializer:json" json:"data"`
}

// NotificationData carries the kind of notification and the context needed to render it.
type NotificationData struct {
	Name      string `json:"name"`
	EventID   uint   `json:"eventId"`
	EventName string `json:"eventName"`
	Time      string `json:"time,omitempty"`
	PosterID  uint   `json:"posterId,omitempty"`
	Poster    string `json:"poster,omitempty"`
	Text      string `json:"text,omitempty"`
}
