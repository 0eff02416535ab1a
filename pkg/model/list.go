package model

import "time"

// List domain object defining a named, ordered collection of places
// swagger:model
type List struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Name      string      `json:"name"`
	Entries   []ListEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"entries"`
}

// ListEntry references a place. Place is only set when the entry has been populated.
type ListEntry struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	ListID   uint   `gorm:"index" json:"-"`
	Position int    `json:"position"`
	PlaceID  uint   `json:"placeId"`
	Place    *Place `gorm:"constraint:OnDelete:CASCADE" json:"place,omitempty"`
	Note     string `json:"note,omitempty"`
}
