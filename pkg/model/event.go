package model

import "time"

// Event domain object defining a meetup at a place
// swagger:model
type Event struct {
	ID               uint          `gorm:"primarykey" json:"id"`
	Created          time.Time     `gorm:"autoCreateTime" json:"created"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	Name             string        `json:"name"`
	Datetime         time.Time     `json:"datetime"`
	MeetupTime       *time.Time    `json:"meetupTime"`
	MeetupPlace      string        `json:"meetupPlace"`
	PlaceID          uint          `gorm:"index" json:"placeId"`
	Place            *Place        `json:"place,omitempty"`
	CreatorID        uint          `json:"creatorId"`
	Creator          *User         `json:"creator,omitempty"`
	Canceled         bool          `json:"canceled"`
	GroupRestriction []Group       `gorm:"many2many:event_group_restrictions;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"groupRestriction"`
	Participants     []Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"participants"`
	Messages         []Message     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"messages"`
}

// IsRestricted is true if the event is only visible to certain groups.
func (e *Event) IsRestricted() bool {
	return len(e.GroupRestriction) > 0
}

// FindParticipant returns the index of the participant entry belonging to userID or -1.
func (e *Event) FindParticipant(userID uint) int {
	for i, p := range e.Participants {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// Participant of an event. A user participates at most once in the same event.
type Participant struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	EventID  uint      `gorm:"uniqueIndex:idx_event_participant" json:"-"`
	UserID   uint      `gorm:"uniqueIndex:idx_event_participant" json:"participantId"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"participant,omitempty"`
	Datetime time.Time `json:"datetime"`
}

// Message posted to an event by one of its participants
type Message struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	EventID  uint      `gorm:"index" json:"-"`
	PosterID uint      `json:"posterId"`
	Poster   *User     `gorm:"constraint:OnDelete:CASCADE" json:"poster,omitempty"`
	Datetime time.Time `json:"datetime"`
	Text     string    `json:"text"`
}
