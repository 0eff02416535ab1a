package model

import "time"

// Group domain object defining a group. Events restricted to a group are only visible to its
// members and its administrator.
// swagger:model
type Group struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Name            string    `gorm:"unique" json:"name"`
	AdministratorID *uint     `json:"administratorId"`
	Administrator   *User     `gorm:"constraint:OnDelete:SET NULL" json:"administrator,omitempty"`
	Users           []User    `gorm:"many2many:user_groups;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"users,omitempty"`
}

// IsAdministeredBy returns true if the user with the given id administers the group.
func (g Group) IsAdministeredBy(userID uint) bool {
	return g.AdministratorID != nil && *g.AdministratorID == userID
}
