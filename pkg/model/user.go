package model

import (
	"context"
	"time"
)

// Roles a user can hold. Administrators and curators see and edit every event.
const (
	RoleUser    = "user"
	RoleCurator = "curator"
	RoleAdmin   = "admin"
)

// User domain object defining a user
// swagger:model
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	Role      string    `gorm:"default:user" json:"role"`
	Groups    []Group   `gorm:"many2many:user_groups;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"groups"`
}

// IsMemberOf returns true if the user is a member of the group with the given id.
func (u *User) IsMemberOf(groupID uint) bool {
	for _, g := range u.Groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}

func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdmin
}

// IsPrivileged is true for administrators and curators.
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleCurator
}

type userCtxKey int

var userKey userCtxKey

// NewContextWithUser returns a new [context.Context] that carries value user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored in the ctx, if any.
func GetUserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	return u, ok
}
