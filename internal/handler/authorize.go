package handler

import (
	"github.com/placelists/placelists/pkg/model"
	"golang.org/x/exp/slices"
)

// CanViewEvent returns true if the user may see the event. Events without a group restriction are
// public. A nil user is anonymous.
func CanViewEvent(user *model.User, event *model.Event) bool {
	if !event.IsRestricted() {
		return true
	}
	if user == nil {
		return false
	}

	return user.IsPrivileged() || slices.ContainsFunc(event.GroupRestriction, func(group model.Group) bool {
		return group.IsAdministeredBy(user.ID) || user.IsMemberOf(group.ID)
	})
}

// CanEditEvent returns true if the user may update or cancel the event. The group restriction
// needs to be loaded.
func CanEditEvent(user *model.User, event *model.Event) bool {
	if user == nil {
		return false
	}

	return user.IsPrivileged() || isCreator(user, event) || administersRestriction(user, event)
}

func isCreator(user *model.User, event *model.Event) bool {
	return user.ID == event.CreatorID
}

func administersRestriction(user *model.User, event *model.Event) bool {
	return slices.ContainsFunc(event.GroupRestriction, func(group model.Group) bool {
		return group.IsAdministeredBy(user.ID)
	})
}
