package event

import (
	"time"

	"github.com/placelists/placelists/pkg/model"
)

// displayTimeLayout formats times shown in notifications.
const displayTimeLayout = "Monday, January 2 at 15:04"

func cancelNotifications(event *model.Event, now time.Time) []model.Notification {
	notifications := make([]model.Notification, 0, len(event.Participants))
	for _, p := range event.Participants {
		notifications = append(notifications, model.Notification{
			UserID:   p.UserID,
			Datetime: now,
			Data: model.NotificationData{
				Name:      model.NotificationEventCancel,
				EventID:   event.ID,
				EventName: event.Name,
				Time:      event.Datetime.Format(displayTimeLayout),
			},
		})
	}
	return notifications
}

// messageNotifications notifies every participant except the poster.
func messageNotifications(event *model.Event, poster *model.User, message *model.Message) []model.Notification {
	notifications := make([]model.Notification, 0, len(event.Participants))
	for _, p := range event.Participants {
		if p.UserID == poster.ID {
			continue
		}
		notifications = append(notifications, model.Notification{
			UserID:   p.UserID,
			Datetime: message.Datetime,
			Data: model.NotificationData{
				Name:      model.NotificationEventMessage,
				EventID:   event.ID,
				EventName: event.Name,
				Time:      message.Datetime.Format(displayTimeLayout),
				PosterID:  poster.ID,
				Poster:    poster.Name,
				Text:      message.Text,
			},
		})
	}
	return notifications
}
