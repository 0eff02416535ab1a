package event

import (
	"context"
	"time"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(repository eventRepository, groupService groupService, notifier notifier) *Service {
	return &Service{
		repository:   repository,
		groupService: groupService,
		notifier:     notifier,
		now:          time.Now,
	}
}

type eventRepository interface {
	findAll(ctx context.Context, placeID uint) ([]model.Event, error)
	find(ctx context.Context, id uint) (*model.Event, error)
	create(ctx context.Context, event *model.Event) error
	update(ctx context.Context, event *model.Event, groups *[]model.Group) error
	cancel(ctx context.Context, id uint) error
	addParticipant(ctx context.Context, participant *model.Participant) error
	removeParticipant(ctx context.Context, participant model.Participant) error
	addMessage(ctx context.Context, message *model.Message) error
}

type groupService interface {
	FindByIds(ctx context.Context, ids []uint) ([]model.Group, error)
}

type notifier interface {
	Notify(ctx context.Context, notifications []model.Notification)
}

type Service struct {
	repository   eventRepository
	groupService groupService
	notifier     notifier
	now          func() time.Time
}

// NewEvent holds what a client may set when creating an event. Participants and messages are not
// part of it.
type NewEvent struct {
	Name             string
	Datetime         time.Time
	MeetupTime       *time.Time
	MeetupPlace      string
	PlaceID          uint
	GroupRestriction []uint
}

// Update carries the fields of an event update. Nil fields are left untouched.
type Update struct {
	Name             *string
	Datetime         *time.Time
	MeetupTime       *time.Time
	MeetupPlace      *string
	GroupRestriction *[]uint
}

// FindAll returns the events the user can view. A nil user is anonymous.
func (s *Service) FindAll(ctx context.Context, user *model.User) ([]model.Event, error) {
	return s.findVisible(ctx, user, 0)
}

// FindByPlace returns the events at the given place the user can view.
func (s *Service) FindByPlace(ctx context.Context, user *model.User, placeID uint) ([]model.Event, error) {
	return s.findVisible(ctx, user, placeID)
}

func (s *Service) findVisible(ctx context.Context, user *model.User, placeID uint) ([]model.Event, error) {
	events, err := s.repository.findAll(ctx, placeID)
	if err != nil {
		return nil, err
	}

	visible := make([]model.Event, 0, len(events))
	for i := range events {
		if handler.CanViewEvent(user, &events[i]) {
			visible = append(visible, events[i])
		}
	}
	return visible, nil
}

func (s *Service) Find(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.repository.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !handler.CanViewEvent(user, event) {
		return nil, errdef.NewForbidden("access to event %d denied", id)
	}
	return event, nil
}

// Create stores a new event created by the user. The creator is its first and only participant.
func (s *Service) Create(ctx context.Context, user *model.User, newEvent NewEvent) (*model.Event, error) {
	groups, err := s.findGroups(ctx, newEvent.GroupRestriction)
	if err != nil {
		return nil, err
	}

	now := s.now()
	event := &model.Event{
		Created:          now,
		Name:             newEvent.Name,
		Datetime:         newEvent.Datetime,
		MeetupTime:       newEvent.MeetupTime,
		MeetupPlace:      newEvent.MeetupPlace,
		PlaceID:          newEvent.PlaceID,
		CreatorID:        user.ID,
		GroupRestriction: groups,
		Participants: []model.Participant{
			{UserID: user.ID, Datetime: now},
		},
	}
	if err := s.repository.create(ctx, event); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, event.ID)
}

// Update applies the update if the user can edit the event.
func (s *Service) Update(ctx context.Context, user *model.User, id uint, update Update) (*model.Event, error) {
	event, err := s.findEditable(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		event.Name = *update.Name
	}
	if update.Datetime != nil {
		event.Datetime = *update.Datetime
	}
	if update.MeetupTime != nil {
		event.MeetupTime = update.MeetupTime
	}
	if update.MeetupPlace != nil {
		event.MeetupPlace = *update.MeetupPlace
	}

	var groups *[]model.Group
	if update.GroupRestriction != nil {
		g, err := s.findGroups(ctx, *update.GroupRestriction)
		if err != nil {
			return nil, err
		}
		groups = &g
	}

	if err := s.repository.update(ctx, event, groups); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, id)
}

// Cancel cancels the event if the user can edit it and notifies every participant.
func (s *Service) Cancel(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.findEditable(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if event.Canceled {
		return nil, errdef.NewConflict("event %d is already canceled", id)
	}

	if err := s.repository.cancel(ctx, id); err != nil {
		return nil, err
	}
	event.Canceled = true

	s.notifier.Notify(ctx, cancelNotifications(event, s.now()))

	return event, nil
}

// Join adds the user to the participants of an event the user can view.
func (s *Service) Join(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.Find(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if event.Canceled {
		return nil, errdef.NewConflict("event %d is canceled", id)
	}

	if event.FindParticipant(user.ID) >= 0 {
		return nil, errdef.NewForbidden("already joined")
	}

	participant := &model.Participant{
		EventID:  event.ID,
		UserID:   user.ID,
		Datetime: s.now(),
	}
	if err := s.repository.addParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, id)
}

// Unjoin removes the user from the participants. Other participants keep their order. Leaving
// doesn't require view access.
func (s *Service) Unjoin(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.repository.find(ctx, id)
	if err != nil {
		return nil, err
	}

	i := event.FindParticipant(user.ID)
	if i < 0 {
		return nil, errdef.NewForbidden("not joined")
	}

	if err := s.repository.removeParticipant(ctx, event.Participants[i]); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, id)
}

// Message posts a message to the event and notifies every other participant. Only participants can
// post, and only while they can view the event: a participant whose group membership no longer
// grants access is forbidden.
func (s *Service) Message(ctx context.Context, user *model.User, id uint, text string) (*model.Event, error) {
	event, err := s.Find(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if event.FindParticipant(user.ID) < 0 {
		return nil, errdef.NewForbidden("only participants can post messages")
	}

	if event.Canceled {
		return nil, errdef.NewConflict("event %d is canceled", id)
	}

	message := &model.Message{
		EventID:  event.ID,
		PosterID: user.ID,
		Datetime: s.now(),
		Text:     text,
	}
	if err := s.repository.addMessage(ctx, message); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, messageNotifications(event, user, message))

	return s.repository.find(ctx, id)
}

func (s *Service) findEditable(ctx context.Context, user *model.User, id uint) (*model.Event, error) {
	event, err := s.repository.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !handler.CanEditEvent(user, event) {
		return nil, errdef.NewForbidden("you are not allowed to edit event %d", id)
	}
	return event, nil
}

// findGroups resolves the ids of a group restriction. Unknown groups are a bad request.
func (s *Service) findGroups(ctx context.Context, ids []uint) ([]model.Group, error) {
	groups, err := s.groupService.FindByIds(ctx, ids)
	if errdef.IsNotFound(err) {
		return nil, errdef.NewBadRequest("invalid group restriction: %v", err)
	}
	return groups, err
}
