package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

// populateSummary loads what is needed to list events and decide whether they are visible.
func populateSummary(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Place").
		Preload("Creator").
		Preload("GroupRestriction", orderBy("groups.id")).
		Preload("GroupRestriction.Administrator").
		Preload("Participants", orderBy("participants.id"))
}

// populate loads an event with everything it refers to.
func populate(db *gorm.DB) *gorm.DB {
	return populateSummary(db).
		Preload("Participants.User").
		Preload("Messages", orderBy("messages.id")).
		Preload("Messages.Poster")
}

func orderBy(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column)
	}
}

// findAll returns all events or only the events at the given place if placeID isn't 0.
func (r repository) findAll(ctx context.Context, placeID uint) ([]model.Event, error) {
	events := []model.Event{}
	query := populateSummary(r.db.WithContext(ctx)).Order("datetime, id")
	if placeID != 0 {
		query = query.Where("place_id = ?", placeID)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to find events: %v", err)
	}
	return events, nil
}

func (r repository) find(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := populate(r.db.WithContext(ctx)).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event %d: %v", id, err)
	}
	return event, nil
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Omit("GroupRestriction.*").Create(event).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errdef.NewBadRequest("place %d doesn't exist", event.PlaceID)
	}
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}
	return nil
}

// update stores the scalar fields of the event. The group restriction is replaced if groups isn't
// nil.
func (r repository) update(ctx context.Context, event *model.Event, groups *[]model.Group) error {
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(event).
			Omit(clause.Associations).
			Select("name", "datetime", "meetup_time", "meetup_place", "updated_at").
			Updates(event).Error
		if err != nil {
			return fmt.Errorf("failed to update event %d: %v", event.ID, err)
		}

		if groups == nil {
			return nil
		}

		if err := tx.Model(event).Association("GroupRestriction").Replace(*groups); err != nil {
			return fmt.Errorf("failed to update group restriction of event %d: %v", event.ID, err)
		}
		return nil
	})
}

// cancel marks the event canceled. Canceling an event twice is a conflict.
func (r repository) cancel(ctx context.Context, id uint) error {
	ctx = context.WithoutCancel(ctx)

	db := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ? AND canceled = ?", id, false).
		Update("canceled", true)
	if db.Error != nil {
		return fmt.Errorf("failed to cancel event %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewConflict("event %d is already canceled", id)
	}
	return nil
}

// addParticipant relies on the unique index of participants so concurrent joins of the same user
// can't both succeed.
func (r repository) addParticipant(ctx context.Context, participant *model.Participant) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Omit("User").Create(participant).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewForbidden("already joined")
	}
	if err != nil {
		return fmt.Errorf("failed to add participant to event %d: %v", participant.EventID, err)
	}
	return nil
}

func (r repository) removeParticipant(ctx context.Context, participant model.Participant) error {
	ctx = context.WithoutCancel(ctx)

	db := r.db.WithContext(ctx).Delete(&model.Participant{}, participant.ID)
	if db.Error != nil {
		return fmt.Errorf("failed to remove participant from event %d: %v", participant.EventID, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewForbidden("not joined")
	}
	return nil
}

func (r repository) addMessage(ctx context.Context, message *model.Message) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Omit("Poster").Create(message).Error
	if err != nil {
		return fmt.Errorf("failed to add message to event %d: %v", message.EventID, err)
	}
	return nil
}
