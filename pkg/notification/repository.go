package notification

import (
	"context"
	"fmt"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

// Deliver stores the notifications in one batch.
func (r repository) Deliver(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Omit("User").Create(&notifications).Error
	if err != nil {
		return fmt.Errorf("failed to create %d notifications: %v", len(notifications), err)
	}
	return nil
}

func (r repository) findAllByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	notifications := []model.Notification{}
	err := r.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("datetime desc, id desc").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications of user %d: %v", userID, err)
	}
	return notifications, nil
}

func (r repository) markRead(ctx context.Context, id, userID uint) error {
	ctx = context.WithoutCancel(ctx)

	db := r.db.
		WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if db.Error != nil {
		return fmt.Errorf("failed to mark notification %d as read: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("notification %d not found", id)
	}
	return nil
}
