package user

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
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

// upsert stores the identity carried by an access token. Group memberships are replaced by the
// groups of the token that exist in our database.
func (r repository) upsert(ctx context.Context, user *model.User) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u := &model.User{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}
		err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "updated_at"}),
			}).
			Omit(clause.Associations).
			Create(u).Error
		if err != nil {
			return fmt.Errorf("failed to upsert user %d: %v", user.ID, err)
		}

		groups := []model.Group{}
		if ids := groupIDs(user.Groups); len(ids) > 0 {
			if err := tx.Where("id IN ?", ids).Find(&groups).Error; err != nil {
				return fmt.Errorf("failed to find groups of user %d: %v", user.ID, err)
			}
		}

		if err := tx.Model(u).Association("Groups").Replace(groups); err != nil {
			return fmt.Errorf("failed to update groups of user %d: %v", user.ID, err)
		}
		return nil
	})
}

func (r repository) findById(ctx context.Context, id uint) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Preload("Groups").
		First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with id %d", id)
	}
	return u, err
}

func groupIDs(groups []model.Group) []uint {
	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids
}
