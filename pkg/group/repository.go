package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{
		db: db,
	}
}

func (r repository) create(ctx context.Context, group *model.Group) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(group).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("group %q already exists", group.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to create group: %v", err)
	}

	return nil
}

// findByIds returns the groups with the given ids. Ids of groups that don't exist are ignored.
func (r repository) findByIds(ctx context.Context, ids []uint) ([]model.Group, error) {
	groups := []model.Group{}
	if len(ids) == 0 {
		return groups, nil
	}

	err := r.db.
		WithContext(ctx).
		Preload("Administrator").
		Where("id IN ?", ids).
		Order("id").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find groups by ids: %v", err)
	}

	return groups, nil
}

func (r repository) findWithDetails(ctx context.Context, id uint) (*model.Group, error) {
	var group *model.Group
	err := r.db.
		WithContext(ctx).
		Preload("Administrator").
		Preload("Users").
		First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("group %d doesn't exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find group with details: %v", err)
	}

	return group, nil
}

func (r repository) findAll(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.
		WithContext(ctx).
		Preload("Administrator").
		Order("name").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find groups: %v", err)
	}

	return groups, nil
}
