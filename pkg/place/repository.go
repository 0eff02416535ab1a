package place

import (
	"context"
	"errors"
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

func (r repository) create(ctx context.Context, place *model.Place) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(place).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("place with slug %q already exists", place.Slug)
	}
	if err != nil {
		return fmt.Errorf("failed to create place: %v", err)
	}
	return nil
}

func (r repository) find(ctx context.Context, id uint) (*model.Place, error) {
	var place *model.Place
	err := r.db.WithContext(ctx).First(&place, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("place %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find place: %v", err)
	}
	return place, nil
}

func (r repository) findAll(ctx context.Context) ([]model.Place, error) {
	var places []model.Place
	err := r.db.WithContext(ctx).Order("name").Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find places: %v", err)
	}
	return places, nil
}
