package list

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

// populate loads the entries of lists in order together with their places.
func populate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_entries.position")
		}).
		Preload("Entries.Place")
}

func (r repository) findAll(ctx context.Context) ([]model.List, error) {
	var lists []model.List
	err := populate(r.db.WithContext(ctx)).
		Order("id").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find lists: %v", err)
	}
	return lists, nil
}

func (r repository) find(ctx context.Context, id uint) (*model.List, error) {
	var list *model.List
	err := populate(r.db.WithContext(ctx)).First(&list, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("list %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find list %d: %v", id, err)
	}
	return list, nil
}

func (r repository) create(ctx context.Context, list *model.List) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide if we want
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Omit("Entries.Place").Create(list).Error
	return translateEntryError(err, "failed to create list")
}

// update stores the name of the list. Entries are replaced by the entries of list if replaceEntries
// is set.
func (r repository) update(ctx context.Context, list *model.List, replaceEntries bool) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(list).Omit(clause.Associations).Updates(map[string]any{"name": list.Name}).Error
		if err != nil {
			return err
		}

		if !replaceEntries {
			return nil
		}

		if err := tx.Where("list_id = ?", list.ID).Delete(&model.ListEntry{}).Error; err != nil {
			return err
		}
		if len(list.Entries) == 0 {
			return nil
		}
		for i := range list.Entries {
			list.Entries[i].ListID = list.ID
		}
		return tx.Omit("Place").Create(&list.Entries).Error
	})
	return translateEntryError(err, fmt.Sprintf("failed to update list %d", list.ID))
}

func (r repository) delete(ctx context.Context, id uint) error {
	ctx = context.WithoutCancel(ctx)

	db := r.db.WithContext(ctx).Delete(&model.List{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete list %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("list %d not found", id)
	}
	return nil
}

func translateEntryError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errdef.NewBadRequest("entries refer to a place that doesn't exist")
	}
	return fmt.Errorf("%s: %v", message, err)
}
