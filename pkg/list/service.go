package list

import (
	"context"

	"github.com/placelists/placelists/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(repository listRepository) *Service {
	return &Service{repository: repository}
}

type listRepository interface {
	findAll(ctx context.Context) ([]model.List, error)
	find(ctx context.Context, id uint) (*model.List, error)
	create(ctx context.Context, list *model.List) error
	update(ctx context.Context, list *model.List, replaceEntries bool) error
	delete(ctx context.Context, id uint) error
}

type Service struct {
	repository listRepository
}

// Update carries the fields of a list update. Nil fields are left untouched.
type Update struct {
	Name    *string
	Entries *[]model.ListEntry
}

func (s *Service) FindAll(ctx context.Context) ([]model.List, error) {
	return s.repository.findAll(ctx)
}

func (s *Service) Find(ctx context.Context, id uint) (*model.List, error) {
	return s.repository.find(ctx, id)
}

// Create stores a list. Entries are kept in the given order. The returned list has its places
// populated.
func (s *Service) Create(ctx context.Context, name string, entries []model.ListEntry) (*model.List, error) {
	list := &model.List{
		Name:    name,
		Entries: numbered(entries),
	}
	if err := s.repository.create(ctx, list); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, list.ID)
}

// Update applies the given update to the list. Entries are replaced as a whole. The returned list
// has its places populated.
func (s *Service) Update(ctx context.Context, id uint, update Update) (*model.List, error) {
	list, err := s.repository.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		list.Name = *update.Name
	}
	if update.Entries != nil {
		list.Entries = numbered(*update.Entries)
	}

	if err := s.repository.update(ctx, list, update.Entries != nil); err != nil {
		return nil, err
	}

	return s.repository.find(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}

// numbered returns entries without ids positioned in the order given.
func numbered(entries []model.ListEntry) []model.ListEntry {
	result := make([]model.ListEntry, len(entries))
	for i, entry := range entries {
		result[i] = model.ListEntry{
			Position: i,
			PlaceID:  entry.PlaceID,
			Note:     entry.Note,
		}
	}
	return result
}
