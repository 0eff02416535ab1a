package place

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(repository placeRepository) *Service {
	return &Service{repository: repository}
}

type placeRepository interface {
	create(ctx context.Context, place *model.Place) error
	find(ctx context.Context, id uint) (*model.Place, error)
	findAll(ctx context.Context) ([]model.Place, error)
}

type Service struct {
	repository placeRepository
}

// Create stores a place. Its slug is derived from the name and must be unique.
func (s *Service) Create(ctx context.Context, place *model.Place) error {
	place.Slug = slug.Make(place.Name)
	if place.Slug == "" {
		return errdef.NewBadRequest("name %q doesn't contain any letters or digits", place.Name)
	}

	return s.repository.create(ctx, place)
}

func (s *Service) Find(ctx context.Context, id uint) (*model.Place, error) {
	return s.repository.find(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Place, error) {
	return s.repository.findAll(ctx)
}
