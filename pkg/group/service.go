package group

import (
	"context"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(groupRepository groupRepository, userService userService) *Service {
	return &Service{
		groupRepository: groupRepository,
		userService:     userService,
	}
}

type groupRepository interface {
	create(ctx context.Context, group *model.Group) error
	findByIds(ctx context.Context, ids []uint) ([]model.Group, error)
	findWithDetails(ctx context.Context, id uint) (*model.Group, error)
	findAll(ctx context.Context) ([]model.Group, error)
}

type userService interface {
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type Service struct {
	groupRepository groupRepository
	userService     userService
}

// Create creates a group administered by the given administrator. The administrator must be a
// known user.
func (s *Service) Create(ctx context.Context, name string, administratorID uint) (*model.Group, error) {
	administrator, err := s.userService.FindById(ctx, administratorID)
	if err != nil {
		return nil, err
	}

	group := &model.Group{
		Name:            name,
		AdministratorID: &administrator.ID,
	}
	if err := s.groupRepository.create(ctx, group); err != nil {
		return nil, err
	}

	group.Administrator = administrator
	return group, nil
}

// FindByIds returns the groups with the given ids. A not found error names the first id without a
// group.
func (s *Service) FindByIds(ctx context.Context, ids []uint) ([]model.Group, error) {
	groups, err := s.groupRepository.findByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uint]struct{}, len(groups))
	for _, g := range groups {
		found[g.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, errdef.NewNotFound("group %d doesn't exist", id)
		}
	}

	return groups, nil
}

func (s *Service) FindWithDetails(ctx context.Context, id uint) (*model.Group, error) {
	return s.groupRepository.findWithDetails(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Group, error) {
	return s.groupRepository.findAll(ctx)
}
