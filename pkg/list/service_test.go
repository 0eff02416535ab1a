package list

import (
	"context"
	"testing"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Update(t *testing.T) {
	stored := func() *model.List {
		return &model.List{
			ID:   1,
			Name: "Parks",
			Entries: []model.ListEntry{
				{ID: 10, ListID: 1, Position: 0, PlaceID: 3, Place: &model.Place{ID: 3}},
			},
		}
	}

	t.Run("NameOnly", func(t *testing.T) {
		repository := &mockListRepository{}
		repository.On("find", uint(1)).Return(stored(), nil)
		repository.
			On("update", mock.MatchedBy(func(l *model.List) bool {
				return l.Name == "Gardens" && len(l.Entries) == 1 && l.Entries[0].ID == 10
			}), false).
			Return(nil)
		service := NewService(repository)

		name := "Gardens"
		_, err := service.Update(context.Background(), 1, Update{Name: &name})

		require.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("EntriesReplaced", func(t *testing.T) {
		repository := &mockListRepository{}
		repository.On("find", uint(1)).Return(stored(), nil)
		repository.
			On("update", mock.MatchedBy(func(l *model.List) bool {
				return l.Name == "Parks" &&
					assert.ObjectsAreEqual([]model.ListEntry{
						{Position: 0, PlaceID: 5, Note: "first"},
						{Position: 1, PlaceID: 3},
					}, l.Entries)
			}), true).
			Return(nil)
		service := NewService(repository)

		entries := []model.ListEntry{{ID: 99, PlaceID: 5, Note: "first", Place: &model.Place{ID: 5}}, {PlaceID: 3}}
		_, err := service.Update(context.Background(), 1, Update{Entries: &entries})

		require.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("EntriesCleared", func(t *testing.T) {
		repository := &mockListRepository{}
		repository.On("find", uint(1)).Return(stored(), nil)
		repository.
			On("update", mock.MatchedBy(func(l *model.List) bool { return len(l.Entries) == 0 }), true).
			Return(nil)
		service := NewService(repository)

		entries := []model.ListEntry{}
		_, err := service.Update(context.Background(), 1, Update{Entries: &entries})

		require.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repository := &mockListRepository{}
		repository.On("find", uint(2)).Return(nil, errdef.NewNotFound("list 2 not found"))
		service := NewService(repository)

		_, err := service.Update(context.Background(), 2, Update{})

		require.True(t, errdef.IsNotFound(err))
		repository.AssertNotCalled(t, "update", mock.Anything, mock.Anything)
	})
}

func TestService_Create(t *testing.T) {
	repository := &mockListRepository{}
	repository.
		On("create", mock.MatchedBy(func(l *model.List) bool {
			return l.Name == "Museums" && len(l.Entries) == 2 && l.Entries[1].Position == 1
		})).
		Run(func(args mock.Arguments) { args.Get(0).(*model.List).ID = 4 }).
		Return(nil)
	repository.On("find", uint(4)).Return(&model.List{ID: 4, Name: "Museums"}, nil)
	service := NewService(repository)

	list, err := service.Create(context.Background(), "Museums", []model.ListEntry{{PlaceID: 1}, {PlaceID: 2}})

	require.NoError(t, err)
	assert.Equal(t, uint(4), list.ID)
	repository.AssertExpectations(t)
}

type mockListRepository struct{ mock.Mock }

func (m *mockListRepository) findAll(ctx context.Context) ([]model.List, error) {
	called := m.Called()
	lists, _ := called.Get(0).([]model.List)
	return lists, called.Error(1)
}

func (m *mockListRepository) find(ctx context.Context, id uint) (*model.List, error) {
	called := m.Called(id)
	list, _ := called.Get(0).(*model.List)
	return list, called.Error(1)
}

func (m *mockListRepository) create(ctx context.Context, list *model.List) error {
	return m.Called(list).Error(0)
}

func (m *mockListRepository) update(ctx context.Context, list *model.List, replaceEntries bool) error {
	return m.Called(list, replaceEntries).Error(0)
}

func (m *mockListRepository) delete(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}
