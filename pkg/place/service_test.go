package place

import (
	"context"
	"testing"

	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	repository := &mockPlaceRepository{}
	repository.On("create", mock.AnythingOfType("*model.Place")).Return(nil)
	service := NewService(repository)

	place := &model.Place{Name: "Central Park Café"}
	err := service.Create(context.Background(), place)

	require.NoError(t, err)
	assert.Equal(t, "central-park-cafe", place.Slug)
	repository.AssertExpectations(t)
}

func TestService_Create_NameWithoutSlug(t *testing.T) {
	repository := &mockPlaceRepository{}
	service := NewService(repository)

	err := service.Create(context.Background(), &model.Place{Name: "!!!"})

	require.True(t, errdef.IsBadRequest(err))
	repository.AssertNotCalled(t, "create", mock.Anything)
}

type mockPlaceRepository struct{ mock.Mock }

func (m *mockPlaceRepository) create(ctx context.Context, place *model.Place) error {
	return m.Called(place).Error(0)
}

func (m *mockPlaceRepository) find(ctx context.Context, id uint) (*model.Place, error) {
	called := m.Called(id)
	place, _ := called.Get(0).(*model.Place)
	return place, called.Error(1)
}

func (m *mockPlaceRepository) findAll(ctx context.Context) ([]model.Place, error) {
	called := m.Called()
	places, _ := called.Get(0).([]model.Place)
	return places, called.Error(1)
}
