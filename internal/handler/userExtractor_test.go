package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserFromContext(t *testing.T) {
	user := &model.User{
		ID:    1000,
		Email: "some@thing.dk",
		Role:  model.RoleCurator,
		Groups: []model.Group{
			{ID: 1, Name: "whoami"},
			{ID: 2, Name: "play"},
		},
	}

	c := &gin.Context{}
	c.Set("user", user)

	u, err := GetUserFromContext(c)
	require.NoError(t, err)

	assert.Equal(t, uint(1000), u.ID)
	assert.Equal(t, "some@thing.dk", u.Email)
	assert.Equal(t, model.RoleCurator, u.Role)
	assert.Len(t, u.Groups, 2)
}

func TestGetUserFromContext_Anonymous(t *testing.T) {
	c := &gin.Context{}

	u, err := GetUserFromContext(c)

	assert.Nil(t, u)
	assert.True(t, errdef.IsUnauthorized(err))
	assert.Nil(t, FindUserFromContext(c))
}
