package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
)

// GetUserFromContext returns the authenticated user. An unauthorized error is returned if the
// request is anonymous.
func GetUserFromContext(c *gin.Context) (*model.User, error) {
	user := FindUserFromContext(c)
	if user == nil {
		return nil, errdef.NewUnauthorized("user not found on context")
	}
	return user, nil
}

// FindUserFromContext returns the authenticated user or nil for anonymous requests.
func FindUserFromContext(c *gin.Context) *model.User {
	userData, exists := c.Get("user")
	if !exists {
		return nil
	}

	user, ok := userData.(*model.User)
	if !ok {
		return nil
	}
	return user
}
