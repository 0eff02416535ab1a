package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
)

func NewHandler(userService userService) Handler {
	return Handler{
		userService: userService,
	}
}

type Handler struct {
	userService userService
}

type userService interface {
	FindById(ctx context.Context, id uint) (*model.User, error)
}

// Me user
func (h Handler) Me(c *gin.Context) {
	// swagger:route GET /users/me me
	//
	// User details
	//
	// Current user details including the groups the user is a member of
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: User
	//   401: Error
	//   404: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	userWithGroups, err := h.userService.FindById(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, userWithGroups)
}
