package event

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
)

type action func(ctx context.Context, user *model.User, id uint) (*model.Event, error)

// withEvent runs an action without request body on the event of the path and responds with the
// resulting event.
func (h Handler) withEvent(c *gin.Context, act action) {
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := act(c.Request.Context(), user, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}
