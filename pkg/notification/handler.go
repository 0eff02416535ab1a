package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
)

func NewHandler(notificationService *Service) Handler {
	return Handler{notificationService: notificationService}
}

type Handler struct {
	notificationService *Service
}

// FindAll notifications
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /notifications findAllNotifications
	//
	// Find notifications
	//
	// Find the notifications of the current user, newest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Notification
	//   401: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	notifications, err := h.notificationService.FindAll(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead notification
func (h Handler) MarkRead(c *gin.Context) {
	// swagger:route POST /notifications/{id}/read markNotificationRead
	//
	// Mark notification as read
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   204:
	//   400: Error
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
