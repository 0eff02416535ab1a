package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/internal/handler"
)

func NewAuthorization(logger *slog.Logger) AuthorizationMiddleware {
	return AuthorizationMiddleware{
		logger: logger,
	}
}

type AuthorizationMiddleware struct {
	logger *slog.Logger
}

// RequireAdministrator aborts requests of users not having the admin role. It needs to run after
// authentication.
func (m AuthorizationMiddleware) RequireAdministrator(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if !u.IsAdministrator() {
		m.logger.WarnContext(c.Request.Context(), "User tried to access administrator restricted endpoint", "user", u.ID)
		_ = c.Error(errdef.NewForbidden("administrator access denied"))
		c.Abort()
		return
	}

	c.Next()
}
