package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
)

// ErrorHandler writes the last error added to the context as a JSON response of the form
// {"message": "..."}. Errors of unknown kind are not echoed to the client; the caller gets the
// correlation ID which links to the error logged by the [RequestLogger].
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil || c.Writer.Written() {
			return
		}

		status := statusOf(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			id, _ := GetCorrelationID(c.Request.Context())
			message = "something went wrong. We'll look into it if you send us the id \"" + id + "\" :)"
		}

		c.JSON(status, gin.H{"message": message})
	}
}

func statusOf(err error) int {
	switch {
	case errdef.IsBadRequest(err):
		return http.StatusBadRequest
	case errdef.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errdef.IsForbidden(err):
		return http.StatusForbidden
	case errdef.IsNotFound(err):
		return http.StatusNotFound
	case errdef.IsDuplicated(err), errdef.IsConflict(err):
		return http.StatusConflict
	case errdef.IsUnsupportedMediaType(err):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
