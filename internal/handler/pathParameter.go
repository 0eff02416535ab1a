package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
)

// GetPathParameter parses the path parameter as an id. A bad request error is added to the context
// if it can't be parsed.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("error parsing %q: %q is not a valid id", parameter, idParam))
		return 0, false
	}
	return uint(id), true
}
