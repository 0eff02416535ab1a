package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/placelists/placelists/internal/errdef"
)

// DataBinder binds the JSON request body to req and validates it using its binding tags.
func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != binding.MIMEJSON {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type application/json", c.FullPath())
	}

	if err := c.ShouldBindJSON(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errdef.NewBadRequest("invalid request: %s", describe(validationErrors))
		}
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}

func describe(validationErrors validator.ValidationErrors) string {
	messages := make([]string, len(validationErrors))
	for i, e := range validationErrors {
		if e.Tag() == "required" {
			messages[i] = fmt.Sprintf("%s is required", e.Field())
		} else {
			messages[i] = fmt.Sprintf("%s failed on the %q validation", e.Field(), e.Tag())
		}
	}
	return strings.Join(messages, ", ")
}
