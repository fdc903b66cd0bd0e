package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/shared/errors"
)

// ParseIDParam reads a positive integer id from a URL path parameter.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			"invalid "+entityName+" ID",
			paramName+" must be a positive integer",
		)
	}
	return uint(id), nil
}
