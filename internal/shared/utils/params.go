package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"propdesk/internal/shared/errors"
	"propdesk/internal/shared/id"
)

// ParseUintParam parses a numeric URL path parameter.
// entityName is used in error messages (e.g., "ticket", "contractor").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(parsed), nil
}

// ParseReferenceParam parses and validates a ticket reference code from a URL path parameter.
func ParseReferenceParam(c *gin.Context, paramName string) (string, error) {
	reference := c.Param(paramName)
	if reference == "" {
		return "", errors.NewValidationError("ticket reference is required")
	}

	if err := id.ValidateTicketReference(reference); err != nil {
		return "", errors.NewValidationError("invalid ticket reference format, expected tk_xxxxx")
	}

	return reference, nil
}

// ParsePagination extracts page/page_size query parameters with sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return page, pageSize
}
