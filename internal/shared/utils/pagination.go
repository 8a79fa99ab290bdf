package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"toolvault/internal/shared/constants"
)

// ListWindow holds parsed limit/offset parameters.
type ListWindow struct {
	Limit  int
	Offset int
}

// ParseListWindow parses limit/offset from the query string.
// Malformed or out-of-range values coerce to defaults rather than erroring;
// limit is capped at MaxLimit.
func ParseListWindow(c *gin.Context) ListWindow {
	return ValidateListWindow(
		parseQueryInt(c, "limit", constants.DefaultLimit),
		parseQueryInt(c, "offset", 0),
	)
}

// ValidateListWindow normalizes raw limit/offset values.
func ValidateListWindow(limit, offset int) ListWindow {
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return ListWindow{Limit: limit, Offset: offset}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages == 0 {
		return 1
	}
	return pages
}
