package handler

import (
	"backend/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// param reads a request parameter from the query string, falling back to a
// POST form value.
func param(c *gin.Context, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.PostForm(name)
}

func intParam(c *gin.Context, name string) int {
	v, err := strconv.Atoi(param(c, name))
	if err != nil {
		return 0
	}
	return v
}

func uintParam(c *gin.Context, name string) uint {
	v := intParam(c, name)
	if v < 0 {
		return 0
	}
	return uint(v)
}

func boolParam(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(param(c, name))
	return err == nil && v
}

// dateParam parses an optional date parameter, nil when absent or malformed
func dateParam(c *gin.Context, name string) *time.Time {
	raw := param(c, name)
	if raw == "" {
		return nil
	}
	t, err := service.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &t
}
