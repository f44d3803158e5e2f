package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

// queryInt parses an optional integer query parameter. Present but malformed values
// are rejected rather than replaced by the default.
func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback, nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.WrapAs(appErrors.ErrInvalidArgument, fmt.Errorf("%s must be an integer, got %q", key, raw), "")
	}
	return v, nil
}

// requestContext detaches the store queries from client disconnects.
func requestContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
