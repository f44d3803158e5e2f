package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
	"github.com/noah-isme/student-analytics-api/pkg/middleware/requestid"
	"github.com/noah-isme/student-analytics-api/pkg/response"
)

// Recovery turns handler panics into a 500 envelope. The panic value is logged, not returned.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("unhandled panic",
			zap.String("panic", fmt.Sprint(recovered)),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Value(c)),
			zap.Stack("stack"),
		)
		response.Abort(c, appErrors.WrapAs(appErrors.ErrInternal, fmt.Errorf("unexpected error while handling %s", c.Request.URL.Path), ""))
	})
}

// NotFound answers unmatched routes with the 404 envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Abort(c, appErrors.ErrNotFound)
	}
}
