package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

// ErrorBody is the failure side of the envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OK sends {success:true, ...payload} with HTTP 200.
func OK(c *gin.Context, payload gin.H) {
	JSON(c, http.StatusOK, payload)
}

// JSON sends a success envelope with the given status, flattening payload into it.
func JSON(c *gin.Context, status int, payload gin.H) {
	body := make(gin.H, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, body)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, NewErrorBody(appErr))
}

// Abort is Error for middleware and recovery paths that must stop the chain.
func Abort(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.AbortWithStatusJSON(appErr.Status, NewErrorBody(appErr))
}

// NewErrorBody renders an application error as an envelope.
func NewErrorBody(err *appErrors.Error) ErrorBody {
	return ErrorBody{Success: false, Error: err.Summary, Message: err.Detail()}
}
