package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestOKFlattensPayload(t *testing.T) {
	c, rec := newContext()

	OK(c, gin.H{"count": 2, "data": []int{1, 2}, "success": false})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["data"], 2)
}

func TestErrorWithDetail(t *testing.T) {
	c, rec := newContext()

	Error(c, appErrors.WrapAs(appErrors.ErrStore, errors.New("connection refused"), "Failed to fetch preview data"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to fetch preview data", body.Error)
	assert.Equal(t, "connection refused", body.Message)
}

func TestErrorWithoutDetailOmitsMessage(t *testing.T) {
	c, rec := newContext()

	Error(c, appErrors.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, rec.Body.String())
}

func TestErrorNormalisesPlainErrors(t *testing.T) {
	c, rec := newContext()

	Error(c, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error","message":"boom"}`, rec.Body.String())
}
