package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
	}{
		"BadRequest":           {errdef.NewBadRequest("bad"), http.StatusBadRequest},
		"Unauthorized":         {errdef.NewUnauthorized("who are you"), http.StatusUnauthorized},
		"Forbidden":            {errdef.NewForbidden("already joined"), http.StatusForbidden},
		"NotFound":             {errdef.NewNotFound("event 1 not found"), http.StatusNotFound},
		"Duplicated":           {errdef.NewDuplicated("place exists"), http.StatusConflict},
		"Conflict":             {errdef.NewConflict("event 1 is canceled"), http.StatusConflict},
		"UnsupportedMediaType": {errdef.NewUnsupportedMediaType("json only"), http.StatusUnsupportedMediaType},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			w := serveError(t, test.err)

			assert.Equal(t, test.status, w.Code)
			assert.JSONEq(t, `{"message": "`+test.err.Error()+`"}`, w.Body.String())
		})
	}
}

func TestErrorHandler_InternalErrorIsOpaque(t *testing.T) {
	w := serveError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	id := w.Header().Get(CorrelationIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, w.Body.String(), id)
}

func TestErrorHandler_NoError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.Use(ErrorHandler())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.Use(CorrelationID(), ErrorHandler())
	engine.GET("/", func(c *gin.Context) {
		_ = c.Error(err)
	})

	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}
