package list

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	internalHandler "github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_Update_NormalizesPopulatedPlaces(t *testing.T) {
	require.NoError(t, internalHandler.RegisterValidation())
	repository := &mockListRepository{}
	repository.On("find", uint(1)).Return(&model.List{ID: 1, Name: "Parks"}, nil)
	repository.
		On("update", mock.MatchedBy(func(l *model.List) bool {
			return len(l.Entries) == 2 && l.Entries[0].PlaceID == 3 && l.Entries[1].PlaceID == 4 && l.Entries[0].Place == nil
		}), true).
		Return(nil)
	handler := NewHandler(NewService(repository))

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	body := `{"id": 99, "entries": [{"place": {"id": 3, "name": "Central Park"}}, {"place": 4}]}`
	c.Request = httptest.NewRequest(http.MethodPut, "/lists/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Update(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusOK, recorder.Code)
	repository.AssertExpectations(t)
}

func TestHandler_Update_EmptyName(t *testing.T) {
	require.NoError(t, internalHandler.RegisterValidation())
	repository := &mockListRepository{}
	handler := NewHandler(NewService(repository))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/lists/1", strings.NewReader(`{"name": ""}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Update(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsBadRequest(c.Errors[0].Err))
	repository.AssertNotCalled(t, "find", mock.Anything)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	repository := &mockListRepository{}
	repository.On("delete", uint(8)).Return(errdef.NewNotFound("list 8 not found"))
	handler := NewHandler(NewService(repository))

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodDelete, "/lists/8", nil)
	c.Params = gin.Params{{Key: "id", Value: "8"}}

	handler.Delete(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsNotFound(c.Errors[0].Err))
}

func TestEntryRequest_PlaceIdOrObject(t *testing.T) {
	body := `[{"place": 3, "note": "start"}, {"place": {"id": 4, "name": "Museum"}}]`

	var entries []EntryRequest
	err := json.Unmarshal([]byte(body), &entries)

	require.NoError(t, err)
	assert.Equal(t, []EntryRequest{{Place: 3, Note: "start"}, {Place: 4}}, entries)
}
