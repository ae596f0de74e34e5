package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/apperr"
	"github.com/recollect/recollect/internal/mocks"
	"github.com/recollect/recollect/internal/models"
	"github.com/recollect/recollect/internal/storage"
)

func newTestGetHandler(t *testing.T) (*GetHandler, *mocks.MockBookmarkServiceIface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockBookmarkServiceIface(ctrl)

	return NewGet(mockService, zap.NewNop()), mockService
}

func TestListURLs(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ListBookmarks(gomock.Any(), 50, "").
		Return(&models.ListURLsResponse{
			URLs: []storage.BookmarkRecord{
				{ID: "id-2", Original: "https://example.com/2", Title: "Two", SavedAt: 200},
				{ID: "id-1", Original: "https://example.com/1", Title: "One", SavedAt: 100},
			},
			HasMore: true,
			LastKey: "b3BhcXVl",
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
	rr := httptest.NewRecorder()

	handler.ListURLs(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	var resp models.ListURLsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.URLs, 2)
	assert.Equal(t, "id-2", resp.URLs[0].ID)
	assert.True(t, resp.HasMore)
	assert.Equal(t, "b3BhcXVl", resp.LastKey)
}

func TestListURLsCustomLimit(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ListBookmarks(gomock.Any(), 20, "sometoken").
		Return(&models.ListURLsResponse{URLs: []storage.BookmarkRecord{}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/urls?limit=20&lastKey=sometoken", nil)
	rr := httptest.NewRecorder()

	handler.ListURLs(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListURLsInvalidLimit(t *testing.T) {
	handler, _ := newTestGetHandler(t)

	tests := []struct {
		name    string
		limit   string
		wantMsg string
	}{
		{name: "non-numeric", limit: "abc", wantMsg: `Parameter "limit" must be a valid number`},
		{name: "zero", limit: "0", wantMsg: `Parameter "limit" must be at least 1`},
		{name: "negative", limit: "-1", wantMsg: `Parameter "limit" must be at least 1`},
		{name: "too large", limit: "101", wantMsg: `Parameter "limit" cannot exceed 100`},
		{name: "fractional", limit: "1.5", wantMsg: `Parameter "limit" must be an integer`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Storage must not be reached on a limit violation, so no
			// expectation is registered on the mock.
			req := httptest.NewRequest(http.MethodGet, "/api/urls?limit="+tt.limit, nil)
			rr := httptest.NewRecorder()

			handler.ListURLs(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "BadRequest", resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestListURLsInvalidToken(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ListBookmarks(gomock.Any(), 50, "garbage").
		Return(nil, apperr.Validation("Invalid pagination token")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/urls?lastKey=garbage", nil)
	rr := httptest.NewRecorder()

	handler.ListURLs(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid pagination token", resp.Message)
}

func TestListURLsEmpty(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	mockService.EXPECT().
		ListBookmarks(gomock.Any(), 50, "").
		Return(&models.ListURLsResponse{URLs: []storage.BookmarkRecord{}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
	rr := httptest.NewRecorder()

	handler.ListURLs(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"urls":[],"hasMore":false}`, rr.Body.String())
}

func TestPingDB(t *testing.T) {
	handler, mockService := newTestGetHandler(t)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()

		handler.PingDB(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()

		handler.PingDB(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db error")
	})
}
