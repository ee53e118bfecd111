package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_GetByProviderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	testBook := Book{
		ProviderID: "zyTCAlFPjgYC",
		Title:      "The Google Story",
		Authors:    []string{"David A. Vise"},
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByProviderID(gomock.Any(), "zyTCAlFPjgYC").Return(testBook, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/zyTCAlFPjgYC", nil)
		r.SetPathValue("providerID", "zyTCAlFPjgYC")

		handler.GetByProviderID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"The Google Story"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByProviderID(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/missing", nil)
		r.SetPathValue("providerID", "missing")

		handler.GetByProviderID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().GetByProviderID(gomock.Any(), "x1").Return(Book{}, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/x1", nil)
		r.SetPathValue("providerID", "x1")

		handler.GetByProviderID(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("blank id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/", nil)

		handler.GetByProviderID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBook_Key(t *testing.T) {
	key, ok := Book{ProviderID: "a", Title: "other"}.Key()
	assert.True(t, ok)
	assert.Equal(t, "a", key)

	_, ok = Book{Title: "untracked"}.Key()
	assert.False(t, ok)
}
