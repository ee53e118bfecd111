package user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = "7d4a1d7e-0f5d-4a4b-9b8e-1f2e3d4c5b6a"
	}
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

const testUserID = "7d4a1d7e-0f5d-4a4b-9b8e-1f2e3d4c5b6a"

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com"
		})).Return(nil)
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(`{"username":" alice ","email":"alice@example.com"}`))
		h.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), testUserID)
		repo.AssertExpectations(t)
	})

	t.Run("conflict", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(ErrAlreadyExists)
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(`{"username":"alice","email":"alice@example.com"}`))
		h.Create(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(mockRepo)
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(`{"username":"alice","email":"nope"}`))
		h.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, testUserID).Return(User{ID: testUserID, Username: "alice"}, nil)
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/users/"+testUserID, nil)
		r.SetPathValue("id", testUserID)
		h.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, testUserID).Return(User{}, ErrNotFound)
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/users/"+testUserID, nil)
		r.SetPathValue("id", testUserID)
		h.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, testUserID).Return(User{}, errors.New("db down"))
		h := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/users/"+testUserID, nil)
		r.SetPathValue("id", testUserID)
		h.Get(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewHTTPHandler(NewService(new(mockRepo)))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/users/42", nil)
		r.SetPathValue("id", "42")
		h.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
