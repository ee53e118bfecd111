package preference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"bookrec/internal/platform/logger"
	"bookrec/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b8e9a63-2d7c-4a4e-8a3c-9e6f1d2b3c4d"

// memRepo mimics the delete-then-insert store.
type memRepo struct {
	mu       sync.Mutex
	rows     map[string][]Preference
	replaces int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string][]Preference)}
}

func (m *memRepo) ListByUser(_ context.Context, userID string) ([]Preference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Preference(nil), m.rows[userID]...), nil
}

func (m *memRepo) Replace(_ context.Context, userID string, set Set) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaces++
	delete(m.rows, userID)
	var rows []Preference
	for _, g := range set.Genres {
		rows = append(rows, Preference{UserID: userID, Kind: KindGenre, Value: g})
	}
	for _, a := range set.Authors {
		rows = append(rows, Preference{UserID: userID, Kind: KindAuthor, Value: a})
	}
	m.rows[userID] = rows
	return nil
}

type fakeUsers struct {
	exists bool
	err    error
}

func (f fakeUsers) Exists(context.Context, string) (bool, error) { return f.exists, f.err }

func TestService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("stored set equals submission", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo, fakeUsers{exists: true}, logger.NewNop())

		_, err := svc.Replace(ctx, testUserID, Set{Genres: []string{"Fantasy", "Horror"}, Authors: []string{"Tolkien"}})
		require.NoError(t, err)
		_, err = svc.Replace(ctx, testUserID, Set{Genres: []string{"Mystery"}})
		require.NoError(t, err)

		got, err := svc.Get(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Mystery"}, got.Genres)
		assert.Empty(t, got.Authors)
	})

	t.Run("idempotent", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo, fakeUsers{exists: true}, logger.NewNop())
		in := Set{Genres: []string{"Fantasy", "Science Fiction"}, Authors: []string{"Le Guin"}}

		_, err := svc.Replace(ctx, testUserID, in)
		require.NoError(t, err)
		first, _ := svc.Get(ctx, testUserID)

		_, err = svc.Replace(ctx, testUserID, in)
		require.NoError(t, err)
		second, _ := svc.Get(ctx, testUserID)

		assert.ElementsMatch(t, first.Genres, second.Genres)
		assert.ElementsMatch(t, first.Authors, second.Authors)
		assert.Equal(t, 2, repo.replaces)
	})

	t.Run("normalizes", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo, fakeUsers{exists: true}, logger.NewNop())

		set, err := svc.Replace(ctx, testUserID, Set{Genres: []string{" Fantasy ", "fantasy", "", "Horror"}, Authors: nil})
		require.NoError(t, err)
		assert.Equal(t, []string{"Fantasy", "Horror"}, set.Genres)
		assert.Equal(t, []string{}, set.Authors)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo, fakeUsers{exists: false}, logger.NewNop())

		_, err := svc.Replace(ctx, testUserID, Set{Genres: []string{"Fantasy"}})
		assert.True(t, errors.Is(err, user.ErrNotFound))
		assert.Equal(t, 0, repo.replaces)
	})
}

func TestHTTPHandler_Replace(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemRepo(), fakeUsers{exists: true}, logger.NewNop()))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/v1/users/"+testUserID+"/preferences",
			strings.NewReader(`{"genres":["Fantasy"],"authors":["Tolkien"]}`))
		r.SetPathValue("id", testUserID)
		h.Replace(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"genres":["Fantasy"]`)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemRepo(), fakeUsers{exists: false}, logger.NewNop()))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"genres":["Fantasy"]}`))
		r.SetPathValue("id", testUserID)
		h.Replace(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemRepo(), fakeUsers{exists: true}, logger.NewNop()))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"genres":`))
		r.SetPathValue("id", testUserID)
		h.Replace(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too many genres", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemRepo(), fakeUsers{exists: true}, logger.NewNop()))
		genres := make([]string, 51)
		for i := range genres {
			genres[i] = fmt.Sprintf("g%d", i)
		}
		body, _ := json.Marshal(map[string][]string{"genres": genres})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
		r.SetPathValue("id", testUserID)
		h.Replace(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"genres"`)
	})

	t.Run("store outage", func(t *testing.T) {
		h := NewHTTPHandler(NewService(newMemRepo(), fakeUsers{err: errors.New("conn refused")}, logger.NewNop()))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.SetPathValue("id", testUserID)
		h.Get(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" genre ")
	require.NoError(t, err)
	assert.Equal(t, KindGenre, k)

	_, err = ParseKind("publisher")
	assert.Error(t, err)
}
