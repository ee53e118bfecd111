package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bookrec/internal/book"
	"bookrec/internal/platform/logger"

	"github.com/stretchr/testify/assert"
)

type memBookStore struct {
	mu        sync.Mutex
	books     map[string]book.Book
	insertErr error
	inserts   int
}

func newMemBookStore(existing ...string) *memBookStore {
	s := &memBookStore{books: make(map[string]book.Book)}
	for _, id := range existing {
		s.books[id] = book.Book{ProviderID: id}
	}
	return s
}

func (s *memBookStore) ExistsByProviderID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.books[id]
	return ok, nil
}

func (s *memBookStore) Insert(_ context.Context, b book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.books[b.ProviderID] = b
	return nil
}

func TestCacheWriter_InsertsOnlyNewBooks(t *testing.T) {
	store := newMemBookStore("old")
	w := NewCacheWriter(store, 16, logger.NewNop())

	w.Enqueue(book.Book{ProviderID: "old", Title: "Old"})
	w.Enqueue(book.Book{ProviderID: "new", Title: "New", Score: 42})
	w.Enqueue(book.Book{ProviderID: "new", Title: "New"})
	w.Enqueue(book.Book{Title: "no id"})
	w.Close()

	assert.Equal(t, 1, store.inserts)
	assert.Len(t, store.books, 2)
	assert.Zero(t, store.books["new"].Score)
}

func TestCacheWriter_InsertFailureIsSwallowed(t *testing.T) {
	store := newMemBookStore()
	store.insertErr = errors.New("db down")
	w := NewCacheWriter(store, 4, logger.NewNop())

	w.Enqueue(book.Book{ProviderID: "a"})
	w.Close()

	assert.Equal(t, 1, store.inserts)
	assert.Empty(t, store.books)
}

func TestCacheWriter_EnqueueAfterClose(t *testing.T) {
	store := newMemBookStore()
	w := NewCacheWriter(store, 4, logger.NewNop())
	w.Close()

	assert.NotPanics(t, func() { w.Enqueue(book.Book{ProviderID: "a"}) })
	assert.NotPanics(t, w.Close)
	assert.Zero(t, store.inserts)
}
