package search

import (
	"context"
	"sync"

	"bookrec/internal/book"
	"bookrec/internal/platform/logger"
	"bookrec/internal/platform/metrics"
)

// BookStore is the part of the book cache the writer needs.
type BookStore interface {
	ExistsByProviderID(ctx context.Context, providerID string) (bool, error)
	Insert(ctx context.Context, b book.Book) error
}

// CacheWriter persists newly seen books in the background. Enqueue never
// blocks: when the queue is full the book is dropped.
type CacheWriter struct {
	store BookStore
	log   *logger.Logger

	mu     sync.Mutex
	closed bool
	queue  chan book.Book
	done   chan struct{}
}

func NewCacheWriter(store BookStore, queueSize int, log *logger.Logger) *CacheWriter {
	if queueSize <= 0 {
		queueSize = 256
	}
	w := &CacheWriter{
		store: store,
		log:   log.With("component", "book_cache_writer"),
		queue: make(chan book.Book, queueSize),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue schedules b for caching. Books without a provider id are ignored.
func (w *CacheWriter) Enqueue(b book.Book) {
	if b.ProviderID == "" {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.queue <- b:
	default:
		metrics.BookCacheWrites.WithLabelValues("dropped").Inc()
		w.log.Debug("book cache queue full, dropping", "provider_id", b.ProviderID)
	}
}

// Close stops accepting books and waits until the queue is drained.
func (w *CacheWriter) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	<-w.done
}

func (w *CacheWriter) run() {
	defer close(w.done)
	for b := range w.queue {
		w.write(b)
	}
}

func (w *CacheWriter) write(b book.Book) {
	ctx := context.Background()

	exists, err := w.store.ExistsByProviderID(ctx, b.ProviderID)
	if err != nil {
		metrics.BookCacheWrites.WithLabelValues("error").Inc()
		w.log.Warn("book cache lookup failed", "provider_id", b.ProviderID, "error", err)
		return
	}
	if exists {
		metrics.BookCacheWrites.WithLabelValues("exists").Inc()
		return
	}

	b.Score = 0
	if err := w.store.Insert(ctx, b); err != nil {
		metrics.BookCacheWrites.WithLabelValues("error").Inc()
		w.log.Warn("book cache insert failed", "provider_id", b.ProviderID, "error", err)
		return
	}
	metrics.BookCacheWrites.WithLabelValues("inserted").Inc()
}
