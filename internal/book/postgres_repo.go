package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ExistsByProviderID(ctx context.Context, providerID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE provider_id = $1)`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	if err := r.db.QueryRow(timeoutCtx, query, providerID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Insert adds a book to the cache. A concurrent insert of the same provider
// id is not an error.
func (r *PostgresRepo) Insert(ctx context.Context, b Book) error {
	const sql = `
		INSERT INTO books (provider_id, title, authors, description, categories, thumbnail_url,
		                   average_rating, published_date, page_count, language, cached_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (provider_id) DO NOTHING`

	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	categories := b.Categories
	if categories == nil {
		categories = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		b.ProviderID, b.Title, authors, b.Description, categories, b.ThumbnailURL,
		b.AverageRating, b.PublishedDate, b.PageCount, b.Language,
	)
	return err
}

func (r *PostgresRepo) GetByProviderID(ctx context.Context, providerID string) (Book, error) {
	const query = `
		SELECT provider_id, title, authors, COALESCE(description, ''), categories, thumbnail_url,
		       average_rating, COALESCE(published_date, ''), page_count, COALESCE(language, ''), cached_at
		FROM books
		WHERE provider_id = $1
		LIMIT 1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, providerID).Scan(
		&b.ProviderID, &b.Title, &b.Authors, &b.Description, &b.Categories, &b.ThumbnailURL,
		&b.AverageRating, &b.PublishedDate, &b.PageCount, &b.Language, &b.CachedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}
