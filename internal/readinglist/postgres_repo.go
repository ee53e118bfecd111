package readinglist

import (
	"context"
	"database/sql"
	"time"

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

func (r *PostgresRepo) Add(ctx context.Context, userID, providerID, status string) error {
	const insertSQL = `
		INSERT INTO reading_history (user_id, book_id, status, added_at)
		SELECT $1, b.id, $3, NOW()
		FROM books b
		WHERE b.provider_id = $2
		ON CONFLICT (user_id, book_id) DO NOTHING
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, insertSQL, userID, providerID, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing inserted: either the book is not cached or it is already listed.
	const bookSQL = `SELECT EXISTS (SELECT 1 FROM books WHERE provider_id = $1)`
	var cached bool
	if err := r.db.QueryRow(timeoutCtx, bookSQL, providerID).Scan(&cached); err != nil {
		return err
	}
	if !cached {
		return ErrNotFound
	}
	return ErrAlreadyExists
}

func (r *PostgresRepo) Remove(ctx context.Context, userID, providerID string) error {
	const deleteSQL = `
		DELETE FROM reading_history rh
		USING books b
		WHERE rh.book_id = b.id AND rh.user_id = $1 AND b.provider_id = $2
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, deleteSQL, userID, providerID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, userID, status string, limit, offset int) ([]Entry, int, error) {
	const countSQL = `
		SELECT COUNT(*)
		FROM reading_history rh
		WHERE rh.user_id = $1 AND ($2 = '' OR rh.status = $2)
	`
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
		SELECT b.provider_id, b.title, b.authors, COALESCE(b.description, ''), b.categories, b.thumbnail_url,
		       b.average_rating, COALESCE(b.published_date, ''), b.page_count, COALESCE(b.language, ''), b.cached_at,
		       rh.status, rh.rating, rh.added_at
		FROM reading_history rh
		JOIN books b ON b.id = rh.book_id
		WHERE rh.user_id = $1 AND ($2 = '' OR rh.status = $2)
		ORDER BY rh.added_at DESC, rh.id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(timeoutCtx, dataSQL, userID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		b := &e.Book
		if err := rows.Scan(
			&b.ProviderID, &b.Title, &b.Authors, &b.Description, &b.Categories, &b.ThumbnailURL,
			&b.AverageRating, &b.PublishedDate, &b.PageCount, &b.Language, &b.CachedAt,
			&e.Status, &e.Rating, &e.AddedAt,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// ProviderIDs resolves the history to provider ids in one query.
func (r *PostgresRepo) ProviderIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT b.provider_id
		FROM reading_history rh
		JOIN books b ON b.id = rh.book_id
		WHERE rh.user_id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepo) Rate(ctx context.Context, userID, providerID string, star int) error {
	const updateSQL = `
		UPDATE reading_history rh
		SET rating = $3
		FROM books b
		WHERE rh.book_id = b.id AND rh.user_id = $1 AND b.provider_id = $2
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, updateSQL, userID, providerID, star)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) RatingStats(ctx context.Context, userID string) (RatingStats, error) {
	const query = `
		SELECT AVG(rating)::FLOAT, COUNT(rating)
		FROM reading_history
		WHERE user_id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var average sql.NullFloat64
	var stats RatingStats
	if err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&average, &stats.Count); err != nil {
		return RatingStats{}, err
	}
	if average.Valid {
		stats.Average = average.Float64
	}
	return stats, nil
}
