package preference

import (
	"context"
	"fmt"
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

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Preference, error) {
	const query = `
		SELECT user_id, kind, value
		FROM user_preferences
		WHERE user_id = $1
		ORDER BY CASE kind WHEN 'GENRE' THEN 0 ELSE 1 END, position, id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Preference
	for rows.Next() {
		var p Preference
		var kind string
		if err := rows.Scan(&p.UserID, &kind, &p.Value); err != nil {
			return nil, err
		}
		p.Kind = Kind(kind)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Replace(ctx context.Context, userID string, set Set) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(timeoutCtx) }()

	if _, err := tx.Exec(timeoutCtx, `DELETE FROM user_preferences WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}

	const insertSQL = `
		INSERT INTO user_preferences (user_id, kind, value, position, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	batch := &pgx.Batch{}
	for i, g := range set.Genres {
		batch.Queue(insertSQL, userID, string(KindGenre), g, i)
	}
	for i, a := range set.Authors {
		batch.Queue(insertSQL, userID, string(KindAuthor), a, i)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(timeoutCtx, batch).Close(); err != nil {
			return fmt.Errorf("insert preferences: %w", err)
		}
	}

	return tx.Commit(timeoutCtx)
}
