// README: Generation-ledger persistence backed by Postgres.
package usage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles generation_log persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one ledger entry.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO generation_log (kind, model, prompt_chars, reply_chars, duration_ms, ok, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, e.Kind, e.Model, e.PromptChars, e.ReplyChars, e.DurationMS, e.OK)
	return err
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, kind, model, prompt_chars, reply_chars, duration_ms, ok, created_at
		FROM generation_log
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Model, &e.PromptChars, &e.ReplyChars, &e.DurationMS, &e.OK, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
