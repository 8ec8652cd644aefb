package kvstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the persistent key-value collaborator the revision engine writes
// through. Get returns (nil, nil) for a missing key. GetByPrefix returns
// values in insertion order; per-key writes are atomic but there is no
// ordering guarantee across different keys beyond that.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// Postgres backs Store with the app_state table. Values are stored as JSONB;
// the seq column preserves insertion order for prefix scans. Overwriting a
// key keeps its original seq, so re-completion does not reorder listings.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = $1`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT value FROM app_state WHERE key LIKE $1 || '%' ORDER BY seq`,
		prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
	}
	return values, nil
}
