// Package archive writes completed exchanges to Postgres. It is a
// write-only audit trail alongside the workspace history file, intended for
// swarm-wide analysis; anderson itself never reads it.
package archive

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// WriteExchange records one prompt/reply pair. The prompt is the text the
// user actually typed, augmentation context excluded.
func (s *Store) WriteExchange(ctx context.Context, id uuid.UUID, model, prompt, reply string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO anderson_exchanges (id, model, prompt, reply, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		id, model, prompt, reply,
	)
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}
