package site

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Setting, error)
	SetActive(ctx context.Context, active bool) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Get(ctx context.Context) (*Setting, error) {
	const query = `SELECT is_active, updated_at FROM public.site_settings WHERE id = 1`

	var s Setting
	if err := r.pool.QueryRow(ctx, query).Scan(&s.IsActive, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing row means the site was never disabled.
			return &Setting{IsActive: true}, nil
		}
		return nil, fmt.Errorf("get site setting failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) SetActive(ctx context.Context, active bool) error {
	const query = `
		INSERT INTO public.site_settings (id, is_active, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET is_active = $1, updated_at = now()
	`
	if _, err := r.pool.Exec(ctx, query, active); err != nil {
		return fmt.Errorf("set site active failed: %w", err)
	}
	return nil
}
