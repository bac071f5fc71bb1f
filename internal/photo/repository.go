package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Photo, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Photo) error {
	const query = `
		INSERT INTO public.room_photos (id, room_id, filename, storage_path, thumbnail_path, content_type, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.RoomID, p.Filename, p.StoragePath, p.ThumbnailPath, p.ContentType, p.Size,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create photo failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Photo, error) {
	const query = `
		SELECT id, room_id, filename, storage_path, thumbnail_path, content_type, size, created_at
		FROM public.room_photos
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var p Photo
	if err := row.Scan(
		&p.ID, &p.RoomID, &p.Filename, &p.StoragePath, &p.ThumbnailPath,
		&p.ContentType, &p.Size, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get photo failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListByRoom(ctx context.Context, roomID string) ([]*Photo, error) {
	const query = `
		SELECT id, room_id, filename, storage_path, thumbnail_path, content_type, size, created_at
		FROM public.room_photos
		WHERE room_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list photos failed: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(
			&p.ID, &p.RoomID, &p.Filename, &p.StoragePath, &p.ThumbnailPath,
			&p.ContentType, &p.Size, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan photo failed: %w", err)
		}
		photos = append(photos, &p)
	}

	return photos, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.room_photos WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
