package review

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rev *Review) error
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rev *Review) error {
	const query = `
		INSERT INTO public.reviews (user_id, room_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, rev.UserID, rev.RoomID, rev.Rating, rev.Comment).
		Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.user_id", "u.name", "v.room_id", "v.rating", "v.comment", "v.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.reviews v").
		Join("public.users u ON v.user_id = u.id")

	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"v.room_id": filter.RoomID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"v.user_id": filter.UserID})
	}

	query = query.OrderBy("v.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID, &rev.UserID, &rev.UserName, &rev.RoomID, &rev.Rating, &rev.Comment,
			&rev.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rev)
	}

	return reviews, total, nil
}
