package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error)
	List(ctx context.Context, filter Filter) ([]*Invoice, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, inv *Invoice) error {
	const query = `
		INSERT INTO public.invoices (booking_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, inv.BookingID, inv.Amount, inv.Status).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		// The unique constraint on booking_id is the idempotency guard.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyInvoiced
		}
		return fmt.Errorf("create invoice failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error) {
	const query = `
		SELECT id, booking_id, amount, status, created_at
		FROM public.invoices
		WHERE booking_id = $1
	`
	row := r.pool.QueryRow(ctx, query, bookingID)

	var inv Invoice
	if err := row.Scan(&inv.ID, &inv.BookingID, &inv.Amount, &inv.Status, &inv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice failed: %w", err)
	}
	return &inv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Invoice, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "booking_id", "amount", "status", "created_at",
		"count(*) OVER() as total_count",
	).From("public.invoices")

	if filter.BookingID != "" {
		query = query.Where(squirrel.Eq{"booking_id": filter.BookingID})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list invoices query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices failed: %w", err)
	}
	defer rows.Close()

	var invoices []*Invoice
	var total int

	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.BookingID, &inv.Amount, &inv.Status, &inv.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan invoice failed: %w", err)
		}
		invoices = append(invoices, &inv)
	}

	return invoices, total, nil
}
