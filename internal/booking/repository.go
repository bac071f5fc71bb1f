package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Book atomically checks the room's availability, flips it to false and
	// inserts the booking. The check and the flip happen inside one
	// transaction holding a row lock on the room, so concurrent Book calls
	// for the same room serialize: one wins, the rest get ErrRoomUnavailable.
	// On success it fills the booking's ID, room number, price snapshot and
	// timestamps.
	Book(ctx context.Context, b *Booking) error

	// Cancel atomically marks the booking cancelled and restores the room's
	// availability. A booking that is not in status booked yields
	// ErrAlreadyCancelled and no state change.
	Cancel(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Book(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Row lock: a concurrent Book on the same room blocks here until this
	// transaction commits, then observes is_available = false.
	const lockQuery = `
		SELECT room_number, price, is_available
		FROM public.rooms
		WHERE id = $1
		FOR UPDATE
	`
	var available bool
	if err := tx.QueryRow(ctx, lockQuery, b.RoomID).
		Scan(&b.RoomNumber, &b.PriceAtBooking, &available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("lock room failed: %w", err)
	}
	if !available {
		return ErrRoomUnavailable
	}

	const flipQuery = `
		UPDATE public.rooms
		SET is_available = false, updated_at = now()
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, flipQuery, b.RoomID); err != nil {
		return fmt.Errorf("flip room availability failed: %w", err)
	}

	const insertQuery = `
		INSERT INTO public.bookings (user_id, room_id, check_in, check_out, price_at_booking, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(ctx, insertQuery,
		b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.PriceAtBooking, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const lockQuery = `
		SELECT room_id, status
		FROM public.bookings
		WHERE id = $1
		FOR UPDATE
	`
	var roomID string
	var status Status
	if err := tx.QueryRow(ctx, lockQuery, id).Scan(&roomID, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock booking failed: %w", err)
	}
	if status != StatusBooked {
		return ErrAlreadyCancelled
	}

	const cancelQuery = `
		UPDATE public.bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`
	if _, err := tx.Exec(ctx, cancelQuery, StatusCancelled, id); err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}

	const restoreQuery = `
		UPDATE public.rooms
		SET is_available = true, updated_at = now()
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, restoreQuery, roomID); err != nil {
		return fmt.Errorf("restore room availability failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT b.id, b.user_id, u.name, b.room_id, r.room_number,
			b.check_in, b.check_out, b.price_at_booking, b.status,
			b.created_at, b.updated_at
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.RoomID, &b.RoomNumber,
		&b.CheckIn, &b.CheckOut, &b.PriceAtBooking, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "u.name", "b.room_id", "r.room_number",
		"b.check_in", "b.check_out", "b.price_at_booking", "b.status",
		"b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	query = query.OrderBy("b.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.RoomID, &b.RoomNumber,
			&b.CheckIn, &b.CheckOut, &b.PriceAtBooking, &b.Status,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}
