package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	AddFeature(ctx context.Context, roomID, feature string) error
	AddService(ctx context.Context, roomID, service string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// featuresColumn and servicesColumn aggregate child rows into JSON arrays
// so a room loads in a single query.
const featuresColumn = `COALESCE(
	(SELECT json_agg(f.feature ORDER BY f.feature) FROM public.room_features f WHERE f.room_id = r.id),
	'[]'::json
)`

const servicesColumn = `COALESCE(
	(SELECT json_agg(s.service ORDER BY s.service) FROM public.room_services s WHERE s.room_id = r.id),
	'[]'::json
)`

func (r *pgxRepository) Create(ctx context.Context, room *Room) error {
	const query = `
		INSERT INTO public.rooms (room_number, price)
		VALUES ($1, $2)
		RETURNING id, is_available, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, room.RoomNumber, room.Price).
		Scan(&room.ID, &room.IsAvailable, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	query := fmt.Sprintf(`
		SELECT r.id, r.room_number, r.price, r.is_available, r.created_at, r.updated_at,
			%s AS features, %s AS services
		FROM public.rooms r
		WHERE r.id = $1
	`, featuresColumn, servicesColumn)

	row := r.pool.QueryRow(ctx, query, id)

	var rm Room
	var featuresJSON, servicesJSON []byte
	if err := row.Scan(
		&rm.ID, &rm.RoomNumber, &rm.Price, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt,
		&featuresJSON, &servicesJSON,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}

	unmarshalTags(rm.ID, featuresJSON, &rm.Features)
	unmarshalTags(rm.ID, servicesJSON, &rm.Services)

	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.room_number", "r.price", "r.is_available", "r.created_at", "r.updated_at",
		featuresColumn+" AS features",
		servicesColumn+" AS services",
		"count(*) OVER() as total_count",
	).From("public.rooms r")

	if filter.OnlyAvailable {
		query = query.Where(squirrel.Eq{"r.is_available": true})
	}

	query = query.OrderBy("r.room_number ASC")

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
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		var featuresJSON, servicesJSON []byte
		if err := rows.Scan(
			&rm.ID, &rm.RoomNumber, &rm.Price, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt,
			&featuresJSON, &servicesJSON, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		unmarshalTags(rm.ID, featuresJSON, &rm.Features)
		unmarshalTags(rm.ID, servicesJSON, &rm.Services)
		rooms = append(rooms, &rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) AddFeature(ctx context.Context, roomID, feature string) error {
	const query = `INSERT INTO public.room_features (room_id, feature) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, roomID, feature); err != nil {
		return fmt.Errorf("add room feature failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) AddService(ctx context.Context, roomID, service string) error {
	const query = `INSERT INTO public.room_services (room_id, service) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, roomID, service); err != nil {
		return fmt.Errorf("add room service failed: %w", err)
	}
	return nil
}

func unmarshalTags(roomID string, data []byte, dst *[]string) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("warning: failed to unmarshal tags for room %s: %v", roomID, err)
	}
}
