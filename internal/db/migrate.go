package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order at startup. Every statement must be
// idempotent since the whole list runs on each boot.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS public.users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		email text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		is_admin boolean NOT NULL DEFAULT false,
		is_banned boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.rooms (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		room_number text NOT NULL UNIQUE,
		price numeric(10,2) NOT NULL CHECK (price >= 0),
		is_available boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.room_features (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id uuid NOT NULL REFERENCES public.rooms(id) ON DELETE CASCADE,
		feature text NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS public.room_services (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id uuid NOT NULL REFERENCES public.rooms(id) ON DELETE CASCADE,
		service text NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS public.bookings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id uuid NOT NULL REFERENCES public.users(id),
		room_id uuid NOT NULL REFERENCES public.rooms(id),
		check_in date NOT NULL,
		check_out date NOT NULL,
		price_at_booking numeric(10,2) NOT NULL,
		status text NOT NULL DEFAULT 'booked',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CHECK (check_out > check_in)
	)`,

	`CREATE TABLE IF NOT EXISTS public.invoices (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		booking_id uuid NOT NULL UNIQUE REFERENCES public.bookings(id),
		amount numeric(10,2) NOT NULL,
		status text NOT NULL DEFAULT 'paid',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.reviews (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id uuid NOT NULL REFERENCES public.users(id),
		room_id uuid NOT NULL REFERENCES public.rooms(id),
		rating int NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.room_photos (
		id uuid PRIMARY KEY,
		room_id uuid NOT NULL REFERENCES public.rooms(id) ON DELETE CASCADE,
		filename text NOT NULL,
		storage_path text NOT NULL,
		thumbnail_path text,
		content_type text NOT NULL,
		size bigint NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.site_settings (
		id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		is_active boolean NOT NULL DEFAULT true,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`INSERT INTO public.site_settings (id, is_active)
		VALUES (1, true)
		ON CONFLICT (id) DO NOTHING`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
