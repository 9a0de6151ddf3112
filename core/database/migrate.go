package database

import (
	"context"

	"roomboard/core/logger"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS teams (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        TEXT NOT NULL UNIQUE,
		color       TEXT NOT NULL,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name            TEXT NOT NULL UNIQUE,
		slug            TEXT NOT NULL UNIQUE,
		description     TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'FREE',
		current_team_id UUID REFERENCES teams(id),
		occupied_since  TIMESTAMPTZ,
		reserved_until  TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id         UUID NOT NULL REFERENCES rooms(id),
		team_id         UUID NOT NULL REFERENCES teams(id),
		action          TEXT NOT NULL,
		previous_status TEXT,
		new_status      TEXT NOT NULL,
		timestamp       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		archived_date   TIMESTAMPTZ
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_room ON history (room_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_history_unarchived ON history (timestamp) WHERE archived_date IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_rooms_reserved ON rooms (reserved_until) WHERE status = 'RESERVED'`,

	`CREATE TABLE IF NOT EXISTS daily_stats (
		id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		date               DATE NOT NULL UNIQUE,
		total_occupations  INTEGER NOT NULL DEFAULT 0,
		total_reservations INTEGER NOT NULL DEFAULT 0,
		most_popular_room  UUID,
		team_activity      JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS admins (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		team_id    UUID NOT NULL REFERENCES teams(id),
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the idempotent schema statements in order.
func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := d.sqlx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	logger.Info("Database:Migrate:Success", "statements", len(migrations))
	return nil
}
