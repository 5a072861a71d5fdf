package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migration represents one database migration step.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []Migration{
		{Name: "create_resumes_table", Up: createResumesTable},
		{Name: "create_contact_messages_table", Up: createContactMessagesTable},
		{Name: "create_users_table", Up: createUsersTable},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	return nil
}

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id         UUID PRIMARY KEY,
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createContactMessagesTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id              UUID PRIMARY KEY,
			name            TEXT NOT NULL,
			email           TEXT NOT NULL,
			subject         TEXT NOT NULL,
			message         TEXT NOT NULL,
			recipient_email TEXT NOT NULL,
			status          TEXT NOT NULL DEFAULT 'new',
			source_ip       TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx
			ON contact_messages (created_at DESC);
	`)
	return err
}

func createUsersTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'admin',
			last_login    TIMESTAMPTZ,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}
