package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema de la aplicación. Las cascadas hacen el trabajo de limpieza:
// borrar un usuario arrastra sus tokens, impresoras, trabajos y grupos;
// borrar una impresora arrastra su cola y sus filas de unión.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		enabled       BOOLEAN NOT NULL DEFAULT TRUE,
		roles         TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		id      BIGSERIAL PRIMARY KEY,
		key     TEXT NOT NULL UNIQUE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS printers (
		id          BIGSERIAL PRIMARY KEY,
		instance_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		alias       TEXT NOT NULL,
		model       TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		ip          TEXT NOT NULL DEFAULT '',
		ink         INT NOT NULL DEFAULT 1,
		paper       INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id          BIGSERIAL PRIMARY KEY,
		instance_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		printer_id  BIGINT NOT NULL REFERENCES printers(id) ON DELETE CASCADE,
		queue_pos   INT NOT NULL DEFAULT 0,
		owner       TEXT NOT NULL DEFAULT '',
		file_name   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_printer_idx ON jobs (printer_id, queue_pos)`,
	`CREATE TABLE IF NOT EXISTS pgroups (
		id          BIGSERIAL PRIMARY KEY,
		instance_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS printer_groups (
		printer_id BIGINT NOT NULL REFERENCES printers(id) ON DELETE CASCADE,
		group_id   BIGINT NOT NULL REFERENCES pgroups(id) ON DELETE CASCADE,
		PRIMARY KEY (printer_id, group_id)
	)`,
}

// Migrate crea las tablas si no existen. Se ejecuta en el arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
