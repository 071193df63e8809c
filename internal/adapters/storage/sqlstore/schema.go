package sqlstore

import (
	"context"
	"fmt"

	"spy-cat-agency/internal/platform/paging"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS spycats (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT    NOT NULL,
		years_of_experience INTEGER NOT NULL CHECK (years_of_experience >= 0),
		breed               TEXT    NOT NULL,
		salary              REAL    NOT NULL CHECK (salary >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS missions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		cat_id      INTEGER REFERENCES spycats(id) ON DELETE SET NULL,
		is_complete BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS targets (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		mission_id  INTEGER NOT NULL REFERENCES missions(id) ON DELETE CASCADE,
		name        TEXT    NOT NULL,
		country     TEXT    NOT NULL,
		is_complete BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		target_id INTEGER NOT NULL REFERENCES targets(id) ON DELETE CASCADE,
		content   TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_missions_cat_id ON missions(cat_id)`,
	`CREATE INDEX IF NOT EXISTS idx_targets_mission_id ON targets(mission_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_target_id ON notes(target_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS spycats (
		id                  BIGSERIAL PRIMARY KEY,
		name                TEXT             NOT NULL,
		years_of_experience INTEGER          NOT NULL CHECK (years_of_experience >= 0),
		breed               TEXT             NOT NULL,
		salary              DOUBLE PRECISION NOT NULL CHECK (salary >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS missions (
		id          BIGSERIAL PRIMARY KEY,
		cat_id      BIGINT REFERENCES spycats(id) ON DELETE SET NULL,
		is_complete BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS targets (
		id          BIGSERIAL PRIMARY KEY,
		mission_id  BIGINT  NOT NULL REFERENCES missions(id) ON DELETE CASCADE,
		name        TEXT    NOT NULL,
		country     TEXT    NOT NULL,
		is_complete BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id        BIGSERIAL PRIMARY KEY,
		target_id BIGINT NOT NULL REFERENCES targets(id) ON DELETE CASCADE,
		content   TEXT   NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_missions_cat_id ON missions(cat_id)`,
	`CREATE INDEX IF NOT EXISTS idx_targets_mission_id ON targets(mission_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_target_id ON notes(target_id)`,
}

func (d Dialect) schema() []string {
	if d == DialectPostgres {
		return postgresSchema
	}
	return sqliteSchema
}

// Migrate crea las tablas si no existen. Es idempotente.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migrate: %w", err)
		}
	}
	return nil
}

// pageClause arma el LIMIT/OFFSET para la ventana pedida.
// SQLite no acepta OFFSET sin LIMIT, por eso usa LIMIT -1.
func (d Dialect) pageClause(p paging.Request) (string, []any) {
	p = paging.New(p.Offset, p.Limit)
	switch {
	case !p.Unbounded():
		return " LIMIT ? OFFSET ?", []any{p.Limit, p.Offset}
	case p.Offset > 0 && d == DialectSQLite:
		return " LIMIT -1 OFFSET ?", []any{p.Offset}
	case p.Offset > 0:
		return " OFFSET ?", []any{p.Offset}
	default:
		return "", nil
	}
}
