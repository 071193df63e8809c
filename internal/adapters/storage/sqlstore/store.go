package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

var _ agency.Store = (*Store)(nil)

type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New envuelve un *sql.DB ya abierto. No aplica el schema (ver Migrate).
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

// WithinTx ejecuta fn en una transacción SQL. Si fn devuelve error
// (o hace panic) se hace rollback; si no, commit.
func (s *Store) WithinTx(ctx context.Context, fn func(tx agency.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = sqlTx.Rollback()
		}
	}()

	if err := fn(&tx{tx: sqlTx, dialect: s.dialect}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit: %w", err)
	}
	committed = true
	return nil
}

type tx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *tx) Cats() agency.CatRepository         { return catRepo{t} }
func (t *tx) Missions() agency.MissionRepository { return missionRepo{t} }
func (t *tx) Targets() agency.TargetRepository   { return targetRepo{t} }
func (t *tx) Notes() agency.NoteRepository       { return noteRepo{t} }

func (t *tx) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.dialect.rebind(query), args...)
}

func (t *tx) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, t.dialect.rebind(query), args...)
}

func (t *tx) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, t.dialect.rebind(query), args...)
}

// count ejecuta un SELECT COUNT(*) con el filtro dado.
func (t *tx) count(ctx context.Context, table, where string, args ...any) (int, error) {
	q := "SELECT COUNT(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	if err := t.queryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// list ejecuta SELECT cols FROM table [WHERE] ORDER BY id + ventana,
// y devuelve también el total sin paginar.
func list[T any](ctx context.Context, t *tx, cols, table, where string, p paging.Request, scan func(scanner) (T, error), args ...any) ([]T, int, error) {
	total, err := t.count(ctx, table, where, args...)
	if err != nil {
		return nil, 0, err
	}

	q := "SELECT " + cols + " FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY id ASC"
	clause, pageArgs := t.dialect.pageClause(p)
	q += clause

	rows, err := t.query(ctx, q, append(append([]any{}, args...), pageArgs...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// one mapea sql.ErrNoRows a agency.ErrNotFound.
func one[T any](row *sql.Row, scan func(scanner) (T, error)) (T, error) {
	v, err := scan(row)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, agency.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}
