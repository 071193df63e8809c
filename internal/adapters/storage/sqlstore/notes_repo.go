package sqlstore

import (
	"context"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

const noteCols = `id, target_id, content`

type noteRepo struct {
	tx *tx
}

func scanNote(s scanner) (agency.Note, error) {
	var n agency.Note
	err := s.Scan(&n.ID, &n.TargetID, &n.Content)
	return n, err
}

func (r noteRepo) Create(ctx context.Context, n agency.Note) (agency.Note, error) {
	return one(r.tx.queryRow(ctx, `
		INSERT INTO notes (target_id, content)
		VALUES (?, ?)
		RETURNING `+noteCols,
		n.TargetID, n.Content,
	), scanNote)
}

func (r noteRepo) GetByID(ctx context.Context, id int64) (agency.Note, error) {
	return one(r.tx.queryRow(ctx, `SELECT `+noteCols+` FROM notes WHERE id = ?`, id), scanNote)
}

func (r noteRepo) List(ctx context.Context, p paging.Request) ([]agency.Note, int, error) {
	return list(ctx, r.tx, noteCols, "notes", "", p, scanNote)
}

func (r noteRepo) ListByTarget(ctx context.Context, targetID int64, p paging.Request) ([]agency.Note, int, error) {
	return list(ctx, r.tx, noteCols, "notes", "target_id = ?", p, scanNote, targetID)
}

// Update no toca target_id.
func (r noteRepo) Update(ctx context.Context, n agency.Note) (agency.Note, error) {
	return one(r.tx.queryRow(ctx, `
		UPDATE notes
		SET content = ?
		WHERE id = ?
		RETURNING `+noteCols,
		n.Content, n.ID,
	), scanNote)
}

func (r noteRepo) Delete(ctx context.Context, id int64) (agency.Note, error) {
	return one(r.tx.queryRow(ctx, `DELETE FROM notes WHERE id = ? RETURNING `+noteCols, id), scanNote)
}
