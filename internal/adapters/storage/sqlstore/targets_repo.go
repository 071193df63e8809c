package sqlstore

import (
	"context"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

const targetCols = `id, mission_id, name, country, is_complete`

type targetRepo struct {
	tx *tx
}

func scanTarget(s scanner) (agency.Target, error) {
	var t agency.Target
	err := s.Scan(&t.ID, &t.MissionID, &t.Name, &t.Country, &t.IsComplete)
	return t, err
}

func (r targetRepo) Create(ctx context.Context, t agency.Target) (agency.Target, error) {
	return one(r.tx.queryRow(ctx, `
		INSERT INTO targets (mission_id, name, country, is_complete)
		VALUES (?, ?, ?, ?)
		RETURNING `+targetCols,
		t.MissionID, t.Name, t.Country, t.IsComplete,
	), scanTarget)
}

func (r targetRepo) GetByID(ctx context.Context, id int64) (agency.Target, error) {
	return one(r.tx.queryRow(ctx, `SELECT `+targetCols+` FROM targets WHERE id = ?`, id), scanTarget)
}

func (r targetRepo) List(ctx context.Context, p paging.Request) ([]agency.Target, int, error) {
	return list(ctx, r.tx, targetCols, "targets", "", p, scanTarget)
}

func (r targetRepo) ListByMission(ctx context.Context, missionID int64, p paging.Request) ([]agency.Target, int, error) {
	return list(ctx, r.tx, targetCols, "targets", "mission_id = ?", p, scanTarget, missionID)
}

// Update no toca mission_id.
func (r targetRepo) Update(ctx context.Context, t agency.Target) (agency.Target, error) {
	return one(r.tx.queryRow(ctx, `
		UPDATE targets
		SET
			name = ?,
			country = ?,
			is_complete = ?
		WHERE id = ?
		RETURNING `+targetCols,
		t.Name, t.Country, t.IsComplete, t.ID,
	), scanTarget)
}

func (r targetRepo) Delete(ctx context.Context, id int64) (agency.Target, error) {
	if _, err := r.tx.exec(ctx, `DELETE FROM notes WHERE target_id = ?`, id); err != nil {
		return agency.Target{}, err
	}
	return one(r.tx.queryRow(ctx, `DELETE FROM targets WHERE id = ? RETURNING `+targetCols, id), scanTarget)
}
