package sqlstore

import (
	"context"
	"database/sql"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

const missionCols = `id, cat_id, is_complete`

type missionRepo struct {
	tx *tx
}

func scanMission(s scanner) (agency.Mission, error) {
	var (
		m     agency.Mission
		catID sql.NullInt64
	)
	if err := s.Scan(&m.ID, &catID, &m.IsComplete); err != nil {
		return agency.Mission{}, err
	}
	if catID.Valid {
		id := catID.Int64
		m.CatID = &id
	}
	return m, nil
}

func toNullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func (r missionRepo) Create(ctx context.Context, m agency.Mission) (agency.Mission, error) {
	return one(r.tx.queryRow(ctx, `
		INSERT INTO missions (cat_id, is_complete)
		VALUES (?, ?)
		RETURNING `+missionCols,
		toNullID(m.CatID), m.IsComplete,
	), scanMission)
}

func (r missionRepo) GetByID(ctx context.Context, id int64) (agency.Mission, error) {
	return one(r.tx.queryRow(ctx, `SELECT `+missionCols+` FROM missions WHERE id = ?`, id), scanMission)
}

func (r missionRepo) List(ctx context.Context, p paging.Request) ([]agency.Mission, int, error) {
	return list(ctx, r.tx, missionCols, "missions", "", p, scanMission)
}

func (r missionRepo) ListByCat(ctx context.Context, catID int64) ([]agency.Mission, error) {
	items, _, err := list(ctx, r.tx, missionCols, "missions", "cat_id = ?", paging.All(), scanMission, catID)
	return items, err
}

func (r missionRepo) Update(ctx context.Context, m agency.Mission) (agency.Mission, error) {
	return one(r.tx.queryRow(ctx, `
		UPDATE missions
		SET
			cat_id = ?,
			is_complete = ?
		WHERE id = ?
		RETURNING `+missionCols,
		toNullID(m.CatID), m.IsComplete, m.ID,
	), scanMission)
}

// Delete borra notas y targets de la misión antes que la misión misma.
func (r missionRepo) Delete(ctx context.Context, id int64) (agency.Mission, error) {
	if _, err := r.tx.exec(ctx, `
		DELETE FROM notes
		WHERE target_id IN (SELECT id FROM targets WHERE mission_id = ?)
	`, id); err != nil {
		return agency.Mission{}, err
	}
	if _, err := r.tx.exec(ctx, `DELETE FROM targets WHERE mission_id = ?`, id); err != nil {
		return agency.Mission{}, err
	}
	return one(r.tx.queryRow(ctx, `DELETE FROM missions WHERE id = ? RETURNING `+missionCols, id), scanMission)
}
