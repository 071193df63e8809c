package sqlstore

import (
	"context"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

const catCols = `id, name, years_of_experience, breed, salary`

type catRepo struct {
	tx *tx
}

func scanCat(s scanner) (agency.Cat, error) {
	var c agency.Cat
	err := s.Scan(&c.ID, &c.Name, &c.YearsOfExperience, &c.Breed, &c.Salary)
	return c, err
}

func (r catRepo) Create(ctx context.Context, c agency.Cat) (agency.Cat, error) {
	err := r.tx.queryRow(ctx, `
		INSERT INTO spycats (name, years_of_experience, breed, salary)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, c.Name, c.YearsOfExperience, c.Breed, c.Salary).Scan(&c.ID)
	if err != nil {
		return agency.Cat{}, err
	}
	return c, nil
}

func (r catRepo) GetByID(ctx context.Context, id int64) (agency.Cat, error) {
	return one(r.tx.queryRow(ctx, `SELECT `+catCols+` FROM spycats WHERE id = ?`, id), scanCat)
}

func (r catRepo) List(ctx context.Context, p paging.Request) ([]agency.Cat, int, error) {
	return list(ctx, r.tx, catCols, "spycats", "", p, scanCat)
}

func (r catRepo) Update(ctx context.Context, c agency.Cat) (agency.Cat, error) {
	return one(r.tx.queryRow(ctx, `
		UPDATE spycats
		SET
			name = ?,
			years_of_experience = ?,
			breed = ?,
			salary = ?
		WHERE id = ?
		RETURNING `+catCols,
		c.Name, c.YearsOfExperience, c.Breed, c.Salary, c.ID,
	), scanCat)
}

func (r catRepo) Delete(ctx context.Context, id int64) (agency.Cat, error) {
	// La FK ya hace SET NULL; se repite explícito para no depender
	// de que SQLite tenga foreign_keys activo.
	if _, err := r.tx.exec(ctx, `UPDATE missions SET cat_id = NULL WHERE cat_id = ?`, id); err != nil {
		return agency.Cat{}, err
	}
	return one(r.tx.queryRow(ctx, `DELETE FROM spycats WHERE id = ? RETURNING `+catCols, id), scanCat)
}
