package memory

import (
	"context"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

type catRepo struct {
	tx *tx
}

func (r catRepo) Create(ctx context.Context, c agency.Cat) (agency.Cat, error) {
	st := r.tx.write()
	st.catSeq++
	c.ID = st.catSeq
	st.cats[c.ID] = c
	return c, nil
}

func (r catRepo) GetByID(ctx context.Context, id int64) (agency.Cat, error) {
	c, ok := r.tx.read().cats[id]
	if !ok {
		return agency.Cat{}, agency.ErrNotFound
	}
	return c, nil
}

func (r catRepo) List(ctx context.Context, p paging.Request) ([]agency.Cat, int, error) {
	items, total := page(inOrder(r.tx.read().cats, nil), p)
	return items, total, nil
}

func (r catRepo) Update(ctx context.Context, c agency.Cat) (agency.Cat, error) {
	if _, ok := r.tx.read().cats[c.ID]; !ok {
		return agency.Cat{}, agency.ErrNotFound
	}
	r.tx.write().cats[c.ID] = c
	return c, nil
}

func (r catRepo) Delete(ctx context.Context, id int64) (agency.Cat, error) {
	c, ok := r.tx.read().cats[id]
	if !ok {
		return agency.Cat{}, agency.ErrNotFound
	}

	st := r.tx.write()
	delete(st.cats, id)

	// ON DELETE SET NULL
	for mid, m := range st.missions {
		if m.CatID != nil && *m.CatID == id {
			m.CatID = nil
			st.missions[mid] = m
		}
	}
	return c, nil
}
