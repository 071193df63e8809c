package memory

import (
	"context"
	"fmt"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

type missionRepo struct {
	tx *tx
}

// copyMission evita compartir el puntero CatID con el caller.
func copyMission(m agency.Mission) agency.Mission {
	if m.CatID != nil {
		id := *m.CatID
		m.CatID = &id
	}
	return m
}

func (r missionRepo) Create(ctx context.Context, m agency.Mission) (agency.Mission, error) {
	if err := r.checkCat(m.CatID); err != nil {
		return agency.Mission{}, err
	}
	st := r.tx.write()
	st.missionSeq++
	m = copyMission(m)
	m.ID = st.missionSeq
	st.missions[m.ID] = m
	return copyMission(m), nil
}

func (r missionRepo) GetByID(ctx context.Context, id int64) (agency.Mission, error) {
	m, ok := r.tx.read().missions[id]
	if !ok {
		return agency.Mission{}, agency.ErrNotFound
	}
	return copyMission(m), nil
}

func (r missionRepo) List(ctx context.Context, p paging.Request) ([]agency.Mission, int, error) {
	items, total := page(inOrder(r.tx.read().missions, nil), p)
	for i := range items {
		items[i] = copyMission(items[i])
	}
	return items, total, nil
}

func (r missionRepo) ListByCat(ctx context.Context, catID int64) ([]agency.Mission, error) {
	items := inOrder(r.tx.read().missions, func(m agency.Mission) bool {
		return m.CatID != nil && *m.CatID == catID
	})
	for i := range items {
		items[i] = copyMission(items[i])
	}
	return items, nil
}

func (r missionRepo) Update(ctx context.Context, m agency.Mission) (agency.Mission, error) {
	if _, ok := r.tx.read().missions[m.ID]; !ok {
		return agency.Mission{}, agency.ErrNotFound
	}
	if err := r.checkCat(m.CatID); err != nil {
		return agency.Mission{}, err
	}
	r.tx.write().missions[m.ID] = copyMission(m)
	return copyMission(m), nil
}

// Delete borra la misión con sus targets y las notas de esos targets.
func (r missionRepo) Delete(ctx context.Context, id int64) (agency.Mission, error) {
	m, ok := r.tx.read().missions[id]
	if !ok {
		return agency.Mission{}, agency.ErrNotFound
	}

	st := r.tx.write()
	for tid, t := range st.targets {
		if t.MissionID != id {
			continue
		}
		deleteNotesOf(st, tid)
		delete(st.targets, tid)
	}
	delete(st.missions, id)
	return copyMission(m), nil
}

// checkCat emula la FK missions.cat_id -> spycats.id.
func (r missionRepo) checkCat(catID *int64) error {
	if catID == nil {
		return nil
	}
	if _, ok := r.tx.read().cats[*catID]; !ok {
		return fmt.Errorf("memory: foreign key violation: spy cat %d does not exist", *catID)
	}
	return nil
}
