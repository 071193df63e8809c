package memory

import (
	"context"
	"fmt"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

type targetRepo struct {
	tx *tx
}

func (r targetRepo) Create(ctx context.Context, t agency.Target) (agency.Target, error) {
	if _, ok := r.tx.read().missions[t.MissionID]; !ok {
		return agency.Target{}, fmt.Errorf("memory: foreign key violation: mission %d does not exist", t.MissionID)
	}
	st := r.tx.write()
	st.targetSeq++
	t.ID = st.targetSeq
	st.targets[t.ID] = t
	return t, nil
}

func (r targetRepo) GetByID(ctx context.Context, id int64) (agency.Target, error) {
	t, ok := r.tx.read().targets[id]
	if !ok {
		return agency.Target{}, agency.ErrNotFound
	}
	return t, nil
}

func (r targetRepo) List(ctx context.Context, p paging.Request) ([]agency.Target, int, error) {
	items, total := page(inOrder(r.tx.read().targets, nil), p)
	return items, total, nil
}

func (r targetRepo) ListByMission(ctx context.Context, missionID int64, p paging.Request) ([]agency.Target, int, error) {
	items, total := page(inOrder(r.tx.read().targets, func(t agency.Target) bool {
		return t.MissionID == missionID
	}), p)
	return items, total, nil
}

// Update no permite mover el target de misión: mission_id se conserva.
func (r targetRepo) Update(ctx context.Context, t agency.Target) (agency.Target, error) {
	cur, ok := r.tx.read().targets[t.ID]
	if !ok {
		return agency.Target{}, agency.ErrNotFound
	}
	t.MissionID = cur.MissionID
	r.tx.write().targets[t.ID] = t
	return t, nil
}

func (r targetRepo) Delete(ctx context.Context, id int64) (agency.Target, error) {
	t, ok := r.tx.read().targets[id]
	if !ok {
		return agency.Target{}, agency.ErrNotFound
	}
	st := r.tx.write()
	deleteNotesOf(st, id)
	delete(st.targets, id)
	return t, nil
}

func deleteNotesOf(st *state, targetID int64) {
	for nid, n := range st.notes {
		if n.TargetID == targetID {
			delete(st.notes, nid)
		}
	}
}
