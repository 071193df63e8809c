package memory

import (
	"context"
	"fmt"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

type noteRepo struct {
	tx *tx
}

func (r noteRepo) Create(ctx context.Context, n agency.Note) (agency.Note, error) {
	if _, ok := r.tx.read().targets[n.TargetID]; !ok {
		return agency.Note{}, fmt.Errorf("memory: foreign key violation: target %d does not exist", n.TargetID)
	}
	st := r.tx.write()
	st.noteSeq++
	n.ID = st.noteSeq
	st.notes[n.ID] = n
	return n, nil
}

func (r noteRepo) GetByID(ctx context.Context, id int64) (agency.Note, error) {
	n, ok := r.tx.read().notes[id]
	if !ok {
		return agency.Note{}, agency.ErrNotFound
	}
	return n, nil
}

func (r noteRepo) List(ctx context.Context, p paging.Request) ([]agency.Note, int, error) {
	items, total := page(inOrder(r.tx.read().notes, nil), p)
	return items, total, nil
}

func (r noteRepo) ListByTarget(ctx context.Context, targetID int64, p paging.Request) ([]agency.Note, int, error) {
	items, total := page(inOrder(r.tx.read().notes, func(n agency.Note) bool {
		return n.TargetID == targetID
	}), p)
	return items, total, nil
}

func (r noteRepo) Update(ctx context.Context, n agency.Note) (agency.Note, error) {
	cur, ok := r.tx.read().notes[n.ID]
	if !ok {
		return agency.Note{}, agency.ErrNotFound
	}
	n.TargetID = cur.TargetID
	r.tx.write().notes[n.ID] = n
	return n, nil
}

func (r noteRepo) Delete(ctx context.Context, id int64) (agency.Note, error) {
	n, ok := r.tx.read().notes[id]
	if !ok {
		return agency.Note{}, agency.ErrNotFound
	}
	delete(r.tx.write().notes, id)
	return n, nil
}
