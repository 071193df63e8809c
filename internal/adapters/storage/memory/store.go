package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"
)

var _ agency.Store = (*Store)(nil)

// Store guarda todo en memoria (modo dev y tests).
// Las transacciones son serializadas y copy-on-write: la primera escritura
// clona el estado y el clon reemplaza al original solo si fn no falla.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx agency.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{base: s.st}
	if err := fn(t); err != nil {
		return err
	}
	if t.work != nil {
		s.st = t.work
	}
	return nil
}

type state struct {
	catSeq     int64
	missionSeq int64
	targetSeq  int64
	noteSeq    int64

	cats     map[int64]agency.Cat
	missions map[int64]agency.Mission
	targets  map[int64]agency.Target
	notes    map[int64]agency.Note
}

func newState() *state {
	return &state{
		cats:     map[int64]agency.Cat{},
		missions: map[int64]agency.Mission{},
		targets:  map[int64]agency.Target{},
		notes:    map[int64]agency.Note{},
	}
}

func (s *state) clone() *state {
	return &state{
		catSeq:     s.catSeq,
		missionSeq: s.missionSeq,
		targetSeq:  s.targetSeq,
		noteSeq:    s.noteSeq,
		cats:       maps.Clone(s.cats),
		missions:   maps.Clone(s.missions),
		targets:    maps.Clone(s.targets),
		notes:      maps.Clone(s.notes),
	}
}

type tx struct {
	base *state
	work *state
}

func (t *tx) read() *state {
	if t.work != nil {
		return t.work
	}
	return t.base
}

func (t *tx) write() *state {
	if t.work == nil {
		t.work = t.base.clone()
	}
	return t.work
}

func (t *tx) Cats() agency.CatRepository         { return catRepo{t} }
func (t *tx) Missions() agency.MissionRepository { return missionRepo{t} }
func (t *tx) Targets() agency.TargetRepository   { return targetRepo{t} }
func (t *tx) Notes() agency.NoteRepository       { return noteRepo{t} }

// inOrder devuelve los valores en orden de id (= orden de inserción).
func inOrder[T any](m map[int64]T, keep func(T) bool) []T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		v := m[id]
		if keep != nil && !keep(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func page[T any](items []T, p paging.Request) ([]T, int) {
	return paging.Slice(items, p), len(items)
}
