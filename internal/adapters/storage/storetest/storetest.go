// Package storetest contiene la batería de contrato que todo agency.Store
// debe pasar (memory, sqlite, postgres).
package storetest

import (
	"context"
	"errors"
	"testing"

	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/paging"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory crea un store vacío para cada subtest.
type Factory func(t *testing.T) agency.Store

var errBoom = errors.New("boom")

func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("CatRoundTrip", func(t *testing.T) { testCatRoundTrip(t, newStore(t)) })
	t.Run("NotFound", func(t *testing.T) { testNotFound(t, newStore(t)) })
	t.Run("ListPagination", func(t *testing.T) { testListPagination(t, newStore(t)) })
	t.Run("MissionCatID", func(t *testing.T) { testMissionCatID(t, newStore(t)) })
	t.Run("MissionDeleteCascades", func(t *testing.T) { testMissionDeleteCascades(t, newStore(t)) })
	t.Run("TargetDeleteCascades", func(t *testing.T) { testTargetDeleteCascades(t, newStore(t)) })
	t.Run("CatDeleteUnassigns", func(t *testing.T) { testCatDeleteUnassigns(t, newStore(t)) })
	t.Run("RollbackOnError", func(t *testing.T) { testRollbackOnError(t, newStore(t)) })
	t.Run("ScopedLists", func(t *testing.T) { testScopedLists(t, newStore(t)) })
}

// in ejecuta fn en una transacción y falla el test si hay error.
func in(t *testing.T, s agency.Store, fn func(ctx context.Context, tx agency.Tx)) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.WithinTx(ctx, func(tx agency.Tx) error {
		fn(ctx, tx)
		return nil
	}))
}

func testCatRoundTrip(t *testing.T, s agency.Store) {
	want := agency.Cat{Name: "Whiskers", YearsOfExperience: 5, Breed: "Siamese", Salary: 50000.5}

	var first, second agency.Cat
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		var err error
		first, err = tx.Cats().Create(ctx, want)
		require.NoError(t, err)
		second, err = tx.Cats().Create(ctx, agency.Cat{Name: "Tom", Breed: "Persian"})
		require.NoError(t, err)
	})

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID, "ids must be monotonic")

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		got, err := tx.Cats().GetByID(ctx, first.ID)
		require.NoError(t, err)
		want.ID = first.ID
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("cat mismatch (-want +got):\n%s", diff)
		}

		got.Name = "Whiskers II"
		got.Salary = 0
		updated, err := tx.Cats().Update(ctx, got)
		require.NoError(t, err)
		assert.Equal(t, got, updated)
	})

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		got, err := tx.Cats().GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Whiskers II", got.Name)
		assert.Zero(t, got.Salary)
	})
}

func testNotFound(t *testing.T, s agency.Store) {
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		_, err := tx.Cats().GetByID(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)
		_, err = tx.Cats().Update(ctx, agency.Cat{ID: 999, Name: "x", Breed: "y"})
		assert.ErrorIs(t, err, agency.ErrNotFound)
		_, err = tx.Cats().Delete(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)

		_, err = tx.Missions().GetByID(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)
		_, err = tx.Missions().Delete(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)

		_, err = tx.Targets().GetByID(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)
		_, err = tx.Targets().Update(ctx, agency.Target{ID: 999, Name: "n", Country: "c"})
		assert.ErrorIs(t, err, agency.ErrNotFound)

		_, err = tx.Notes().GetByID(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)
		_, err = tx.Notes().Delete(ctx, 999)
		assert.ErrorIs(t, err, agency.ErrNotFound)
	})
}

func testListPagination(t *testing.T, s agency.Store) {
	names := []string{"a", "b", "c", "d", "e"}
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		for _, n := range names {
			_, err := tx.Cats().Create(ctx, agency.Cat{Name: n, Breed: "Bengal"})
			require.NoError(t, err)
		}
	})

	namesOf := func(cats []agency.Cat) []string {
		out := make([]string, 0, len(cats))
		for _, c := range cats {
			out = append(out, c.Name)
		}
		return out
	}

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		all, total, err := tx.Cats().List(ctx, paging.New(0, 0))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Equal(t, names, namesOf(all))

		pageItems, total, err := tx.Cats().List(ctx, paging.New(1, 2))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Equal(t, []string{"b", "c"}, namesOf(pageItems))

		tail, total, err := tx.Cats().List(ctx, paging.New(3, 0))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Equal(t, []string{"d", "e"}, namesOf(tail))

		empty, total, err := tx.Cats().List(ctx, paging.New(10, 3))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, empty)
	})
}

func testMissionCatID(t *testing.T, s agency.Store) {
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		cat, err := tx.Cats().Create(ctx, agency.Cat{Name: "Tom", Breed: "Persian"})
		require.NoError(t, err)

		unassigned, err := tx.Missions().Create(ctx, agency.Mission{})
		require.NoError(t, err)
		assert.Nil(t, unassigned.CatID)
		assert.False(t, unassigned.IsComplete)

		catID := cat.ID
		assigned, err := tx.Missions().Create(ctx, agency.Mission{CatID: &catID, IsComplete: true})
		require.NoError(t, err)

		got, err := tx.Missions().GetByID(ctx, assigned.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CatID)
		assert.Equal(t, cat.ID, *got.CatID)
		assert.True(t, got.IsComplete)

		byCat, err := tx.Missions().ListByCat(ctx, cat.ID)
		require.NoError(t, err)
		require.Len(t, byCat, 1)
		assert.Equal(t, assigned.ID, byCat[0].ID)

		got.CatID = nil
		got.IsComplete = false
		_, err = tx.Missions().Update(ctx, got)
		require.NoError(t, err)

		again, err := tx.Missions().GetByID(ctx, assigned.ID)
		require.NoError(t, err)
		assert.Nil(t, again.CatID)
		assert.False(t, again.IsComplete)
	})
}

// seedMission crea una misión con n targets y m notas por target.
func seedMission(t *testing.T, s agency.Store, n, m int) (agency.Mission, []agency.Target, []agency.Note) {
	t.Helper()
	var (
		mission agency.Mission
		targets []agency.Target
		notes   []agency.Note
	)
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		var err error
		mission, err = tx.Missions().Create(ctx, agency.Mission{})
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			tg, err := tx.Targets().Create(ctx, agency.Target{MissionID: mission.ID, Name: "T", Country: "C"})
			require.NoError(t, err)
			targets = append(targets, tg)
			for j := 0; j < m; j++ {
				note, err := tx.Notes().Create(ctx, agency.Note{TargetID: tg.ID, Content: "seen"})
				require.NoError(t, err)
				notes = append(notes, note)
			}
		}
	})
	return mission, targets, notes
}

func testMissionDeleteCascades(t *testing.T, s agency.Store) {
	mission, targets, notes := seedMission(t, s, 3, 2)
	other, otherTargets, otherNotes := seedMission(t, s, 1, 1)

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		deleted, err := tx.Missions().Delete(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.ID, deleted.ID)
	})

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		for _, tg := range targets {
			_, err := tx.Targets().GetByID(ctx, tg.ID)
			assert.ErrorIs(t, err, agency.ErrNotFound)
		}
		for _, n := range notes {
			_, err := tx.Notes().GetByID(ctx, n.ID)
			assert.ErrorIs(t, err, agency.ErrNotFound)
		}

		_, total, err := tx.Targets().List(ctx, paging.All())
		require.NoError(t, err)
		assert.Equal(t, len(otherTargets), total)
		_, total, err = tx.Notes().List(ctx, paging.All())
		require.NoError(t, err)
		assert.Equal(t, len(otherNotes), total)

		_, err = tx.Missions().GetByID(ctx, other.ID)
		assert.NoError(t, err)
	})
}

func testTargetDeleteCascades(t *testing.T, s agency.Store) {
	_, targets, _ := seedMission(t, s, 2, 3)

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		_, err := tx.Targets().Delete(ctx, targets[0].ID)
		require.NoError(t, err)
	})

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		gone, total, err := tx.Notes().ListByTarget(ctx, targets[0].ID, paging.All())
		require.NoError(t, err)
		assert.Empty(t, gone)
		assert.Zero(t, total)

		kept, total, err := tx.Notes().ListByTarget(ctx, targets[1].ID, paging.All())
		require.NoError(t, err)
		assert.Len(t, kept, 3)
		assert.Equal(t, 3, total)
	})
}

func testCatDeleteUnassigns(t *testing.T, s agency.Store) {
	var mission agency.Mission
	var cat agency.Cat
	in(t, s, func(ctx context.Context, tx agency.Tx) {
		var err error
		cat, err = tx.Cats().Create(ctx, agency.Cat{Name: "Tom", Breed: "Persian"})
		require.NoError(t, err)
		id := cat.ID
		mission, err = tx.Missions().Create(ctx, agency.Mission{CatID: &id})
		require.NoError(t, err)
	})

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		_, err := tx.Cats().Delete(ctx, cat.ID)
		require.NoError(t, err)
	})

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		m, err := tx.Missions().GetByID(ctx, mission.ID)
		require.NoError(t, err)
		assert.Nil(t, m.CatID)
	})
}

func testRollbackOnError(t *testing.T, s agency.Store) {
	ctx := context.Background()
	err := s.WithinTx(ctx, func(tx agency.Tx) error {
		m, err := tx.Missions().Create(ctx, agency.Mission{})
		if err != nil {
			return err
		}
		if _, err := tx.Targets().Create(ctx, agency.Target{MissionID: m.ID, Name: "T1", Country: "C1"}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		_, total, err := tx.Missions().List(ctx, paging.All())
		require.NoError(t, err)
		assert.Zero(t, total)
		_, total, err = tx.Targets().List(ctx, paging.All())
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func testScopedLists(t *testing.T, s agency.Store) {
	first, firstTargets, _ := seedMission(t, s, 3, 0)
	second, _, _ := seedMission(t, s, 2, 0)

	in(t, s, func(ctx context.Context, tx agency.Tx) {
		items, total, err := tx.Targets().ListByMission(ctx, first.ID, paging.New(1, 1))
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, items, 1)
		assert.Equal(t, firstTargets[1].ID, items[0].ID)

		_, total, err = tx.Targets().ListByMission(ctx, second.ID, paging.All())
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		_, total, err = tx.Targets().List(ctx, paging.New(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})
}
