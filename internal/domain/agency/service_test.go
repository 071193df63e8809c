package agency_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"spy-cat-agency/internal/adapters/storage/memory"
	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/platform/logger"
	"spy-cat-agency/internal/platform/paging"
	"spy-cat-agency/internal/ports/breeds"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fixtures
// -------------------------

var errCatalogDown = errors.New("catalog down")

// fakeCatalog conoce un puñado de razas; down simula la API caída.
type fakeCatalog struct {
	known map[string]bool
	down  bool
	calls int
}

func newFakeCatalog(names ...string) *fakeCatalog {
	f := &fakeCatalog{known: map[string]bool{}}
	for _, n := range names {
		f.known[strings.ToLower(n)] = true
	}
	return f
}

func (f *fakeCatalog) Contains(ctx context.Context, breed string) (bool, error) {
	f.calls++
	if f.down {
		return false, errCatalogDown
	}
	return f.known[strings.ToLower(breed)], nil
}

var _ breeds.Catalog = (*fakeCatalog)(nil)

type fixture struct {
	svc     *agency.Service
	catalog *fakeCatalog
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logs := &bytes.Buffer{}
	catalog := newFakeCatalog("Siamese", "Persian", "Bengal")
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: logs})
	return fixture{
		svc:     agency.NewService(memory.NewStore(), catalog, log),
		catalog: catalog,
		logs:    logs,
	}
}

func (f fixture) cat(t *testing.T, name string) agency.Cat {
	t.Helper()
	c, err := f.svc.CreateCat(context.Background(), agency.CatInput{
		Name: name, YearsOfExperience: 2, Breed: "Bengal", Salary: 100,
	})
	require.NoError(t, err)
	return c
}

func (f fixture) mission(t *testing.T, in agency.MissionInput) agency.MissionDetail {
	t.Helper()
	m, err := f.svc.CreateMission(context.Background(), in)
	require.NoError(t, err)
	return m
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Cats
// -------------------------

func TestCreateCat_ThenGetReturnsSameFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateCat(ctx, agency.CatInput{
		Name: "  Whiskers ", YearsOfExperience: 5, Breed: "siamese", Salary: 50000,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := f.svc.GetCat(ctx, created.ID)
	require.NoError(t, err)

	want := agency.CatDetail{
		Cat: agency.Cat{ID: created.ID, Name: "Whiskers", YearsOfExperience: 5, Breed: "siamese", Salary: 50000},
		Missions: []agency.Mission{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetCat mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateCat_UnknownBreed(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCat(context.Background(), agency.CatInput{
		Name: "Tom", YearsOfExperience: 1, Breed: "Dragon", Salary: 1,
	})
	assert.ErrorIs(t, err, agency.ErrInvalidBreed)
	assert.EqualError(t, err, "invalid breed")

	_, total, err := f.svc.ListCats(context.Background(), paging.All())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateCat_CatalogDownFailsClosed(t *testing.T) {
	f := newFixture(t)
	f.catalog.down = true

	_, err := f.svc.CreateCat(context.Background(), agency.CatInput{
		Name: "Tom", YearsOfExperience: 1, Breed: "Siamese", Salary: 1,
	})
	assert.ErrorIs(t, err, agency.ErrInvalidBreed)
	assert.Contains(t, f.logs.String(), "breed catalog lookup failed")
	assert.Contains(t, f.logs.String(), errCatalogDown.Error())
}

func TestCreateCat_FieldChecksRunBeforeCatalog(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCat(context.Background(), agency.CatInput{
		Name: "", YearsOfExperience: 1, Breed: "Siamese", Salary: 1,
	})
	assert.ErrorIs(t, err, agency.ErrInvalidInput)
	assert.NotErrorIs(t, err, agency.ErrInvalidBreed)
	assert.Zero(t, f.catalog.calls)
}

func TestUpdateCat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")

	updated, err := f.svc.UpdateCat(ctx, c.ID, agency.CatInput{
		Name: "Tom", YearsOfExperience: 9, Breed: "Persian", Salary: 2500.5,
	})
	require.NoError(t, err)
	assert.Equal(t, agency.Cat{ID: c.ID, Name: "Tom", YearsOfExperience: 9, Breed: "Persian", Salary: 2500.5}, updated)

	_, err = f.svc.UpdateCat(ctx, c.ID, agency.CatInput{
		Name: "Tom", YearsOfExperience: 9, Breed: "Unicorn", Salary: 1,
	})
	assert.ErrorIs(t, err, agency.ErrInvalidBreed)

	calls := f.catalog.calls
	_, err = f.svc.UpdateCat(ctx, 999, agency.CatInput{Name: "x", Breed: "Persian"})
	assert.ErrorIs(t, err, agency.ErrNotFound)
	assert.EqualError(t, err, "spy cat not found")
	assert.Equal(t, calls, f.catalog.calls, "missing cat must not hit the catalog")
}

func TestDeleteCat_UnassignsMissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")
	m := f.mission(t, agency.MissionInput{CatID: &c.ID})

	_, err := f.svc.DeleteCat(ctx, c.ID)
	require.NoError(t, err)

	got, err := f.svc.GetMission(ctx, m.Mission.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Mission.CatID)
	assert.Nil(t, got.Cat)

	_, err = f.svc.GetCat(ctx, c.ID)
	assert.ErrorIs(t, err, agency.ErrNotFound)
}

// -------------------------
// Missions
// -------------------------

func TestCreateMission_WithNestedTargetsAndNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")

	m := f.mission(t, agency.MissionInput{
		CatID: &c.ID,
		Targets: []agency.TargetInput{
			{Name: "T1", Country: "C1", Notes: []agency.NoteInput{{Content: "first"}}},
			{Name: "T2", Country: "C2"},
		},
	})
	require.NotNil(t, m.Cat)
	assert.Equal(t, c.ID, m.Cat.ID)
	require.Len(t, m.Targets, 2)

	got, err := f.svc.GetMission(ctx, m.Mission.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(m.Targets, got.Targets); diff != "" {
		t.Fatalf("targets mismatch (-created +stored):\n%s", diff)
	}

	detail, err := f.svc.GetTarget(ctx, agency.TargetRef{TargetID: m.Targets[0].ID})
	require.NoError(t, err)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, "first", detail.Notes[0].Content)
}

func TestCreateMission_InvalidChildRollsBackBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateMission(ctx, agency.MissionInput{
		Targets: []agency.TargetInput{
			{Name: "T1", Country: "C1"},
			{Name: "T2", Country: ""},
		},
	})
	require.ErrorIs(t, err, agency.ErrInvalidInput)
	assert.EqualError(t, err, "target #2: country is required")

	_, missions, err := f.svc.ListMissions(ctx, paging.All())
	require.NoError(t, err)
	assert.Zero(t, missions)
	_, targets, err := f.svc.ListTargets(ctx, paging.All())
	require.NoError(t, err)
	assert.Zero(t, targets)
}

func TestCreateMission_UnknownCatRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateMission(ctx, agency.MissionInput{
		CatID:   ptr(int64(42)),
		Targets: []agency.TargetInput{{Name: "T1", Country: "C1"}},
	})
	assert.ErrorIs(t, err, agency.ErrNotFound)
	assert.EqualError(t, err, "spy cat not found")

	_, total, err := f.svc.ListMissions(ctx, paging.All())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateMission_CompleteWithTargetsIsLocked(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateMission(context.Background(), agency.MissionInput{
		IsComplete: true,
		Targets:    []agency.TargetInput{{Name: "", Country: ""}},
	})
	assert.ErrorIs(t, err, agency.ErrLocked)

	m := f.mission(t, agency.MissionInput{IsComplete: true})
	assert.True(t, m.Mission.IsComplete)
	assert.Empty(t, m.Targets)
}

func TestDeleteMission_CascadesTargetsAndNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n, per = 3, 2
	in := agency.MissionInput{}
	for i := 0; i < n; i++ {
		tg := agency.TargetInput{Name: "T", Country: "C"}
		for j := 0; j < per; j++ {
			tg.Notes = append(tg.Notes, agency.NoteInput{Content: "note"})
		}
		in.Targets = append(in.Targets, tg)
	}
	m := f.mission(t, in)

	_, total, err := f.svc.ListNotes(ctx, paging.All())
	require.NoError(t, err)
	require.Equal(t, n*per, total)

	_, err = f.svc.DeleteMission(ctx, m.Mission.ID)
	require.NoError(t, err)

	for _, tg := range m.Targets {
		_, err := f.svc.GetTarget(ctx, agency.TargetRef{TargetID: tg.ID})
		assert.ErrorIs(t, err, agency.ErrNotFound)
	}
	items, total, err := f.svc.ListNotes(ctx, paging.All())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)

	_, _, err = f.svc.ListMissionTargets(ctx, m.Mission.ID, paging.All())
	assert.ErrorIs(t, err, agency.ErrNotFound)
}

func TestDeleteMission_StillAssignedUntilUnassigned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")
	m := f.mission(t, agency.MissionInput{CatID: &c.ID, IsComplete: true})

	_, err := f.svc.DeleteMission(ctx, m.Mission.ID)
	require.ErrorIs(t, err, agency.ErrStillAssigned)

	_, err = f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{CatID: nil, IsComplete: true})
	require.NoError(t, err)

	deleted, err := f.svc.DeleteMission(ctx, m.Mission.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Mission.ID, deleted.ID)
}

func TestUpdateMission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")
	m := f.mission(t, agency.MissionInput{})

	got, err := f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{CatID: &c.ID, IsComplete: true})
	require.NoError(t, err)
	require.NotNil(t, got.CatID)
	assert.Equal(t, c.ID, *got.CatID)

	_, err = f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{CatID: ptr(int64(404))})
	assert.ErrorIs(t, err, agency.ErrNotFound)

	_, err = f.svc.UpdateMission(ctx, 999, agency.MissionUpdate{})
	assert.EqualError(t, err, "mission not found")

	// complete -> open se permite pero queda registrado.
	_, err = f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{CatID: &c.ID, IsComplete: false})
	require.NoError(t, err)
	assert.Contains(t, f.logs.String(), "mission reopened")
}

func TestListMissions_IncludesCat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.cat(t, "Tom")
	f.mission(t, agency.MissionInput{CatID: &c.ID})
	f.mission(t, agency.MissionInput{})
	f.mission(t, agency.MissionInput{CatID: &c.ID})

	items, total, err := f.svc.ListMissions(ctx, paging.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Cat)
	require.NotNil(t, items[1].Cat)
	assert.Equal(t, "Tom", items[1].Cat.Name)

	detail, err := f.svc.GetCat(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Missions, 2)
}

// -------------------------
// Targets
// -------------------------

func TestCreateTarget_LockedOnCompleteMission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{IsComplete: true})

	_, err := f.svc.CreateTarget(ctx, m.Mission.ID, agency.TargetInput{Name: "T", Country: "C"})
	assert.ErrorIs(t, err, agency.ErrLocked)

	_, err = f.svc.CreateTarget(ctx, 999, agency.TargetInput{Name: "T", Country: "C"})
	assert.ErrorIs(t, err, agency.ErrNotFound)
}

func TestCreateTarget_CompletedWithNotesIsLocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{})

	_, err := f.svc.CreateTarget(ctx, m.Mission.ID, agency.TargetInput{
		Name: "T", Country: "C", IsComplete: true,
		Notes: []agency.NoteInput{{Content: "late"}},
	})
	assert.ErrorIs(t, err, agency.ErrLocked)

	_, total, err := f.svc.ListMissionTargets(ctx, m.Mission.ID, paging.All())
	require.NoError(t, err)
	assert.Zero(t, total, "target insert must be rolled back")
}

func TestUpdateTarget_EditableWhenComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "T1", Country: "C1", IsComplete: true}}})
	_, err := f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{IsComplete: true})
	require.NoError(t, err)

	ref := agency.TargetRef{MissionID: m.Mission.ID, TargetID: m.Targets[0].ID}
	got, err := f.svc.UpdateTarget(ctx, ref, agency.TargetUpdate{Name: " Renamed ", Country: "C9", IsComplete: true})
	require.NoError(t, err)
	assert.Equal(t, agency.Target{
		ID: m.Targets[0].ID, MissionID: m.Mission.ID, Name: "Renamed", Country: "C9", IsComplete: true,
	}, got)

	_, err = f.svc.UpdateTarget(ctx, ref, agency.TargetUpdate{Name: "", Country: "C9"})
	assert.ErrorIs(t, err, agency.ErrInvalidInput)

	_, err = f.svc.UpdateTarget(ctx, ref, agency.TargetUpdate{Name: "R", Country: "C9", IsComplete: false})
	require.NoError(t, err)
	assert.Contains(t, f.logs.String(), "target reopened")
}

func TestNestedRefs_CheckOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "A", Country: "X", Notes: []agency.NoteInput{{Content: "a"}}}}})
	b := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "B", Country: "Y"}}})

	targetA := m0(a)
	_, err := f.svc.GetTarget(ctx, agency.TargetRef{MissionID: b.Mission.ID, TargetID: targetA})
	assert.EqualError(t, err, "target not found")

	ok, err := f.svc.GetTarget(ctx, agency.TargetRef{MissionID: a.Mission.ID, TargetID: targetA})
	require.NoError(t, err)
	require.Len(t, ok.Notes, 1)
	noteID := ok.Notes[0].ID

	_, err = f.svc.GetNote(ctx, agency.NoteRef{MissionID: a.Mission.ID, TargetID: m0(b), NoteID: noteID})
	assert.ErrorIs(t, err, agency.ErrNotFound)

	_, err = f.svc.GetNote(ctx, agency.NoteRef{MissionID: b.Mission.ID, NoteID: noteID})
	assert.EqualError(t, err, "note not found")

	detail, err := f.svc.GetNote(ctx, agency.NoteRef{NoteID: noteID})
	require.NoError(t, err)
	assert.Equal(t, targetA, detail.Target.ID)
	assert.Equal(t, a.Mission.ID, detail.Mission.ID)

	_, err = f.svc.DeleteTarget(ctx, agency.TargetRef{MissionID: b.Mission.ID, TargetID: targetA})
	assert.ErrorIs(t, err, agency.ErrNotFound)
}

func m0(m agency.MissionDetail) int64 { return m.Targets[0].ID }

func TestDeleteTarget_CascadesNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{
		{Name: "A", Country: "X", Notes: []agency.NoteInput{{Content: "1"}, {Content: "2"}}},
		{Name: "B", Country: "Y", Notes: []agency.NoteInput{{Content: "3"}}},
	}})

	_, err := f.svc.DeleteTarget(ctx, agency.TargetRef{TargetID: m.Targets[0].ID})
	require.NoError(t, err)

	notes, total, err := f.svc.ListNotes(ctx, paging.All())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "3", notes[0].Content)
}

// -------------------------
// Notes
// -------------------------

func TestNotes_LockedWhenMissionComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "T1", Country: "C1"}}})
	ref := agency.TargetRef{TargetID: m0(m)}

	note, err := f.svc.CreateNote(ctx, ref, agency.NoteInput{Content: "draft"})
	require.NoError(t, err)

	_, err = f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{IsComplete: true})
	require.NoError(t, err)

	// Locked aunque el contenido sea inválido.
	for _, content := range []string{"valid", ""} {
		_, err = f.svc.CreateNote(ctx, ref, agency.NoteInput{Content: content})
		assert.ErrorIs(t, err, agency.ErrLocked, "create %q", content)

		_, err = f.svc.UpdateNote(ctx, agency.NoteRef{NoteID: note.ID}, agency.NoteInput{Content: content})
		assert.ErrorIs(t, err, agency.ErrLocked, "update %q", content)
	}

	// Borrar notas no está bloqueado.
	_, err = f.svc.DeleteNote(ctx, agency.NoteRef{NoteID: note.ID})
	assert.NoError(t, err)
}

func TestNotes_LockedWhenTargetComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "T1", Country: "C1"}}})
	ref := agency.TargetRef{MissionID: m.Mission.ID, TargetID: m0(m)}

	_, err := f.svc.UpdateTarget(ctx, ref, agency.TargetUpdate{Name: "T1", Country: "C1", IsComplete: true})
	require.NoError(t, err)

	_, err = f.svc.CreateNote(ctx, ref, agency.NoteInput{Content: "late"})
	assert.ErrorIs(t, err, agency.ErrLocked)
	assert.EqualError(t, err, "cannot write note for a completed target")
}

func TestNotes_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.mission(t, agency.MissionInput{Targets: []agency.TargetInput{{Name: "T1", Country: "C1"}}})
	ref := agency.TargetRef{TargetID: m0(m)}

	_, err := f.svc.CreateNote(ctx, ref, agency.NoteInput{Content: "   "})
	assert.ErrorIs(t, err, agency.ErrInvalidInput)

	n, err := f.svc.CreateNote(ctx, ref, agency.NoteInput{Content: " spotted "})
	require.NoError(t, err)
	assert.Equal(t, "spotted", n.Content)

	updated, err := f.svc.UpdateNote(ctx, agency.NoteRef{TargetID: ref.TargetID, NoteID: n.ID}, agency.NoteInput{Content: "gone"})
	require.NoError(t, err)
	assert.Equal(t, agency.Note{ID: n.ID, TargetID: ref.TargetID, Content: "gone"}, updated)

	items, total, err := f.svc.ListTargetNotes(ctx, ref, paging.All())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []agency.Note{updated}, items)

	_, err = f.svc.DeleteNote(ctx, agency.NoteRef{NoteID: n.ID})
	require.NoError(t, err)
	_, err = f.svc.GetNote(ctx, agency.NoteRef{NoteID: n.ID})
	assert.ErrorIs(t, err, agency.ErrNotFound)
}

// -------------------------
// Pagination
// -------------------------

func TestListCats_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var ids []int64
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		ids = append(ids, f.cat(t, name).ID)
	}

	all, total, err := f.svc.ListCats(ctx, paging.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, len(ids), total)
	assert.Len(t, all, len(ids))

	for _, tc := range []struct{ offset, limit int }{{0, 2}, {2, 3}, {4, 10}, {6, 1}} {
		items, n, err := f.svc.ListCats(ctx, paging.New(tc.offset, tc.limit))
		require.NoError(t, err)
		assert.Equal(t, total, n)

		end := min(tc.offset+tc.limit, len(ids))
		got := make([]int64, 0, len(items))
		for _, c := range items {
			got = append(got, c.ID)
		}
		assert.Equal(t, ids[min(tc.offset, len(ids)):end], got, "offset=%d limit=%d", tc.offset, tc.limit)
	}
}

// -------------------------
// End-to-end scenario
// -------------------------

func TestScenario_CompletedMissionLocksNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cat, err := f.svc.CreateCat(ctx, agency.CatInput{
		Name: "Whiskers", Breed: "Siamese", YearsOfExperience: 5, Salary: 50000,
	})
	require.NoError(t, err)

	m, err := f.svc.CreateMission(ctx, agency.MissionInput{
		CatID:   &cat.ID,
		Targets: []agency.TargetInput{{Name: "T1", Country: "C1"}},
	})
	require.NoError(t, err)
	require.Len(t, m.Targets, 1)

	_, err = f.svc.UpdateMission(ctx, m.Mission.ID, agency.MissionUpdate{CatID: &cat.ID, IsComplete: true})
	require.NoError(t, err)

	_, err = f.svc.CreateNote(ctx, agency.TargetRef{TargetID: m.Targets[0].ID}, agency.NoteInput{Content: "target spotted"})
	assert.ErrorIs(t, err, agency.ErrLocked)
}
