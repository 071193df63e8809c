package agency

import (
	"context"

	"spy-cat-agency/internal/platform/paging"
)

// CreateNote: el lock se revisa antes que el contenido, así una misión o
// target completos siempre responden Locked.
func (s *Service) CreateNote(ctx context.Context, ref TargetRef, in NoteInput) (Note, error) {
	in = in.normalize()

	var out Note
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, t, err := s.resolveTarget(ctx, tx, ref)
		if err != nil {
			return err
		}
		if err := CanWriteNote(m, t); err != nil {
			return err
		}
		if err := ValidateNote(in); err != nil {
			return err
		}

		n, err := tx.Notes().Create(ctx, Note{TargetID: t.ID, Content: in.Content})
		if err != nil {
			return err
		}
		out = n
		return nil
	})
	return out, err
}

// GetNote devuelve la nota con su target y su misión.
func (s *Service) GetNote(ctx context.Context, ref NoteRef) (NoteDetail, error) {
	var out NoteDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, t, n, err := s.resolveNote(ctx, tx, ref)
		if err != nil {
			return err
		}
		out = NoteDetail{Note: n, Target: t, Mission: m}
		return nil
	})
	return out, err
}

func (s *Service) ListNotes(ctx context.Context, page paging.Request) ([]Note, int, error) {
	var (
		items []Note
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		var err error
		items, total, err = tx.Notes().List(ctx, page)
		return err
	})
	return items, total, err
}

// ListTargetNotes pagina las notas de un target; el total es el del target.
func (s *Service) ListTargetNotes(ctx context.Context, ref TargetRef, page paging.Request) ([]Note, int, error) {
	var (
		items []Note
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		_, t, err := s.resolveTarget(ctx, tx, ref)
		if err != nil {
			return err
		}
		items, total, err = tx.Notes().ListByTarget(ctx, t.ID, page)
		return err
	})
	return items, total, err
}

func (s *Service) UpdateNote(ctx context.Context, ref NoteRef, in NoteInput) (Note, error) {
	in = in.normalize()

	var out Note
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, t, cur, err := s.resolveNote(ctx, tx, ref)
		if err != nil {
			return err
		}
		if err := CanWriteNote(m, t); err != nil {
			return err
		}
		if err := ValidateNote(in); err != nil {
			return err
		}

		n, err := tx.Notes().Update(ctx, Note{ID: cur.ID, TargetID: cur.TargetID, Content: in.Content})
		if err != nil {
			return orNotFound(err, "note")
		}
		out = n
		return nil
	})
	return out, err
}

// DeleteNote no está sujeto al lock de completitud.
func (s *Service) DeleteNote(ctx context.Context, ref NoteRef) (Note, error) {
	var out Note
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		_, _, n, err := s.resolveNote(ctx, tx, ref)
		if err != nil {
			return err
		}
		deleted, err := tx.Notes().Delete(ctx, n.ID)
		if err != nil {
			return orNotFound(err, "note")
		}
		out = deleted
		return nil
	})
	return out, err
}
