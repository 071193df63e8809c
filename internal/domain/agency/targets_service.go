package agency

import (
	"context"

	"spy-cat-agency/internal/platform/paging"
)

// CreateTarget agrega un target (con notas opcionales) a una misión abierta.
func (s *Service) CreateTarget(ctx context.Context, missionID int64, in TargetInput) (TargetDetail, error) {
	in = in.normalize()

	var out TargetDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, err := tx.Missions().GetByID(ctx, missionID)
		if err != nil {
			return orNotFound(err, "mission")
		}
		if err := CanAddTarget(m); err != nil {
			return err
		}
		if err := ValidateTarget(in); err != nil {
			return err
		}

		t, notes, err := s.createTarget(ctx, tx, m, in)
		if err != nil {
			return err
		}
		out = TargetDetail{Target: t, Mission: m, Notes: notes}
		return nil
	})
	if err != nil {
		return TargetDetail{}, err
	}

	s.log.Info("target created", map[string]any{
		"mission_id": missionID,
		"target_id":  out.Target.ID,
		"notes":      len(out.Notes),
	})
	return out, nil
}

// createTarget persiste target + notas dentro de tx. in ya viene validado.
func (s *Service) createTarget(ctx context.Context, tx Tx, m Mission, in TargetInput) (Target, []Note, error) {
	t, err := tx.Targets().Create(ctx, Target{
		MissionID:  m.ID,
		Name:       in.Name,
		Country:    in.Country,
		IsComplete: in.IsComplete,
	})
	if err != nil {
		return Target{}, nil, err
	}

	if len(in.Notes) > 0 {
		if err := CanWriteNote(m, t); err != nil {
			return Target{}, nil, err
		}
	}

	notes := make([]Note, 0, len(in.Notes))
	for _, n := range in.Notes {
		created, err := tx.Notes().Create(ctx, Note{TargetID: t.ID, Content: n.Content})
		if err != nil {
			return Target{}, nil, err
		}
		notes = append(notes, created)
	}
	return t, notes, nil
}

// GetTarget devuelve el target con su misión y sus notas.
func (s *Service) GetTarget(ctx context.Context, ref TargetRef) (TargetDetail, error) {
	var out TargetDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, t, err := s.resolveTarget(ctx, tx, ref)
		if err != nil {
			return err
		}
		notes, _, err := tx.Notes().ListByTarget(ctx, t.ID, paging.All())
		if err != nil {
			return err
		}
		out = TargetDetail{Target: t, Mission: m, Notes: notes}
		return nil
	})
	return out, err
}

func (s *Service) ListTargets(ctx context.Context, page paging.Request) ([]Target, int, error) {
	var (
		items []Target
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		var err error
		items, total, err = tx.Targets().List(ctx, page)
		return err
	})
	return items, total, err
}

// ListMissionTargets pagina los targets de una misión; el total es el de la misión.
func (s *Service) ListMissionTargets(ctx context.Context, missionID int64, page paging.Request) ([]Target, int, error) {
	var (
		items []Target
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		if _, err := tx.Missions().GetByID(ctx, missionID); err != nil {
			return orNotFound(err, "mission")
		}
		var err error
		items, total, err = tx.Targets().ListByMission(ctx, missionID, page)
		return err
	})
	return items, total, err
}

// UpdateTarget reemplaza name, country e is_complete. Los campos del target
// siguen editables aunque el target o la misión estén completos; solo las
// notas quedan congeladas.
func (s *Service) UpdateTarget(ctx context.Context, ref TargetRef, in TargetUpdate) (Target, error) {
	in = in.normalize()

	var out Target
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		_, cur, err := s.resolveTarget(ctx, tx, ref)
		if err != nil {
			return err
		}
		if err := ValidateTargetUpdate(in); err != nil {
			return err
		}

		if reopened(cur.IsComplete, in.IsComplete) {
			s.log.Warn("target reopened", map[string]any{"target_id": cur.ID})
		}

		t, err := tx.Targets().Update(ctx, Target{
			ID:         cur.ID,
			MissionID:  cur.MissionID,
			Name:       in.Name,
			Country:    in.Country,
			IsComplete: in.IsComplete,
		})
		if err != nil {
			return orNotFound(err, "target")
		}
		out = t
		return nil
	})
	return out, err
}

// DeleteTarget borra el target y sus notas.
func (s *Service) DeleteTarget(ctx context.Context, ref TargetRef) (Target, error) {
	var out Target
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		_, t, err := s.resolveTarget(ctx, tx, ref)
		if err != nil {
			return err
		}
		deleted, err := tx.Targets().Delete(ctx, t.ID)
		if err != nil {
			return orNotFound(err, "target")
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Target{}, err
	}

	s.log.Info("target deleted", map[string]any{"target_id": out.ID})
	return out, nil
}
