package agency

import (
	"context"
	"errors"

	"spy-cat-agency/internal/platform/paging"
)

// CreateMission crea la misión y sus targets (y notas de cada target) en
// una sola transacción. Un hijo inválido descarta todo el lote.
func (s *Service) CreateMission(ctx context.Context, in MissionInput) (MissionDetail, error) {
	targets := make([]TargetInput, len(in.Targets))
	for i, t := range in.Targets {
		targets[i] = t.normalize()
	}

	if in.IsComplete && len(targets) > 0 {
		return MissionDetail{}, CanAddTarget(Mission{IsComplete: true})
	}
	if err := ValidateTargets(targets); err != nil {
		return MissionDetail{}, err
	}

	var out MissionDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		var cat *Cat
		if in.CatID != nil {
			c, err := tx.Cats().GetByID(ctx, *in.CatID)
			if err != nil {
				return orNotFound(err, "spy cat")
			}
			cat = &c
		}

		m, err := tx.Missions().Create(ctx, Mission{CatID: in.CatID, IsComplete: in.IsComplete})
		if err != nil {
			return err
		}

		created := make([]Target, 0, len(targets))
		for _, t := range targets {
			ct, _, err := s.createTarget(ctx, tx, m, t)
			if err != nil {
				return err
			}
			created = append(created, ct)
		}

		out = MissionDetail{Mission: m, Cat: cat, Targets: created}
		return nil
	})
	if err != nil {
		return MissionDetail{}, err
	}

	s.log.Info("mission created", map[string]any{
		"mission_id": out.Mission.ID,
		"targets":    len(out.Targets),
	})
	return out, nil
}

// GetMission devuelve la misión con su gato (si tiene) y sus targets.
func (s *Service) GetMission(ctx context.Context, id int64) (MissionDetail, error) {
	var out MissionDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, err := tx.Missions().GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "mission")
		}
		cat, err := catOf(ctx, tx, m)
		if err != nil {
			return err
		}
		targets, _, err := tx.Targets().ListByMission(ctx, m.ID, paging.All())
		if err != nil {
			return err
		}
		out = MissionDetail{Mission: m, Cat: cat, Targets: targets}
		return nil
	})
	return out, err
}

// ListMissions devuelve la página con el gato de cada misión.
func (s *Service) ListMissions(ctx context.Context, page paging.Request) ([]MissionSummary, int, error) {
	var (
		out   []MissionSummary
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		items, n, err := tx.Missions().List(ctx, page)
		if err != nil {
			return err
		}

		cats := map[int64]*Cat{}
		out = make([]MissionSummary, 0, len(items))
		for _, m := range items {
			var cat *Cat
			if m.CatID != nil {
				c, seen := cats[*m.CatID]
				if !seen {
					c, err = catOf(ctx, tx, m)
					if err != nil {
						return err
					}
					cats[*m.CatID] = c
				}
				cat = c
			}
			out = append(out, MissionSummary{Mission: m, Cat: cat})
		}
		total = n
		return nil
	})
	return out, total, err
}

// UpdateMission reemplaza cat_id e is_complete. cat_id nil desasigna.
func (s *Service) UpdateMission(ctx context.Context, id int64, in MissionUpdate) (Mission, error) {
	var out Mission
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		cur, err := tx.Missions().GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "mission")
		}
		if in.CatID != nil {
			if _, err := tx.Cats().GetByID(ctx, *in.CatID); err != nil {
				return orNotFound(err, "spy cat")
			}
		}

		if reopened(cur.IsComplete, in.IsComplete) {
			s.log.Warn("mission reopened", map[string]any{"mission_id": id})
		}

		m, err := tx.Missions().Update(ctx, Mission{ID: id, CatID: in.CatID, IsComplete: in.IsComplete})
		if err != nil {
			return orNotFound(err, "mission")
		}
		out = m
		return nil
	})
	return out, err
}

// DeleteMission exige que la misión no tenga gato asignado. Borra en
// cascada targets y notas.
func (s *Service) DeleteMission(ctx context.Context, id int64) (Mission, error) {
	var out Mission
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		m, err := tx.Missions().GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "mission")
		}
		if err := CanDeleteMission(m); err != nil {
			return err
		}
		deleted, err := tx.Missions().Delete(ctx, id)
		if err != nil {
			return orNotFound(err, "mission")
		}
		out = deleted
		return nil
	})
	if err != nil {
		return Mission{}, err
	}

	s.log.Info("mission deleted", map[string]any{"mission_id": out.ID})
	return out, nil
}

// catOf resuelve el gato asignado. Un cat_id colgado se trata como sin gato.
func catOf(ctx context.Context, tx Tx, m Mission) (*Cat, error) {
	if m.CatID == nil {
		return nil, nil
	}
	c, err := tx.Cats().GetByID(ctx, *m.CatID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
