package agency

import (
	"context"
	"errors"

	"spy-cat-agency/internal/platform/logger"
	"spy-cat-agency/internal/ports/breeds"
)

// Service aplica validación y reglas de ciclo de vida y persiste vía Store.
// Cada operación corre en una transacción; los lotes anidados
// (misión con targets, target con notas) se aplican completos o nada.
type Service struct {
	store   Store
	catalog breeds.Catalog
	log     logger.Logger
}

func NewService(store Store, catalog breeds.Catalog, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		catalog: catalog,
		log:     log,
	}
}

// checkBreed: fail-closed. Si el catálogo no responde, la raza es inválida.
func (s *Service) checkBreed(ctx context.Context, breed string) error {
	upstreamErr, err := CheckBreed(ctx, s.catalog, breed)
	if upstreamErr != nil {
		s.log.Warn("breed catalog lookup failed, rejecting breed", map[string]any{
			"breed": breed,
			"err":   upstreamErr,
		})
	}
	return err
}

// resolveTarget recorre mission -> target validando pertenencia.
func (s *Service) resolveTarget(ctx context.Context, tx Tx, ref TargetRef) (Mission, Target, error) {
	if ref.MissionID != 0 {
		m, err := tx.Missions().GetByID(ctx, ref.MissionID)
		if err != nil {
			return Mission{}, Target{}, orNotFound(err, "mission")
		}
		t, err := tx.Targets().GetByID(ctx, ref.TargetID)
		if err != nil {
			return Mission{}, Target{}, orNotFound(err, "target")
		}
		if t.MissionID != m.ID {
			return Mission{}, Target{}, notFound("target")
		}
		return m, t, nil
	}

	t, err := tx.Targets().GetByID(ctx, ref.TargetID)
	if err != nil {
		return Mission{}, Target{}, orNotFound(err, "target")
	}
	m, err := tx.Missions().GetByID(ctx, t.MissionID)
	if err != nil {
		return Mission{}, Target{}, orNotFound(err, "mission")
	}
	return m, t, nil
}

// resolveNote recorre mission -> target -> note validando pertenencia.
func (s *Service) resolveNote(ctx context.Context, tx Tx, ref NoteRef) (Mission, Target, Note, error) {
	if ref.TargetID != 0 {
		m, t, err := s.resolveTarget(ctx, tx, TargetRef{MissionID: ref.MissionID, TargetID: ref.TargetID})
		if err != nil {
			return Mission{}, Target{}, Note{}, err
		}
		n, err := tx.Notes().GetByID(ctx, ref.NoteID)
		if err != nil {
			return Mission{}, Target{}, Note{}, orNotFound(err, "note")
		}
		if n.TargetID != t.ID {
			return Mission{}, Target{}, Note{}, notFound("note")
		}
		return m, t, n, nil
	}

	n, err := tx.Notes().GetByID(ctx, ref.NoteID)
	if err != nil {
		return Mission{}, Target{}, Note{}, orNotFound(err, "note")
	}
	m, t, err := s.resolveTarget(ctx, tx, TargetRef{MissionID: ref.MissionID, TargetID: n.TargetID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Mission{}, Target{}, Note{}, notFound("note")
		}
		return Mission{}, Target{}, Note{}, err
	}
	return m, t, n, nil
}

// orNotFound reemplaza el ErrNotFound crudo del repo por uno con mensaje.
func orNotFound(err error, what string) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, ErrNotFound) {
		return notFound(what)
	}
	return err
}
