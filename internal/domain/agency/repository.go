package agency

import (
	"context"

	"spy-cat-agency/internal/platform/paging"
)

// Store abre transacciones. Todo lo que hace fn se aplica completo o no se
// aplica: si fn devuelve error (o hace panic) el adapter hace rollback.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx da acceso a los repositorios dentro de una misma transacción.
type Tx interface {
	Cats() CatRepository
	Missions() MissionRepository
	Targets() TargetRepository
	Notes() NoteRepository
}

// Contrato común de los repositorios:
// - Create asigna ID (monótono) y devuelve la entidad guardada.
// - GetByID/Update/Delete devuelven ErrNotFound si no existe.
// - List devuelve la página en orden de inserción y el total sin paginar.

type CatRepository interface {
	Create(ctx context.Context, c Cat) (Cat, error)
	GetByID(ctx context.Context, id int64) (Cat, error)
	List(ctx context.Context, page paging.Request) ([]Cat, int, error)
	Update(ctx context.Context, c Cat) (Cat, error)
	// Delete desasigna las misiones del gato (cat_id = NULL).
	Delete(ctx context.Context, id int64) (Cat, error)
}

type MissionRepository interface {
	Create(ctx context.Context, m Mission) (Mission, error)
	GetByID(ctx context.Context, id int64) (Mission, error)
	List(ctx context.Context, page paging.Request) ([]Mission, int, error)
	ListByCat(ctx context.Context, catID int64) ([]Mission, error)
	Update(ctx context.Context, m Mission) (Mission, error)
	// Delete borra en cascada targets y notas.
	Delete(ctx context.Context, id int64) (Mission, error)
}

type TargetRepository interface {
	Create(ctx context.Context, t Target) (Target, error)
	GetByID(ctx context.Context, id int64) (Target, error)
	List(ctx context.Context, page paging.Request) ([]Target, int, error)
	ListByMission(ctx context.Context, missionID int64, page paging.Request) ([]Target, int, error)
	Update(ctx context.Context, t Target) (Target, error)
	// Delete borra en cascada las notas.
	Delete(ctx context.Context, id int64) (Target, error)
}

type NoteRepository interface {
	Create(ctx context.Context, n Note) (Note, error)
	GetByID(ctx context.Context, id int64) (Note, error)
	List(ctx context.Context, page paging.Request) ([]Note, int, error)
	ListByTarget(ctx context.Context, targetID int64, page paging.Request) ([]Note, int, error)
	Update(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id int64) (Note, error)
}
