package agency

// Cat es un agente de la agencia.
type Cat struct {
	ID                int64
	Name              string
	YearsOfExperience int
	Breed             string // validada contra el catálogo externo
	Salary            float64
}

// Mission puede existir sin gato asignado (CatID nil) y sin targets.
type Mission struct {
	ID         int64
	CatID      *int64
	IsComplete bool
}

// Assigned indica si la misión tiene un gato asignado.
func (m Mission) Assigned() bool { return m.CatID != nil }

// Target pertenece siempre a una única Mission.
type Target struct {
	ID         int64
	MissionID  int64
	Name       string
	Country    string
	IsComplete bool
}

// Note pertenece siempre a un único Target.
type Note struct {
	ID       int64
	TargetID int64
	Content  string
}

// Vistas de lectura: los "back-populate" se resuelven con joins al leer,
// nunca con punteros guardados en las entidades.

type CatDetail struct {
	Cat      Cat
	Missions []Mission
}

type MissionSummary struct {
	Mission Mission
	Cat     *Cat
}

type MissionDetail struct {
	Mission Mission
	Cat     *Cat
	Targets []Target
}

type TargetDetail struct {
	Target  Target
	Mission Mission
	Notes   []Note
}

type NoteDetail struct {
	Note    Note
	Target  Target
	Mission Mission
}

// TargetRef ubica un target. MissionID == 0 significa "cualquier misión";
// si viene, el target debe pertenecer a esa misión.
type TargetRef struct {
	MissionID int64
	TargetID  int64
}

// NoteRef ubica una nota, con ancestros opcionales (0 = sin restricción).
type NoteRef struct {
	MissionID int64
	TargetID  int64
	NoteID    int64
}
