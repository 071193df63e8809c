package agency

import (
	"context"
	"strings"

	"spy-cat-agency/internal/ports/breeds"
)

// Inputs de creación/actualización. Las actualizaciones son reemplazo
// completo de campos (PUT), no PATCH.

type CatInput struct {
	Name              string
	YearsOfExperience int
	Breed             string
	Salary            float64
}

type MissionInput struct {
	CatID      *int64
	IsComplete bool
	Targets    []TargetInput
}

type MissionUpdate struct {
	CatID      *int64
	IsComplete bool
}

type TargetInput struct {
	Name       string
	Country    string
	IsComplete bool
	Notes      []NoteInput
}

type TargetUpdate struct {
	Name       string
	Country    string
	IsComplete bool
}

type NoteInput struct {
	Content string
}

func (in CatInput) normalize() CatInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	return in
}

func (in TargetInput) normalize() TargetInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	notes := make([]NoteInput, len(in.Notes))
	for i, n := range in.Notes {
		notes[i] = n.normalize()
	}
	in.Notes = notes
	return in
}

func (in TargetUpdate) normalize() TargetUpdate {
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	return in
}

func (in NoteInput) normalize() NoteInput {
	in.Content = strings.TrimSpace(in.Content)
	return in
}

// ValidateCat revisa campos locales; la raza contra el catálogo va aparte
// (CheckBreed) para no pagar un round trip con un payload inválido.
func ValidateCat(in CatInput) error {
	in = in.normalize()
	if in.Name == "" {
		return invalid("name is required")
	}
	if in.Breed == "" {
		return invalid("breed is required")
	}
	if in.YearsOfExperience < 0 {
		return invalid("years_of_experience must be >= 0")
	}
	// !(x >= 0) también descarta NaN.
	if !(in.Salary >= 0) {
		return invalid("salary must be >= 0")
	}
	return nil
}

func validateTargetFields(name, country string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name is required")
	}
	if strings.TrimSpace(country) == "" {
		return invalid("country is required")
	}
	return nil
}

func ValidateTarget(in TargetInput) error {
	if err := validateTargetFields(in.Name, in.Country); err != nil {
		return err
	}
	return ValidateNotes(in.Notes)
}

func ValidateTargetUpdate(in TargetUpdate) error {
	return validateTargetFields(in.Name, in.Country)
}

// ValidateTargets valida un lote anidado; el error indica la posición (1-based).
func ValidateTargets(items []TargetInput) error {
	for i, t := range items {
		if err := ValidateTarget(t); err != nil {
			return invalid("target #%d: %s", i+1, err.Error())
		}
	}
	return nil
}

func ValidateNote(in NoteInput) error {
	if strings.TrimSpace(in.Content) == "" {
		return invalid("content is required")
	}
	return nil
}

func ValidateNotes(items []NoteInput) error {
	for i, n := range items {
		if err := ValidateNote(n); err != nil {
			return invalid("note #%d: %s", i+1, err.Error())
		}
	}
	return nil
}

// CheckBreed consulta el catálogo. Fail-closed: si el catálogo falla,
// la raza se considera inválida. El error upstream se devuelve aparte
// para que el caller lo loguee.
func CheckBreed(ctx context.Context, catalog breeds.Catalog, breed string) (upstreamErr error, err error) {
	if catalog == nil {
		return nil, ErrInvalidBreed
	}
	ok, lookupErr := catalog.Contains(ctx, strings.TrimSpace(breed))
	if lookupErr != nil {
		return lookupErr, ErrInvalidBreed
	}
	if !ok {
		return nil, ErrInvalidBreed
	}
	return nil, nil
}
