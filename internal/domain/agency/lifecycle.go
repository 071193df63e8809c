package agency

// Reglas de ciclo de vida. open -> complete es la transición esperada;
// el update permite volver atrás (ver Service.UpdateMission/UpdateTarget).

// CanAddTarget: no se agregan targets a una misión completa.
func CanAddTarget(m Mission) error {
	if m.IsComplete {
		return locked("cannot add target to a completed mission")
	}
	return nil
}

// CanWriteNote: las notas se congelan si la misión o el target están completos.
// Se revisa primero la misión (el lock más amplio).
func CanWriteNote(m Mission, t Target) error {
	if m.IsComplete {
		return locked("cannot write note for a completed mission")
	}
	if t.IsComplete {
		return locked("cannot write note for a completed target")
	}
	return nil
}

// CanDeleteMission: hay que desasignar el gato antes, esté completa o no.
func CanDeleteMission(m Mission) error {
	if m.Assigned() {
		return stillAssigned("cannot delete mission with assigned spy cat")
	}
	return nil
}

// reopened detecta complete -> open.
func reopened(before, after bool) bool {
	return before && !after
}
