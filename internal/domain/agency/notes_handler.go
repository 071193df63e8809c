package agency

import (
	"net/http"
)

type noteRequest struct {
	Content string `json:"content"`
}

func (req noteRequest) toInput() NoteInput {
	return NoteInput{Content: req.Content}
}

// createNoteHandler godoc
// @Summary Agregar nota a un target
// @Description Si la misión o el target están completos responde 409, sin importar el contenido.
// @Tags notes
// @Accept json
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param targetID path int true "ID del target"
// @Param payload body noteRequest true "Contenido de la nota"
// @Success 201 {object} noteResponse
// @Failure 400 {object} errorResponse "invalid json / content is required"
// @Failure 404 {object} errorResponse "target not found"
// @Failure 409 {object} errorResponse "misión o target completos"
// @Router /mission/{missionID}/target/{targetID}/note/ [post]
// @Router /target/{targetID}/note/ [post]
func createNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := targetRefFrom(w, r)
		if !ok {
			return
		}

		var req noteRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		n, err := svc.CreateNote(r.Context(), ref, req.toInput())
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toNoteResponse(n))
	}
}

// listTargetNotesHandler godoc
// @Summary Listar notas de un target
// @Tags notes
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param targetID path int true "ID del target"
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} noteListResponse
// @Failure 404 {object} errorResponse "target not found"
// @Router /mission/{missionID}/target/{targetID}/note/ [get]
// @Router /target/{targetID}/note/ [get]
func listTargetNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := targetRefFrom(w, r)
		if !ok {
			return
		}
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListTargetNotes(r.Context(), ref, page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, noteListResponse{
			Notes:    mapSlice(items, toNoteResponse),
			AllCount: total,
		})
	}
}

// listNotesHandler godoc
// @Summary Listar todas las notas
// @Tags notes
// @Produce json
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} noteListResponse
// @Router /note/ [get]
func listNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListNotes(r.Context(), page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, noteListResponse{
			Notes:    mapSlice(items, toNoteResponse),
			AllCount: total,
		})
	}
}

// getNoteHandler godoc
// @Summary Ver nota
// @Description Devuelve la nota con su target y su misión.
// @Tags notes
// @Produce json
// @Param noteID path int true "ID de la nota"
// @Success 200 {object} noteDetailResponse
// @Failure 404 {object} errorResponse "note not found"
// @Router /note/{noteID} [get]
// @Router /mission/{missionID}/target/{targetID}/note/{noteID} [get]
func getNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := noteRefFrom(w, r)
		if !ok {
			return
		}

		d, err := svc.GetNote(r.Context(), ref)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, noteDetailResponse{
			noteResponse: toNoteResponse(d.Note),
			Target:       toTargetResponse(d.Target),
			Mission:      toMissionResponse(d.Mission),
		})
	}
}

// updateNoteHandler godoc
// @Summary Actualizar nota
// @Description Reemplaza el contenido. Bloqueado (409) si la misión o el target están completos.
// @Tags notes
// @Accept json
// @Produce json
// @Param noteID path int true "ID de la nota"
// @Param payload body noteRequest true "Nuevo contenido"
// @Success 200 {object} noteResponse
// @Failure 400 {object} errorResponse "invalid json / content is required"
// @Failure 404 {object} errorResponse "note not found"
// @Failure 409 {object} errorResponse "misión o target completos"
// @Router /note/{noteID} [put]
// @Router /mission/{missionID}/target/{targetID}/note/{noteID} [put]
func updateNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := noteRefFrom(w, r)
		if !ok {
			return
		}

		var req noteRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		n, err := svc.UpdateNote(r.Context(), ref, req.toInput())
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toNoteResponse(n))
	}
}

// deleteNoteHandler godoc
// @Summary Borrar nota
// @Tags notes
// @Produce json
// @Param noteID path int true "ID de la nota"
// @Success 200 {object} noteResponse
// @Failure 404 {object} errorResponse "note not found"
// @Router /note/{noteID} [delete]
// @Router /mission/{missionID}/target/{targetID}/note/{noteID} [delete]
func deleteNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := noteRefFrom(w, r)
		if !ok {
			return
		}

		n, err := svc.DeleteNote(r.Context(), ref)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toNoteResponse(n))
	}
}
