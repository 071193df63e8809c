package agency

import (
	"net/http"
)

type targetCreateRequest struct {
	Name       string        `json:"name"`
	Country    string        `json:"country"`
	IsComplete bool          `json:"is_complete"`
	Notes      []noteRequest `json:"notes"`
}

func (req targetCreateRequest) toInput() TargetInput {
	return TargetInput{
		Name:       req.Name,
		Country:    req.Country,
		IsComplete: req.IsComplete,
		Notes:      mapSlice(req.Notes, noteRequest.toInput),
	}
}

type targetUpdateRequest struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	IsComplete bool   `json:"is_complete"`
}

// createTargetHandler godoc
// @Summary Agregar target a una misión
// @Description Crea un target (con notas opcionales) en una misión abierta. Si la misión está completa responde 409.
// @Tags targets
// @Accept json
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param payload body targetCreateRequest true "Target con notas opcionales"
// @Success 201 {object} targetDetailResponse
// @Failure 400 {object} errorResponse "invalid json / datos inválidos / note #N inválida"
// @Failure 404 {object} errorResponse "mission not found"
// @Failure 409 {object} errorResponse "cannot add target to a completed mission"
// @Router /mission/{missionID}/target/ [post]
func createTargetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := pathID(w, r, "missionID")
		if !ok {
			return
		}

		var req targetCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		d, err := svc.CreateTarget(r.Context(), missionID, req.toInput())
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTargetDetailResponse(d))
	}
}

// listMissionTargetsHandler godoc
// @Summary Listar targets de una misión
// @Tags targets
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} targetListResponse
// @Failure 404 {object} errorResponse "mission not found"
// @Router /mission/{missionID}/target/ [get]
func listMissionTargetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := pathID(w, r, "missionID")
		if !ok {
			return
		}
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListMissionTargets(r.Context(), missionID, page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, targetListResponse{
			Targets:  mapSlice(items, toTargetResponse),
			AllCount: total,
		})
	}
}

// listTargetsHandler godoc
// @Summary Listar todos los targets
// @Tags targets
// @Produce json
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} targetListResponse
// @Router /target/ [get]
func listTargetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListTargets(r.Context(), page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, targetListResponse{
			Targets:  mapSlice(items, toTargetResponse),
			AllCount: total,
		})
	}
}

// getTargetHandler godoc
// @Summary Ver target
// @Description Devuelve el target con su misión y sus notas. En la ruta anidada el target debe pertenecer a la misión.
// @Tags targets
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param targetID path int true "ID del target"
// @Success 200 {object} targetDetailResponse
// @Failure 404 {object} errorResponse "target not found"
// @Router /mission/{missionID}/target/{targetID} [get]
// @Router /target/{targetID} [get]
func getTargetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := targetRefFrom(w, r)
		if !ok {
			return
		}

		d, err := svc.GetTarget(r.Context(), ref)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toTargetDetailResponse(d))
	}
}

// updateTargetHandler godoc
// @Summary Actualizar target
// @Description Reemplaza name, country e is_complete. Sigue editable aunque esté completo; lo que se congela son sus notas.
// @Tags targets
// @Accept json
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param targetID path int true "ID del target"
// @Param payload body targetUpdateRequest true "Datos completos del target"
// @Success 200 {object} targetResponse
// @Failure 400 {object} errorResponse "invalid json / datos inválidos"
// @Failure 404 {object} errorResponse "target not found"
// @Router /mission/{missionID}/target/{targetID} [put]
// @Router /target/{targetID} [put]
func updateTargetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := targetRefFrom(w, r)
		if !ok {
			return
		}

		var req targetUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		t, err := svc.UpdateTarget(r.Context(), ref, TargetUpdate{
			Name:       req.Name,
			Country:    req.Country,
			IsComplete: req.IsComplete,
		})
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toTargetResponse(t))
	}
}

// deleteTargetHandler godoc
// @Summary Borrar target
// @Description Borra el target y sus notas.
// @Tags targets
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param targetID path int true "ID del target"
// @Success 200 {object} targetResponse
// @Failure 404 {object} errorResponse "target not found"
// @Router /mission/{missionID}/target/{targetID} [delete]
// @Router /target/{targetID} [delete]
func deleteTargetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := targetRefFrom(w, r)
		if !ok {
			return
		}

		t, err := svc.DeleteTarget(r.Context(), ref)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toTargetResponse(t))
	}
}

func toTargetDetailResponse(d TargetDetail) targetDetailResponse {
	return targetDetailResponse{
		targetResponse: toTargetResponse(d.Target),
		Mission:        toMissionResponse(d.Mission),
		Notes:          mapSlice(d.Notes, toNoteResponse),
	}
}
