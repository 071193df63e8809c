package agency

import (
	"net/http"
)

type missionCreateRequest struct {
	CatID      *int64                `json:"cat_id"`
	IsComplete bool                  `json:"is_complete"`
	Targets    []targetCreateRequest `json:"targets"`
}

type missionUpdateRequest struct {
	// null desasigna el gato.
	CatID      *int64 `json:"cat_id"`
	IsComplete bool   `json:"is_complete"`
}

// createMissionHandler godoc
// @Summary Crear misión
// @Description Crea una misión, opcionalmente asignada a un gato y con targets (y notas) anidados. Todo el lote se guarda en una transacción: un target inválido descarta la misión completa.
// @Tags missions
// @Accept json
// @Produce json
// @Param payload body missionCreateRequest true "Misión con targets opcionales"
// @Success 201 {object} missionDetailResponse
// @Failure 400 {object} errorResponse "invalid json / target #N inválido"
// @Failure 404 {object} errorResponse "spy cat not found"
// @Failure 409 {object} errorResponse "misión completa con targets"
// @Router /mission/ [post]
func createMissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req missionCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		d, err := svc.CreateMission(r.Context(), MissionInput{
			CatID:      req.CatID,
			IsComplete: req.IsComplete,
			Targets:    mapSlice(req.Targets, targetCreateRequest.toInput),
		})
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMissionDetailResponse(d))
	}
}

// listMissionsHandler godoc
// @Summary Listar misiones
// @Description Lista paginada de misiones, cada una con su gato (o null).
// @Tags missions
// @Produce json
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} missionListResponse
// @Failure 400 {object} errorResponse "parámetros de paginación inválidos"
// @Router /mission/ [get]
func listMissionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListMissions(r.Context(), page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, missionListResponse{
			Missions: mapSlice(items, func(s MissionSummary) missionSummaryResponse {
				return missionSummaryResponse{
					missionResponse: toMissionResponse(s.Mission),
					Cat:             toCatPtr(s.Cat),
				}
			}),
			AllCount: total,
		})
	}
}

// getMissionHandler godoc
// @Summary Ver misión
// @Description Devuelve la misión con su gato y sus targets.
// @Tags missions
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Success 200 {object} missionDetailResponse
// @Failure 404 {object} errorResponse "mission not found"
// @Router /mission/{missionID} [get]
func getMissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "missionID")
		if !ok {
			return
		}

		d, err := svc.GetMission(r.Context(), id)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toMissionDetailResponse(d))
	}
}

// updateMissionHandler godoc
// @Summary Actualizar misión
// @Description Reemplaza cat_id e is_complete. cat_id null desasigna el gato.
// @Tags missions
// @Accept json
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Param payload body missionUpdateRequest true "Nuevo estado"
// @Success 200 {object} missionResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Failure 404 {object} errorResponse "mission not found / spy cat not found"
// @Router /mission/{missionID} [put]
func updateMissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "missionID")
		if !ok {
			return
		}

		var req missionUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		m, err := svc.UpdateMission(r.Context(), id, MissionUpdate{CatID: req.CatID, IsComplete: req.IsComplete})
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toMissionResponse(m))
	}
}

// deleteMissionHandler godoc
// @Summary Borrar misión
// @Description Borra la misión con sus targets y notas. Falla si todavía tiene un gato asignado.
// @Tags missions
// @Produce json
// @Param missionID path int true "ID de la misión"
// @Success 200 {object} missionResponse
// @Failure 404 {object} errorResponse "mission not found"
// @Failure 409 {object} errorResponse "cannot delete mission with assigned spy cat"
// @Router /mission/{missionID} [delete]
func deleteMissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "missionID")
		if !ok {
			return
		}

		m, err := svc.DeleteMission(r.Context(), id)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toMissionResponse(m))
	}
}

func toMissionDetailResponse(d MissionDetail) missionDetailResponse {
	return missionDetailResponse{
		missionResponse: toMissionResponse(d.Mission),
		Cat:             toCatPtr(d.Cat),
		Targets:         mapSlice(d.Targets, toTargetResponse),
	}
}
