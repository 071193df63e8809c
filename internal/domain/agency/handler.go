package agency

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"spy-cat-agency/internal/platform/logger"
	"spy-cat-agency/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita el payload de cualquier request JSON.
const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	// Spy cats
	r.Route("/spycat", func(cr chi.Router) {
		cr.Post("/", createCatHandler(svc))
		cr.Get("/", listCatsHandler(svc))
		cr.Get("/{catID}", getCatHandler(svc))
		cr.Put("/{catID}", updateCatHandler(svc))
		cr.Delete("/{catID}", deleteCatHandler(svc))
	})

	// Misiones, con targets y notas anidados
	r.Route("/mission", func(mr chi.Router) {
		mr.Post("/", createMissionHandler(svc))
		mr.Get("/", listMissionsHandler(svc))
		mr.Get("/{missionID}", getMissionHandler(svc))
		mr.Put("/{missionID}", updateMissionHandler(svc))
		mr.Delete("/{missionID}", deleteMissionHandler(svc))

		mr.Route("/{missionID}/target", func(tr chi.Router) {
			tr.Post("/", createTargetHandler(svc))
			tr.Get("/", listMissionTargetsHandler(svc))
			tr.Get("/{targetID}", getTargetHandler(svc))
			tr.Put("/{targetID}", updateTargetHandler(svc))
			tr.Delete("/{targetID}", deleteTargetHandler(svc))

			tr.Route("/{targetID}/note", func(nr chi.Router) {
				nr.Post("/", createNoteHandler(svc))
				nr.Get("/", listTargetNotesHandler(svc))
				nr.Get("/{noteID}", getNoteHandler(svc))
				nr.Put("/{noteID}", updateNoteHandler(svc))
				nr.Delete("/{noteID}", deleteNoteHandler(svc))
			})
		})
	})

	// Targets sin prefijo de misión
	r.Route("/target", func(tr chi.Router) {
		tr.Get("/", listTargetsHandler(svc))
		tr.Get("/{targetID}", getTargetHandler(svc))
		tr.Put("/{targetID}", updateTargetHandler(svc))
		tr.Delete("/{targetID}", deleteTargetHandler(svc))

		tr.Route("/{targetID}/note", func(nr chi.Router) {
			nr.Post("/", createNoteHandler(svc))
			nr.Get("/", listTargetNotesHandler(svc))
		})
	})

	// Notas sin prefijo
	r.Route("/note", func(nr chi.Router) {
		nr.Get("/", listNotesHandler(svc))
		nr.Get("/{noteID}", getNoteHandler(svc))
		nr.Put("/{noteID}", updateNoteHandler(svc))
		nr.Delete("/{noteID}", deleteNoteHandler(svc))
	})
}

// errorResponse es el cuerpo de todo error: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError es el único lugar que traduce errores de dominio a HTTP.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var domainErr *Error
	msg := err.Error()
	if errors.As(err, &domainErr) {
		msg = domainErr.Msg
	}

	switch {
	case errors.Is(err, ErrNotFound):
		writeDetail(w, http.StatusNotFound, msg)
	case errors.Is(err, ErrInvalidInput):
		writeDetail(w, http.StatusBadRequest, msg)
	case errors.Is(err, ErrLocked), errors.Is(err, ErrStillAssigned):
		writeDetail(w, http.StatusConflict, msg)
	case errors.Is(err, paging.ErrInvalidParam):
		writeDetail(w, http.StatusBadRequest, msg)
	default:
		log.Error("request failed", map[string]any{"err": err})
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON lee el body acotado. Un body vacío o mal formado es 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			writeDetail(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeDetail(w, http.StatusBadRequest, "request body is required")
		default:
			writeDetail(w, http.StatusBadRequest, "invalid json")
		}
		return false
	}
	return true
}

// pathID lee un id positivo de la URL; si no es válido responde 400.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeDetail(w, http.StatusBadRequest, "invalid "+strings.TrimSuffix(param, "ID")+" id")
		return 0, false
	}
	return id, true
}

// optionalPathID devuelve 0 si el parámetro no está en la ruta
// (p.ej. /target/{targetID} no tiene missionID).
func optionalPathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	if chi.URLParam(r, param) == "" {
		return 0, true
	}
	return pathID(w, r, param)
}

func targetRefFrom(w http.ResponseWriter, r *http.Request) (TargetRef, bool) {
	missionID, ok := optionalPathID(w, r, "missionID")
	if !ok {
		return TargetRef{}, false
	}
	targetID, ok := pathID(w, r, "targetID")
	if !ok {
		return TargetRef{}, false
	}
	return TargetRef{MissionID: missionID, TargetID: targetID}, true
}

func noteRefFrom(w http.ResponseWriter, r *http.Request) (NoteRef, bool) {
	missionID, ok := optionalPathID(w, r, "missionID")
	if !ok {
		return NoteRef{}, false
	}
	targetID, ok := optionalPathID(w, r, "targetID")
	if !ok {
		return NoteRef{}, false
	}
	noteID, ok := pathID(w, r, "noteID")
	if !ok {
		return NoteRef{}, false
	}
	return NoteRef{MissionID: missionID, TargetID: targetID, NoteID: noteID}, true
}

func pageFrom(w http.ResponseWriter, r *http.Request, log logger.Logger) (paging.Request, bool) {
	p, err := paging.FromQuery(r.URL.Query())
	if err != nil {
		writeError(w, log, err)
		return paging.Request{}, false
	}
	return p, true
}

// -------------------------
// Respuestas (mismo shape JSON que el cliente web ya consume)
// -------------------------

type catResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	YearsOfExperience int     `json:"years_of_experience"`
	Breed             string  `json:"breed"`
	Salary            float64 `json:"salary"`
}

type catDetailResponse struct {
	catResponse
	Missions []missionResponse `json:"missions"`
}

type catListResponse struct {
	SpyCats  []catResponse `json:"spycats"`
	AllCount int           `json:"all_count"`
}

type missionResponse struct {
	ID         int64  `json:"id"`
	CatID      *int64 `json:"cat_id"`
	IsComplete bool   `json:"is_complete"`
}

type missionSummaryResponse struct {
	missionResponse
	Cat *catResponse `json:"cat"`
}

type missionDetailResponse struct {
	missionResponse
	Cat     *catResponse     `json:"cat"`
	Targets []targetResponse `json:"targets"`
}

type missionListResponse struct {
	Missions []missionSummaryResponse `json:"missions"`
	AllCount int                      `json:"all_count"`
}

type targetResponse struct {
	ID         int64  `json:"id"`
	MissionID  int64  `json:"mission_id"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	IsComplete bool   `json:"is_complete"`
}

type targetDetailResponse struct {
	targetResponse
	Mission missionResponse `json:"mission"`
	Notes   []noteResponse  `json:"notes"`
}

type targetListResponse struct {
	Targets  []targetResponse `json:"targets"`
	AllCount int              `json:"all_count"`
}

type noteResponse struct {
	ID       int64  `json:"id"`
	TargetID int64  `json:"target_id"`
	Content  string `json:"content"`
}

type noteDetailResponse struct {
	noteResponse
	Target  targetResponse  `json:"target"`
	Mission missionResponse `json:"mission"`
}

type noteListResponse struct {
	Notes    []noteResponse `json:"notes"`
	AllCount int            `json:"all_count"`
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:                c.ID,
		Name:              c.Name,
		YearsOfExperience: c.YearsOfExperience,
		Breed:             c.Breed,
		Salary:            c.Salary,
	}
}

func toCatPtr(c *Cat) *catResponse {
	if c == nil {
		return nil
	}
	out := toCatResponse(*c)
	return &out
}

func toMissionResponse(m Mission) missionResponse {
	return missionResponse{ID: m.ID, CatID: m.CatID, IsComplete: m.IsComplete}
}

func toTargetResponse(t Target) targetResponse {
	return targetResponse{
		ID:         t.ID,
		MissionID:  t.MissionID,
		Name:       t.Name,
		Country:    t.Country,
		IsComplete: t.IsComplete,
	}
}

func toNoteResponse(n Note) noteResponse {
	return noteResponse{ID: n.ID, TargetID: n.TargetID, Content: n.Content}
}

// mapSlice convierte siempre a un slice no-nil, así el JSON es [] y no null.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
