package agency

import (
	"net/http"
)

type catRequest struct {
	Name              string  `json:"name"`
	YearsOfExperience int     `json:"years_of_experience"`
	Breed             string  `json:"breed"` // nombre exacto de TheCatAPI, sin distinguir mayúsculas
	Salary            float64 `json:"salary"`
}

func (req catRequest) toInput() CatInput {
	return CatInput{
		Name:              req.Name,
		YearsOfExperience: req.YearsOfExperience,
		Breed:             req.Breed,
		Salary:            req.Salary,
	}
}

// createCatHandler godoc
// @Summary Crear spy cat
// @Description Da de alta un gato espía. La raza se valida contra TheCatAPI; si el catálogo no responde, la raza se rechaza.
// @Tags spycats
// @Accept json
// @Produce json
// @Param payload body catRequest true "Datos del gato"
// @Success 201 {object} catResponse
// @Failure 400 {object} errorResponse "invalid json / invalid breed / datos inválidos"
// @Router /spycat/ [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		c, err := svc.CreateCat(r.Context(), req.toInput())
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// listCatsHandler godoc
// @Summary Listar spy cats
// @Description Lista paginada en orden de alta. all_count es el total sin paginar.
// @Tags spycats
// @Produce json
// @Param skip query int false "Registros a saltar (alias: offset)"
// @Param limit query int false "Máximo a devolver; 0 = sin límite. Por defecto 10"
// @Success 200 {object} catListResponse
// @Failure 400 {object} errorResponse "parámetros de paginación inválidos"
// @Router /spycat/ [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pageFrom(w, r, svc.log)
		if !ok {
			return
		}

		items, total, err := svc.ListCats(r.Context(), page)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, catListResponse{
			SpyCats:  mapSlice(items, toCatResponse),
			AllCount: total,
		})
	}
}

// getCatHandler godoc
// @Summary Ver spy cat
// @Description Devuelve el gato con sus misiones.
// @Tags spycats
// @Produce json
// @Param catID path int true "ID del gato"
// @Success 200 {object} catDetailResponse
// @Failure 400 {object} errorResponse "id inválido"
// @Failure 404 {object} errorResponse "spy cat not found"
// @Router /spycat/{catID} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "catID")
		if !ok {
			return
		}

		d, err := svc.GetCat(r.Context(), id)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, catDetailResponse{
			catResponse: toCatResponse(d.Cat),
			Missions:    mapSlice(d.Missions, toMissionResponse),
		})
	}
}

// updateCatHandler godoc
// @Summary Actualizar spy cat
// @Description Reemplaza todos los campos del gato. La raza se vuelve a validar.
// @Tags spycats
// @Accept json
// @Produce json
// @Param catID path int true "ID del gato"
// @Param payload body catRequest true "Datos completos del gato"
// @Success 200 {object} catResponse
// @Failure 400 {object} errorResponse "invalid json / invalid breed / datos inválidos"
// @Failure 404 {object} errorResponse "spy cat not found"
// @Router /spycat/{catID} [put]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "catID")
		if !ok {
			return
		}

		var req catRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		c, err := svc.UpdateCat(r.Context(), id, req.toInput())
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// deleteCatHandler godoc
// @Summary Borrar spy cat
// @Description Borra el gato. Sus misiones quedan sin asignar (cat_id = null).
// @Tags spycats
// @Produce json
// @Param catID path int true "ID del gato"
// @Success 200 {object} catResponse
// @Failure 404 {object} errorResponse "spy cat not found"
// @Router /spycat/{catID} [delete]
func deleteCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "catID")
		if !ok {
			return
		}

		c, err := svc.DeleteCat(r.Context(), id)
		if err != nil {
			writeError(w, svc.log, err)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}
