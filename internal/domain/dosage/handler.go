package dosage

import (
	"encoding/json"
	"errors"
	"net/http"

	"salvamed/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catalogSvc *catalog.Service) {
	r.Post("/drugs/{drugID}/convert", convertHandler(svc, catalogSvc))
}

type convertRequest struct {
	Direction string `json:"direction"`
	// Punteros para diferenciar "campo vacío" de 0: el 0 es una dosis legal.
	Value    *float64 `json:"value"`
	WeightKg *float64 `json:"weight_kg"`
}

type convertResponse struct {
	Status string          `json:"status"`
	Result *convertPayload `json:"result,omitempty"`
}

type convertPayload struct {
	Direction string  `json:"direction"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Kind      string  `json:"kind"`
}

// convertHandler godoc
// @Summary Convierte dosis <-> flujo de bomba para una droga del catálogo
// @Param drugID path string true "id de la droga"
// @Param request body convertRequest true "dirección, valor y peso (si aplica)"
// @Accept json
// @Produce json
// @Success 200 {object} convertResponse
// @Failure 400 {string} string "invalid configuration"
// @Failure 404 {string} string "drug not found"
// @Router /drugs/{drugID}/convert [post]
func convertHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drug, err := catalogSvc.GetDrug(r.Context(), chi.URLParam(r, "drugID"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				http.Error(w, "drug not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var req convertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dir, err := ParseDirection(req.Direction)
		if err != nil {
			http.Error(w, "direction must be doseToFlow or flowToDose", http.StatusBadRequest)
			return
		}

		out, err := svc.Convert(drug, Request{
			Direction: dir,
			Value:     req.Value,
			WeightKg:  req.WeightKg,
		})
		if err != nil {
			// Violación de contrato (catálogo/vista), no error de usuario.
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := convertResponse{Status: string(out.Status)}
		if out.Result != nil {
			resp.Result = &convertPayload{
				Direction: string(out.Result.Direction),
				Value:     out.Result.Value,
				Unit:      out.Result.Unit,
				Kind:      string(out.Result.Kind),
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
