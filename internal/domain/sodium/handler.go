package sodium

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/electrolytes/sodium", func(sr chi.Router) {
		sr.Post("/correct", correctHandler(svc))
		sr.Get("/solutions", listSolutionsHandler())
		sr.Get("/acute", acuteHandler())
	})
}

type correctRequest struct {
	Direction string   `json:"direction"`
	WeightKg  *float64 `json:"weight_kg"`
	AgeYears  *float64 `json:"age_years"`
	Sex       string   `json:"sex"`
	CurrentNa *float64 `json:"current_na"`
	TargetNa  *float64 `json:"target_na"`
	Solution  string   `json:"solution"`
}

type correctResponse struct {
	Status string          `json:"status"`
	Alert  string          `json:"alert,omitempty"`
	Result *correctPayload `json:"result,omitempty"`
}

type correctPayload struct {
	TotalBodyWaterL  float64  `json:"total_body_water_l"`
	DeltaNaPerLiterL float64  `json:"delta_na_per_liter"`
	VolumeNeededL    *float64 `json:"volume_needed_l,omitempty"`
	RateMLPerHour    *float64 `json:"rate_ml_h,omitempty"`
	Recipes          []string `json:"recipes,omitempty"`
}

type solutionResponse struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	SodiumMEqL float64  `json:"sodium_meq_l"`
	Recipes    []string `json:"recipes,omitempty"`
}

type acuteResponse struct {
	Title   string `json:"title"`
	Bolus   string `json:"bolus"`
	Repeat  string `json:"repeat"`
	Target  string `json:"target"`
	Warning string `json:"warning"`
}

// correctHandler godoc
// @Summary Corrección de sodio por Adrogué-Madias
// @Param request body correctRequest true "datos del paciente, Na actual/alvo y solución"
// @Accept json
// @Produce json
// @Success 200 {object} correctResponse
// @Failure 400 {string} string "invalid configuration"
// @Router /electrolytes/sodium/correct [post]
func correctHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req correctRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dir, err := ParseDirection(req.Direction)
		if err != nil {
			http.Error(w, "direction must be hyper or hypo", http.StatusBadRequest)
			return
		}

		out, err := svc.Correct(Request{
			Direction:   dir,
			WeightKg:    req.WeightKg,
			AgeYears:    req.AgeYears,
			Sex:         Sex(req.Sex),
			CurrentNa:   req.CurrentNa,
			TargetNa:    req.TargetNa,
			SolutionKey: req.Solution,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := correctResponse{Status: string(out.Status), Alert: out.Alert}
		if out.Result != nil {
			resp.Result = &correctPayload{
				TotalBodyWaterL:  out.Result.TotalBodyWaterL,
				DeltaNaPerLiterL: out.Result.DeltaNaPerLiterL,
				VolumeNeededL:    out.Result.VolumeNeededL,
				RateMLPerHour:    out.Result.RateMLPerHour,
				Recipes:          out.Result.Recipes,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// listSolutionsHandler godoc
// @Summary Lista las soluciones válidas para una dirección de corrección
// @Param direction query string false "hyper (default) | hypo"
// @Produce json
// @Success 200 {array} solutionResponse
// @Router /electrolytes/sodium/solutions [get]
func listSolutionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir := DirectionHyper
		if q := r.URL.Query().Get("direction"); q != "" {
			parsed, err := ParseDirection(q)
			if err != nil {
				http.Error(w, "direction must be hyper or hypo", http.StatusBadRequest)
				return
			}
			dir = parsed
		}

		sols := Solutions(dir)
		out := make([]solutionResponse, 0, len(sols))
		for _, s := range sols {
			out = append(out, solutionResponse{
				Key:        s.Key,
				Label:      s.Label,
				SodiumMEqL: s.SodiumMEqL,
				Recipes:    s.Recipes,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// acuteHandler godoc
// @Summary Protocolo fijo de hiponatremia aguda sintomática grave
// @Produce json
// @Success 200 {object} acuteResponse
// @Router /electrolytes/sodium/acute [get]
func acuteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := Acute()
		writeJSON(w, http.StatusOK, acuteResponse{
			Title:   p.Title,
			Bolus:   p.Bolus,
			Repeat:  p.Repeat,
			Target:  p.Target,
			Warning: p.Warning,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
