package magnesium

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/electrolytes/magnesium", func(mr chi.Router) {
		mr.Get("/protocol", protocolHandler(svc))
		mr.Get("/emergency", emergencyHandler(svc))
	})
}

type protocolResponse struct {
	Status         string            `json:"status"`
	Classification string            `json:"classification,omitempty"`
	Label          string            `json:"label,omitempty"`
	Blocks         []blockResponse   `json:"blocks,omitempty"`
	Ampoules       []ampouleResponse `json:"ampoules,omitempty"`
}

type emergencyResponse struct {
	Blocks   []blockResponse   `json:"blocks"`
	Ampoules []ampouleResponse `json:"ampoules"`
}

type blockResponse struct {
	Title string         `json:"title"`
	Items []itemResponse `json:"items"`
}

type itemResponse struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Note   string `json:"note,omitempty"`
}

type ampouleResponse struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// protocolHandler godoc
// @Summary Protocolo de magnesio por rango del valor sérico (mg/dL)
// @Param mg query number false "Mg sérico en mg/dL"
// @Produce json
// @Success 200 {object} protocolResponse
// @Router /electrolytes/magnesium/protocol [get]
func protocolHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mg *float64
		if raw := r.URL.Query().Get("mg"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				http.Error(w, "mg must be a number", http.StatusBadRequest)
				return
			}
			mg = &v
		}

		out := svc.Evaluate(mg)
		writeJSON(w, http.StatusOK, protocolResponse{
			Status:         string(out.Status),
			Classification: string(out.Classification),
			Label:          out.Label,
			Blocks:         toBlocks(out.Blocks),
			Ampoules:       toAmpoules(out.Ampoules),
		})
	}
}

// emergencyHandler godoc
// @Summary Protocolos de emergencia de magnesio (torsades, síntomas graves)
// @Produce json
// @Success 200 {object} emergencyResponse
// @Router /electrolytes/magnesium/emergency [get]
func emergencyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := svc.Emergency()
		writeJSON(w, http.StatusOK, emergencyResponse{
			Blocks:   toBlocks(p.Blocks),
			Ampoules: toAmpoules(p.Ampoules),
		})
	}
}

func toBlocks(blocks []Block) []blockResponse {
	out := make([]blockResponse, 0, len(blocks))
	for _, b := range blocks {
		br := blockResponse{Title: b.Title}
		for _, it := range b.Items {
			br.Items = append(br.Items, itemResponse{Name: it.Name, Detail: it.Detail, Note: it.Note})
		}
		out = append(out, br)
	}
	return out
}

func toAmpoules(refs []AmpouleRef) []ampouleResponse {
	out := make([]ampouleResponse, 0, len(refs))
	for _, a := range refs {
		out = append(out, ampouleResponse{Name: a.Name, Detail: a.Detail})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
