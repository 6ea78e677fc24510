package potassium

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/electrolytes/potassium/protocol", protocolHandler(svc))
}

type protocolResponse struct {
	Status         string          `json:"status"`
	Severity       string          `json:"severity,omitempty"`
	Label          string          `json:"label,omitempty"`
	Conduct        string          `json:"conduct,omitempty"`
	NeedsECGAnswer bool            `json:"needs_ecg_answer,omitempty"`
	Blocks         []blockResponse `json:"blocks,omitempty"`
}

type blockResponse struct {
	Step  string         `json:"step"`
	Title string         `json:"title"`
	Items []itemResponse `json:"items"`
}

type itemResponse struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Note   string `json:"note,omitempty"`
}

// protocolHandler godoc
// @Summary Protocolo de potasio por rango del valor sérico
// @Param tab query string false "hyper (default) | hypo"
// @Param k query number false "K+ sérico en mEq/L"
// @Param ecg_changes query boolean false "hay alteraciones en el ECG (solo rango leve)"
// @Produce json
// @Success 200 {object} protocolResponse
// @Router /electrolytes/potassium/protocol [get]
func protocolHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if q.Get("tab") == "hypo" {
			writeOutcome(w, svc.Hypokalemia())
			return
		}

		var k *float64
		if raw := q.Get("k"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				http.Error(w, "k must be a number", http.StatusBadRequest)
				return
			}
			k = &v
		}

		var ecg *bool
		if raw := q.Get("ecg_changes"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "ecg_changes must be a boolean", http.StatusBadRequest)
				return
			}
			ecg = &v
		}

		writeOutcome(w, svc.Hyperkalemia(k, ecg))
	}
}

func writeOutcome(w http.ResponseWriter, out Outcome) {
	resp := protocolResponse{
		Status:         string(out.Status),
		Severity:       string(out.Severity),
		Label:          out.Label,
		Conduct:        out.Conduct,
		NeedsECGAnswer: out.NeedsECGAnswer,
	}
	for _, b := range out.Blocks {
		br := blockResponse{Step: b.Step, Title: b.Title}
		for _, it := range b.Items {
			br.Items = append(br.Items, itemResponse{Name: it.Name, Detail: it.Detail, Note: it.Note})
		}
		resp.Blocks = append(resp.Blocks, br)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
