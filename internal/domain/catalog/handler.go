package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/categories", listCategoriesHandler(svc))
	r.Get("/drugs", listDrugsHandler(svc))
	r.Get("/drugs/{drugID}", getDrugHandler(svc))
}

type categoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type drugResponse struct {
	ID           string `json:"id"`
	GroupName    string `json:"group_name"`
	Name         string `json:"name"`
	VariantLabel string `json:"variant_label,omitempty"`
	CategoryID   string `json:"category_id"`

	Presentation       string `json:"presentation"`
	Dilution           string `json:"dilution"`
	ConcentrationLabel string `json:"concentration_label"`
	DoseLabel          string `json:"dose_label"`
	Notes              string `json:"notes,omitempty"`

	Kind               string  `json:"kind"`
	ConcentrationValue float64 `json:"concentration_value"`
	ConcentrationUnit  string  `json:"concentration_unit"`
	DoseUnit           string  `json:"dose_unit"`
	WeightBased        bool    `json:"weight_based"`
}

type drugGroupResponse struct {
	GroupName string         `json:"group_name"`
	Variants  []drugResponse `json:"variants"`
}

// listCategoriesHandler godoc
// @Summary Lista las categorías del catálogo
// @Produce json
// @Success 200 {array} categoryResponse
// @Router /categories [get]
func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.ListCategories(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]categoryResponse, 0, len(cats))
		for _, c := range cats {
			out = append(out, categoryResponse{ID: c.ID, Name: c.Name, Color: c.Color})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listDrugsHandler godoc
// @Summary Lista drogas, agrupadas por nombre para el selector de variantes
// @Param category query string false "filtrar por categoría"
// @Produce json
// @Success 200 {array} drugGroupResponse
// @Router /drugs [get]
func listDrugsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.GroupDrugs(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]drugGroupResponse, 0, len(groups))
		for _, g := range groups {
			resp := drugGroupResponse{GroupName: g.GroupName}
			for _, d := range g.Variants {
				resp.Variants = append(resp.Variants, toDrugResponse(d))
			}
			out = append(out, resp)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDrugHandler godoc
// @Summary Obtiene una droga puntual (variante) por id
// @Param drugID path string true "id de la droga"
// @Produce json
// @Success 200 {object} drugResponse
// @Failure 404 {string} string "drug not found"
// @Router /drugs/{drugID} [get]
func getDrugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetDrug(r.Context(), chi.URLParam(r, "drugID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "drug not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toDrugResponse(d))
	}
}

func toDrugResponse(d Drug) drugResponse {
	return drugResponse{
		ID:                 d.ID,
		GroupName:          d.GroupName,
		Name:               d.Name,
		VariantLabel:       d.VariantLabel,
		CategoryID:         d.CategoryID,
		Presentation:       d.Presentation,
		Dilution:           d.Dilution,
		ConcentrationLabel: d.ConcentrationLabel,
		DoseLabel:          d.DoseLabel,
		Notes:              d.Notes,
		Kind:               string(d.Kind),
		ConcentrationValue: d.ConcentrationValue,
		ConcentrationUnit:  string(d.ConcentrationUnit),
		DoseUnit:           string(d.DoseUnit),
		WeightBased:        d.WeightBased,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (catalog/dosage/sodium) igual que en el resto del proyecto: evitamos un
// paquete de helpers compartido mientras la duplicación sea chica.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
