package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Reference es el catálogo completo ya validado.
type Reference struct {
	Categories []Category
	Drugs      []Drug
}

// Default arma el catálogo estático de referencia (compilado en el binario).
// Completa ids faltantes y valida invariantes; un seed inconsistente devuelve
// error para que el arranque falle de forma visible.
func Default() (Reference, error) {
	cats := make([]Category, len(seedCategories))
	copy(cats, seedCategories)

	drugs := make([]Drug, len(seedDrugs))
	copy(drugs, seedDrugs)

	known := make(map[string]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}

	seen := make(map[string]bool, len(drugs))
	for i := range drugs {
		if strings.TrimSpace(drugs[i].ID) == "" {
			drugs[i].ID = uuid.NewString()
		}
		if seen[drugs[i].ID] {
			return Reference{}, fmt.Errorf("%w: duplicated id %q", ErrInvalidDrug, drugs[i].ID)
		}
		seen[drugs[i].ID] = true

		if err := drugs[i].Validate(); err != nil {
			return Reference{}, err
		}
		if !known[drugs[i].CategoryID] {
			return Reference{}, fmt.Errorf("%w: %q: unknown category %q", ErrInvalidDrug, drugs[i].ID, drugs[i].CategoryID)
		}
	}

	if len(cats) == 0 || len(drugs) == 0 {
		return Reference{}, ErrEmptyCatalog
	}

	return Reference{Categories: cats, Drugs: drugs}, nil
}

var seedCategories = []Category{
	{ID: "vasopressores", Name: "Vasopressores", Color: "bg-red-500"},
	{ID: "inotropicos", Name: "Inotrópicos", Color: "bg-orange-500"},
	{ID: "sedacao", Name: "Sedação e Analgesia", Color: "bg-blue-500"},
	{ID: "sri", Name: "Sequência Rápida de Intubação", Color: "bg-purple-500"},
}

var seedDrugs = []Drug{
	// --- VASOPRESSORES ---
	{
		ID:                 "nora-simples",
		GroupName:          "Noradrenalina",
		Name:               "Noradrenalina",
		VariantLabel:       "Simples (16 mcg/mL)",
		CategoryID:         "vasopressores",
		Presentation:       "Ampola 4 mg/4 mL (hemitartarato)",
		Dilution:           "1 ampola (4 mg) + 246 mL SG 5%",
		ConcentrationLabel: "16 mcg/mL",
		DoseLabel:          "0,05 a 2 mcg/kg/min",
		Notes:              "Preferir acesso venoso central. Titular conforme PAM alvo.",
		Kind:               KindContinuous,
		ConcentrationValue: 16,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgMin,
		WeightBased:        true,
	},
	{
		ID:                 "nora-padrao",
		GroupName:          "Noradrenalina",
		Name:               "Noradrenalina",
		VariantLabel:       "Padrão (64 mcg/mL)",
		CategoryID:         "vasopressores",
		Presentation:       "Ampola 4 mg/4 mL (hemitartarato)",
		Dilution:           "4 ampolas (16 mg) + 234 mL SG 5%",
		ConcentrationLabel: "64 mcg/mL",
		DoseLabel:          "0,05 a 2 mcg/kg/min",
		Notes:              "Preferir acesso venoso central. Titular conforme PAM alvo.",
		Kind:               KindContinuous,
		ConcentrationValue: 64,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgMin,
		WeightBased:        true,
	},
	{
		ID:                 "nora-concentrada",
		GroupName:          "Noradrenalina",
		Name:               "Noradrenalina",
		VariantLabel:       "Concentrada (128 mcg/mL)",
		CategoryID:         "vasopressores",
		Presentation:       "Ampola 4 mg/4 mL (hemitartarato)",
		Dilution:           "8 ampolas (32 mg) + 218 mL SG 5%",
		ConcentrationLabel: "128 mcg/mL",
		DoseLabel:          "0,05 a 2 mcg/kg/min",
		Notes:              "Usar em restrição hídrica. Exclusivo para acesso central.",
		Kind:               KindContinuous,
		ConcentrationValue: 128,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgMin,
		WeightBased:        true,
	},
	{
		ID:                 "adrenalina-infusao",
		GroupName:          "Adrenalina (infusão)",
		Name:               "Adrenalina",
		CategoryID:         "vasopressores",
		Presentation:       "Ampola 1 mg/1 mL",
		Dilution:           "6 ampolas (6 mg) + 94 mL SG 5%",
		ConcentrationLabel: "60 mcg/mL",
		DoseLabel:          "2 a 10 mcg/min",
		Notes:              "Dose fixa por minuto, independente do peso.",
		Kind:               KindContinuous,
		ConcentrationValue: 60,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgMin,
	},
	{
		ID:                 "vasopressina",
		GroupName:          "Vasopressina",
		Name:               "Vasopressina",
		CategoryID:         "vasopressores",
		Presentation:       "Ampola 20 U/1 mL",
		Dilution:           "1 ampola (20 U) + 99 mL SG 5%",
		ConcentrationLabel: "0,2 U/mL",
		DoseLabel:          "0,01 a 0,04 U/min",
		Notes:              "Segunda linha no choque séptico refratário à noradrenalina.",
		Kind:               KindContinuous,
		ConcentrationValue: 0.2,
		ConcentrationUnit:  ConcUPerML,
		DoseUnit:           DoseUMin,
	},
	// --- INOTRÓPICOS ---
	{
		ID:                 "dobutamina",
		GroupName:          "Dobutamina",
		Name:               "Dobutamina",
		CategoryID:         "inotropicos",
		Presentation:       "Ampola 250 mg/20 mL",
		Dilution:           "1 ampola (250 mg) + 230 mL SG 5%",
		ConcentrationLabel: "1.000 mcg/mL",
		DoseLabel:          "2,5 a 20 mcg/kg/min",
		Notes:              "Atenção a taquiarritmias em doses altas.",
		Kind:               KindContinuous,
		ConcentrationValue: 1000,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgMin,
		WeightBased:        true,
	},
	{
		ID:                 "milrinona",
		GroupName:          "Milrinona",
		Name:               "Milrinona",
		CategoryID:         "inotropicos",
		Presentation:       "Ampola 20 mg/20 mL",
		Dilution:           "1 ampola (20 mg) + 80 mL SG 5%",
		ConcentrationLabel: "200 mcg/mL",
		DoseLabel:          "0,375 a 0,75 mcg/kg/min",
		Notes:              "Ajustar dose na disfunção renal.",
		Kind:               KindContinuous,
		ConcentrationValue: 200,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgMin,
		WeightBased:        true,
	},
	// --- SEDAÇÃO E ANALGESIA ---
	{
		ID:                 "midazolam-infusao",
		GroupName:          "Midazolam",
		Name:               "Midazolam",
		CategoryID:         "sedacao",
		Presentation:       "Ampola 50 mg/10 mL",
		Dilution:           "2 ampolas (100 mg) + 180 mL SF 0,9%",
		ConcentrationLabel: "0,5 mg/mL",
		DoseLabel:          "0,02 a 0,2 mg/kg/h",
		Kind:               KindContinuous,
		ConcentrationValue: 0.5,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKgH,
		WeightBased:        true,
	},
	{
		ID:                 "fentanil-infusao",
		GroupName:          "Fentanil (infusão)",
		Name:               "Fentanil",
		CategoryID:         "sedacao",
		Presentation:       "Frasco 0,05 mg/mL (10 mL)",
		Dilution:           "Puro em bomba de seringa",
		ConcentrationLabel: "50 mcg/mL",
		DoseLabel:          "0,7 a 10 mcg/kg/h",
		Notes:              "Concentração rotulada em mg/mL; conferir antes de programar a bomba.",
		Kind:               KindContinuous,
		ConcentrationValue: 0.05,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMcgKgH,
		WeightBased:        true,
	},
	{
		ID:                 "propofol",
		GroupName:          "Propofol",
		Name:               "Propofol",
		CategoryID:         "sedacao",
		Presentation:       "Frasco 1% (10 mg/mL)",
		Dilution:           "Puro em bomba de seringa",
		ConcentrationLabel: "10 mg/mL",
		DoseLabel:          "0,3 a 4 mg/kg/h",
		Notes:              "Risco de síndrome de infusão do propofol em doses altas prolongadas.",
		Kind:               KindContinuous,
		ConcentrationValue: 10,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKgH,
		WeightBased:        true,
	},
	{
		ID:                 "dexmedetomidina",
		GroupName:          "Dexmedetomidina",
		Name:               "Dexmedetomidina",
		CategoryID:         "sedacao",
		Presentation:       "Ampola 200 mcg/2 mL",
		Dilution:           "1 ampola (200 mcg) + 48 mL SF 0,9%",
		ConcentrationLabel: "4 mcg/mL",
		DoseLabel:          "0,2 a 0,7 mcg/kg/h",
		Notes:              "Sem dose de ataque em paciente instável (bradicardia/hipotensão).",
		Kind:               KindContinuous,
		ConcentrationValue: 4,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKgH,
		WeightBased:        true,
	},
	{
		ID:                 "cetamina-infusao",
		GroupName:          "Cetamina (infusão)",
		Name:               "Cetamina",
		CategoryID:         "sedacao",
		Presentation:       "Frasco 500 mg/10 mL",
		Dilution:           "1 frasco (500 mg) + 90 mL SF 0,9%",
		ConcentrationLabel: "5 mg/mL",
		DoseLabel:          "0,1 a 0,5 mg/kg/h",
		Kind:               KindContinuous,
		ConcentrationValue: 5,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKgH,
		WeightBased:        true,
	},
	// --- SEQUÊNCIA RÁPIDA DE INTUBAÇÃO (BOLUS) ---
	{
		ID:                 "cetamina-sri",
		GroupName:          "Cetamina (indução)",
		Name:               "Cetamina",
		CategoryID:         "sri",
		Presentation:       "Frasco 500 mg/10 mL",
		Dilution:           "Puro (50 mg/mL)",
		ConcentrationLabel: "50 mg/mL",
		DoseLabel:          "1 a 2 mg/kg EV",
		Notes:              "Indução de escolha no paciente hipotenso/broncoespasmo.",
		Kind:               KindBolus,
		ConcentrationValue: 50,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKg,
		WeightBased:        true,
	},
	{
		ID:                 "etomidato",
		GroupName:          "Etomidato",
		Name:               "Etomidato",
		CategoryID:         "sri",
		Presentation:       "Ampola 20 mg/10 mL",
		Dilution:           "Puro (2 mg/mL)",
		ConcentrationLabel: "2 mg/mL",
		DoseLabel:          "0,3 mg/kg EV",
		Kind:               KindBolus,
		ConcentrationValue: 2,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKg,
		WeightBased:        true,
	},
	{
		ID:                 "succinilcolina",
		GroupName:          "Succinilcolina",
		Name:               "Succinilcolina",
		CategoryID:         "sri",
		Presentation:       "Frasco-ampola 100 mg (pó)",
		Dilution:           "100 mg + 10 mL AD (10 mg/mL)",
		ConcentrationLabel: "10 mg/mL",
		DoseLabel:          "1 a 1,5 mg/kg EV",
		Notes:              "Contraindicada em hipercalemia, queimados > 48h e doença neuromuscular.",
		Kind:               KindBolus,
		ConcentrationValue: 10,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKg,
		WeightBased:        true,
	},
	{
		ID:                 "rocuronio",
		GroupName:          "Rocurônio",
		Name:               "Rocurônio",
		CategoryID:         "sri",
		Presentation:       "Frasco 50 mg/5 mL",
		Dilution:           "Puro (10 mg/mL)",
		ConcentrationLabel: "10 mg/mL",
		DoseLabel:          "1,2 mg/kg EV (SRI)",
		Kind:               KindBolus,
		ConcentrationValue: 10,
		ConcentrationUnit:  ConcMgPerML,
		DoseUnit:           DoseMgKg,
		WeightBased:        true,
	},
	{
		ID:                 "fentanil-sri",
		GroupName:          "Fentanil (pré-indução)",
		Name:               "Fentanil",
		CategoryID:         "sri",
		Presentation:       "Frasco 0,05 mg/mL (10 mL)",
		Dilution:           "Puro (50 mcg/mL)",
		ConcentrationLabel: "50 mcg/mL",
		DoseLabel:          "1 a 3 mcg/kg EV lento",
		Notes:              "Administrar 3 minutos antes da indução.",
		Kind:               KindBolus,
		ConcentrationValue: 50,
		ConcentrationUnit:  ConcMcgPerML,
		DoseUnit:           DoseMcgKg,
		WeightBased:        true,
	},
}
