package dosage

import (
	"errors"
	"math"
	"testing"

	"salvamed/internal/domain/catalog"
)

func fptr(v float64) *float64 { return &v }

func testDrug(kind catalog.CalculationKind, concValue float64, concUnit catalog.ConcentrationUnit, doseUnit catalog.DoseUnit, weightBased bool) catalog.Drug {
	return catalog.Drug{
		ID:                 "test-drug",
		GroupName:          "Test",
		Name:               "Test",
		CategoryID:         "cat",
		Kind:               kind,
		ConcentrationValue: concValue,
		ConcentrationUnit:  concUnit,
		DoseUnit:           doseUnit,
		WeightBased:        weightBased,
	}
}

func TestConvert_McgKgMin_DoseToFlow(t *testing.T) {
	svc := NewService()

	// Noradrenalina simples: 16 mcg/mL, 0.1 mcg/kg/min, 70 kg
	drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseMcgKgMin, true)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(0.1), WeightKg: fptr(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Result == nil {
		t.Fatalf("expected ok outcome, got %+v", out)
	}
	if out.Result.Value != 26.25 {
		t.Fatalf("expected 26.25 mL/h, got %v", out.Result.Value)
	}
	if out.Result.Unit != "mL/h" {
		t.Fatalf("expected unit mL/h, got %q", out.Result.Unit)
	}
}

func TestConvert_McgKgMin_FlowToDose(t *testing.T) {
	svc := NewService()
	drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseMcgKgMin, true)

	out, err := svc.Convert(drug, Request{Direction: FlowToDose, Value: fptr(26.25), WeightKg: fptr(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 0.1 {
		t.Fatalf("expected 0.1 mcg/kg/min, got %+v", out.Result)
	}
	if out.Result.Unit != "mcg/kg/min" {
		t.Fatalf("expected dose unit label, got %q", out.Result.Unit)
	}
}

func TestConvert_McgMin_NoWeightNeeded(t *testing.T) {
	svc := NewService()

	// Adrenalina en infusión: 60 mcg/mL, dosis en mcg/min, sin peso
	drug := testDrug(catalog.KindContinuous, 60, catalog.ConcMcgPerML, catalog.DoseMcgMin, false)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 5 {
		t.Fatalf("expected 5 mL/h, got %+v", out.Result)
	}
}

func TestConvert_UMin(t *testing.T) {
	svc := NewService()

	// Vasopressina: 0.2 U/mL, 0.03 U/min -> 9 mL/h
	drug := testDrug(catalog.KindContinuous, 0.2, catalog.ConcUPerML, catalog.DoseUMin, false)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(0.03)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 9 {
		t.Fatalf("expected 9 mL/h, got %+v", out.Result)
	}
}

func TestConvert_Bolus_FlowToDose(t *testing.T) {
	svc := NewService()

	// Bolus: 20 mg/mL, 5 mL, 70 kg -> 100/70 = 1.429 mg/kg
	drug := testDrug(catalog.KindBolus, 20, catalog.ConcMgPerML, catalog.DoseMgKg, true)

	out, err := svc.Convert(drug, Request{Direction: FlowToDose, Value: fptr(5), WeightKg: fptr(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 1.429 {
		t.Fatalf("expected 1.429 mg/kg, got %+v", out.Result)
	}
}

func TestConvert_Bolus_DoseToFlow_UnitIsML(t *testing.T) {
	svc := NewService()

	// Cetamina SRI: 50 mg/mL, 2 mg/kg, 80 kg -> 160/50 = 3.2 mL
	drug := testDrug(catalog.KindBolus, 50, catalog.ConcMgPerML, catalog.DoseMgKg, true)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(2), WeightKg: fptr(80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 3.2 {
		t.Fatalf("expected 3.2 mL, got %+v", out.Result)
	}
	if out.Result.Unit != "mL" {
		t.Fatalf("bolus volume must be mL, got %q", out.Result.Unit)
	}
}

func TestConvert_NormalizesMgConcentrationForMcgDose(t *testing.T) {
	svc := NewService()

	// Fentanil 0.05 mg/mL con dosis en mcg/kg/h: concentración efectiva 50 mcg/mL
	drug := testDrug(catalog.KindContinuous, 0.05, catalog.ConcMgPerML, catalog.DoseMcgKgH, true)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(1), WeightKg: fptr(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 1.4 {
		t.Fatalf("expected 1.4 mL/h, got %+v", out.Result)
	}
}

func TestConvert_NormalizesMcgConcentrationForMgDose(t *testing.T) {
	svc := NewService()

	// 500 mcg/mL con dosis en mg/kg/h: concentración efectiva 0.5 mg/mL
	drug := testDrug(catalog.KindContinuous, 500, catalog.ConcMcgPerML, catalog.DoseMgKgH, true)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(0.1), WeightKg: fptr(50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result == nil || out.Result.Value != 10 {
		t.Fatalf("expected 10 mL/h, got %+v", out.Result)
	}
}

// La normalización es transparente: la misma droga expresada en mg/mL o en su
// equivalente mcg/mL produce el mismo flujo.
func TestConvert_EquivalentConcentrationsAgree(t *testing.T) {
	svc := NewService()

	inMg := testDrug(catalog.KindContinuous, 0.05, catalog.ConcMgPerML, catalog.DoseMcgKgH, true)
	inMcg := testDrug(catalog.KindContinuous, 50, catalog.ConcMcgPerML, catalog.DoseMcgKgH, true)
	req := Request{Direction: DoseToFlow, Value: fptr(2.5), WeightKg: fptr(64)}

	a, err := svc.Convert(inMg, req)
	if err != nil {
		t.Fatalf("mg/mL drug: %v", err)
	}
	b, err := svc.Convert(inMcg, req)
	if err != nil {
		t.Fatalf("mcg/mL drug: %v", err)
	}
	if a.Result == nil || b.Result == nil || a.Result.Value != b.Result.Value {
		t.Fatalf("equivalent concentrations diverged: %+v vs %+v", a.Result, b.Result)
	}
}

func TestConvert_ZeroValueIsLegal(t *testing.T) {
	svc := NewService()
	drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseMcgKgMin, true)

	out, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(0), WeightKg: fptr(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Result == nil || out.Result.Value != 0 {
		t.Fatalf("zero dose must convert to zero flow, got %+v", out)
	}
}

func TestConvert_InsufficientInput(t *testing.T) {
	svc := NewService()
	weighted := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseMcgKgMin, true)

	cases := []struct {
		name string
		req  Request
	}{
		{"missing value", Request{Direction: DoseToFlow, WeightKg: fptr(70)}},
		{"missing weight", Request{Direction: DoseToFlow, Value: fptr(0.1)}},
		{"zero weight", Request{Direction: DoseToFlow, Value: fptr(0.1), WeightKg: fptr(0)}},
		{"negative weight", Request{Direction: DoseToFlow, Value: fptr(0.1), WeightKg: fptr(-5)}},
		{"nan value", Request{Direction: DoseToFlow, Value: fptr(math.NaN()), WeightKg: fptr(70)}},
		{"inf value", Request{Direction: DoseToFlow, Value: fptr(math.Inf(1)), WeightKg: fptr(70)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.Convert(weighted, tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Status != StatusInsufficientInput {
				t.Fatalf("expected insufficient_input, got %+v", out)
			}
			if out.Result != nil {
				t.Fatalf("insufficient_input must not carry a result")
			}
		})
	}
}

func TestConvert_InvalidConfiguration(t *testing.T) {
	svc := NewService()

	t.Run("unknown dose unit", func(t *testing.T) {
		drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseUnit("mg/min"), false)
		_, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(1)})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		// mg/kg es de bolus pero la droga dice continuous
		drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMgPerML, catalog.DoseMgKg, true)
		_, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(1), WeightKg: fptr(70)})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("units dose with mass concentration", func(t *testing.T) {
		drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMgPerML, catalog.DoseUMin, false)
		_, err := svc.Convert(drug, Request{Direction: DoseToFlow, Value: fptr(1)})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		drug := testDrug(catalog.KindContinuous, 16, catalog.ConcMcgPerML, catalog.DoseMcgKgMin, true)
		_, err := svc.Convert(drug, Request{Direction: Direction("sideways"), Value: fptr(1), WeightKg: fptr(70)})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
}

// Ley de ida y vuelta: para cada fila de la tabla, dosis -> flujo -> dosis
// reproduce la dosis original (módulo el redondeo de display).
func TestConvert_RoundTripPerFormula(t *testing.T) {
	svc := NewService()

	rows := []struct {
		doseUnit catalog.DoseUnit
		kind     catalog.CalculationKind
		weighted bool
		conc     float64
		concUnit catalog.ConcentrationUnit
		dose     float64
	}{
		{catalog.DoseMcgKgMin, catalog.KindContinuous, true, 64, catalog.ConcMcgPerML, 0.5},
		{catalog.DoseMcgMin, catalog.KindContinuous, false, 60, catalog.ConcMcgPerML, 10},
		{catalog.DoseUMin, catalog.KindContinuous, false, 0.2, catalog.ConcUPerML, 0.04},
		{catalog.DoseMgKgH, catalog.KindContinuous, true, 0.5, catalog.ConcMgPerML, 0.05},
		{catalog.DoseMcgKgH, catalog.KindContinuous, true, 4, catalog.ConcMcgPerML, 0.7},
		{catalog.DoseMgKg, catalog.KindBolus, true, 50, catalog.ConcMgPerML, 2},
		{catalog.DoseMcgKg, catalog.KindBolus, true, 50, catalog.ConcMcgPerML, 3},
	}

	for _, row := range rows {
		t.Run(string(row.doseUnit), func(t *testing.T) {
			drug := testDrug(row.kind, row.conc, row.concUnit, row.doseUnit, row.weighted)
			req := Request{Direction: DoseToFlow, Value: fptr(row.dose), WeightKg: fptr(70)}

			fwd, err := svc.Convert(drug, req)
			if err != nil {
				t.Fatalf("forward: %v", err)
			}
			if fwd.Status != StatusOK {
				t.Fatalf("forward: expected ok, got %+v", fwd)
			}

			back, err := svc.Convert(drug, Request{Direction: FlowToDose, Value: fptr(fwd.Result.Value), WeightKg: fptr(70)})
			if err != nil {
				t.Fatalf("back: %v", err)
			}
			if back.Status != StatusOK {
				t.Fatalf("back: expected ok, got %+v", back)
			}
			if math.Abs(back.Result.Value-row.dose) > 0.01 {
				t.Fatalf("round trip drifted: started %v, came back %v", row.dose, back.Result.Value)
			}
		})
	}
}
