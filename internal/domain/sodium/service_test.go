package sodium

import (
	"errors"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestCorrect_HypernatremiaWithSG5(t *testing.T) {
	svc := NewService()

	// Hombre 45a 70kg: ACT 42 L. Na 160 -> 152 con SG5 (Na 0):
	// ΔNa/L = -160/43 = -3.72, volumen = 8/3.7209 = 2.15 L, vazão 89.6 mL/h.
	out, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(160),
		TargetNa:    fptr(152),
		SolutionKey: "sg5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Result == nil {
		t.Fatalf("expected ok outcome, got %+v", out)
	}

	res := out.Result
	if res.TotalBodyWaterL != 42 {
		t.Fatalf("expected TBW 42, got %v", res.TotalBodyWaterL)
	}
	if res.DeltaNaPerLiterL != -3.72 {
		t.Fatalf("expected ΔNa/L -3.72, got %v", res.DeltaNaPerLiterL)
	}
	if res.VolumeNeededL == nil || *res.VolumeNeededL != 2.15 {
		t.Fatalf("expected volume 2.15 L, got %+v", res.VolumeNeededL)
	}
	if res.RateMLPerHour == nil || *res.RateMLPerHour != 89.6 {
		t.Fatalf("expected rate 89.6 mL/h, got %+v", res.RateMLPerHour)
	}

	// Variación exactamente 8 => sin alerta (umbral estricto).
	if out.Alert != "" {
		t.Fatalf("expected no alert at exactly 8 mEq/L, got %q", out.Alert)
	}
}

func TestCorrect_AlertAboveThreshold(t *testing.T) {
	svc := NewService()

	out, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(160),
		TargetNa:    fptr(150),
		SolutionKey: "sg5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK {
		t.Fatalf("expected ok, got %+v", out)
	}
	if out.Alert == "" {
		t.Fatalf("expected alert for 10 mEq/L variation")
	}
}

func TestCorrect_HyponatremiaWithNaCl3(t *testing.T) {
	svc := NewService()

	// Hombre 40a 70kg, Na 120 -> 125 con NaCl 3% (513):
	// ΔNa/L = 393/43 = 9.14, volumen 0.55 L, vazão 22.8 mL/h.
	out, err := svc.Correct(Request{
		Direction:   DirectionHypo,
		WeightKg:    fptr(70),
		AgeYears:    fptr(40),
		Sex:         SexMale,
		CurrentNa:   fptr(120),
		TargetNa:    fptr(125),
		SolutionKey: "nacl3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Result == nil {
		t.Fatalf("expected ok, got %+v", out)
	}
	if out.Result.DeltaNaPerLiterL != 9.14 {
		t.Fatalf("expected ΔNa/L 9.14, got %v", out.Result.DeltaNaPerLiterL)
	}
	if out.Result.VolumeNeededL == nil || *out.Result.VolumeNeededL != 0.55 {
		t.Fatalf("expected volume 0.55 L, got %+v", out.Result.VolumeNeededL)
	}
	if out.Result.RateMLPerHour == nil || *out.Result.RateMLPerHour != 22.8 {
		t.Fatalf("expected rate 22.8 mL/h, got %+v", out.Result.RateMLPerHour)
	}
}

func TestTBWFractions(t *testing.T) {
	svc := NewService()

	cases := []struct {
		name     string
		sex      Sex
		age      float64
		weight   float64
		expected float64
	}{
		{"male young", SexMale, 45, 70, 42},
		{"male exactly 60 keeps young fraction", SexMale, 60, 100, 60},
		{"male over 60", SexMale, 61, 100, 50},
		{"female young", SexFemale, 30, 70, 35},
		{"female over 60", SexFemale, 70, 70, 31.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.Correct(Request{
				Direction:   DirectionHyper,
				WeightKg:    fptr(tc.weight),
				AgeYears:    fptr(tc.age),
				Sex:         tc.sex,
				CurrentNa:   fptr(160),
				TargetNa:    fptr(155),
				SolutionKey: "sg5",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Result == nil || out.Result.TotalBodyWaterL != tc.expected {
				t.Fatalf("expected TBW %v, got %+v", tc.expected, out.Result)
			}
		})
	}
}

func TestCorrect_TargetEqualsCurrentYieldsZeroVolume(t *testing.T) {
	svc := NewService()

	out, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(150),
		TargetNa:    fptr(150),
		SolutionKey: "sg5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusOK || out.Result == nil {
		t.Fatalf("expected ok with zero volume, got %+v", out)
	}
	if out.Result.VolumeNeededL == nil || *out.Result.VolumeNeededL != 0 {
		t.Fatalf("expected volume 0, got %+v", out.Result.VolumeNeededL)
	}
	if out.Result.RateMLPerHour == nil || *out.Result.RateMLPerHour != 0 {
		t.Fatalf("expected rate 0, got %+v", out.Result.RateMLPerHour)
	}
}

func TestCorrect_ZeroDeltaIsUnavailable(t *testing.T) {
	svc := NewService()

	// SF 0,9% (154) con Na actual 154: denominador cero.
	out, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(154),
		TargetNa:    fptr(145),
		SolutionKey: "sf09",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %+v", out)
	}
	if out.Result == nil || out.Result.VolumeNeededL != nil || out.Result.RateMLPerHour != nil {
		t.Fatalf("unavailable must not carry volume/rate, got %+v", out.Result)
	}
	// La variación pedida es 9 > 8: el alerta dispara igual.
	if out.Alert == "" {
		t.Fatalf("alert must fire independently of availability")
	}
}

func TestCorrect_NegativeVolumeIsUnavailable(t *testing.T) {
	svc := NewService()

	// Alvo por encima del actual con una solución que baja el sodio.
	out, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(140),
		TargetNa:    fptr(145),
		SolutionKey: "sg5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != StatusUnavailable {
		t.Fatalf("expected unavailable for negative volume, got %+v", out)
	}
}

func TestCorrect_InsufficientInput(t *testing.T) {
	svc := NewService()

	base := func() Request {
		return Request{
			Direction:   DirectionHyper,
			WeightKg:    fptr(70),
			AgeYears:    fptr(45),
			Sex:         SexMale,
			CurrentNa:   fptr(160),
			TargetNa:    fptr(152),
			SolutionKey: "sg5",
		}
	}

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing weight", func(r *Request) { r.WeightKg = nil }},
		{"missing age", func(r *Request) { r.AgeYears = nil }},
		{"missing current na", func(r *Request) { r.CurrentNa = nil }},
		{"missing target na", func(r *Request) { r.TargetNa = nil }},
		{"zero weight", func(r *Request) { r.WeightKg = fptr(0) }},
		{"negative age", func(r *Request) { r.AgeYears = fptr(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)
			out, err := svc.Correct(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Status != StatusInsufficientInput {
				t.Fatalf("expected insufficient_input, got %+v", out)
			}
		})
	}
}

func TestCorrect_InvalidSolutionForDirection(t *testing.T) {
	svc := NewService()

	// NaCl 3% solo existe en el set de hiponatremia.
	_, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         SexMale,
		CurrentNa:   fptr(160),
		TargetNa:    fptr(152),
		SolutionKey: "nacl3",
	})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestCorrect_UnknownSex(t *testing.T) {
	svc := NewService()

	_, err := svc.Correct(Request{
		Direction:   DirectionHyper,
		WeightKg:    fptr(70),
		AgeYears:    fptr(45),
		Sex:         Sex("other"),
		CurrentNa:   fptr(160),
		TargetNa:    fptr(152),
		SolutionKey: "sg5",
	})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSolutionsPerDirection(t *testing.T) {
	hyper := Solutions(DirectionHyper)
	if len(hyper) != 3 || hyper[0].Key != "sf09" || hyper[1].Key != "sg5" || hyper[2].Key != "nacl045" {
		t.Fatalf("unexpected lowering set: %+v", hyper)
	}
	if len(hyper[2].Recipes) != 4 {
		t.Fatalf("NaCl 0,45%% must carry its 4 recipes, got %d", len(hyper[2].Recipes))
	}

	hypo := Solutions(DirectionHypo)
	if len(hypo) != 2 || hypo[0].Key != "nacl3" || hypo[1].Key != "sf09" {
		t.Fatalf("unexpected raising set: %+v", hypo)
	}
	if hypo[0].SodiumMEqL != 513 {
		t.Fatalf("NaCl 3%% must be 513 mEq/L, got %v", hypo[0].SodiumMEqL)
	}
}

func TestAcuteProtocolIsStatic(t *testing.T) {
	p := Acute()
	if p.Title == "" || p.Bolus == "" || p.Warning == "" {
		t.Fatalf("acute protocol must be fully populated: %+v", p)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("hyper"); err != nil || d != DirectionHyper {
		t.Fatalf("hyper: got %v %v", d, err)
	}
	if d, err := ParseDirection("hypo"); err != nil || d != DirectionHypo {
		t.Fatalf("hypo: got %v %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
