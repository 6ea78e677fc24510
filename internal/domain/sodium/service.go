package sodium

import (
	"fmt"
	"math"
)

const (
	// Umbral estricto del alerta de corrección (mEq/L en 24h). El rango
	// "6-8 (hasta 8-10)" es solo texto para el clínico, no una segunda
	// condición calculada.
	alertThresholdMEqL = 8

	alertMessage = "Alerta: variação máxima recomendada é de 8-10 mEq/L nas primeiras 24h (ideal 6-8)."

	correctionWindowHours = 24
)

// Service es el corrector de sodio (Adrogué-Madias). Puro y sincrónico, igual
// que el conversor de dosis: la vista decide cuándo recalcular.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// tbwFraction: fracción de agua corporal total por sexo y edad. El corte es
// estrictamente > 60: a los 60 exactos se usa la fracción del adulto joven.
func tbwFraction(sex Sex, ageYears float64) float64 {
	if sex == SexFemale {
		if ageYears > 60 {
			return 0.45
		}
		return 0.5
	}
	if ageYears > 60 {
		return 0.5
	}
	return 0.6
}

// Correct aplica Adrogué-Madias:
//
//	ACT    = peso × fracción(sexo, edad)
//	ΔNa/L  = (Na_solución − Na_actual) / (ACT + 1)
//	Volume = (Na_alvo − Na_actual) / ΔNa/L
//	Vazão  = Volume × 1000 / 24
//
// El "+1" modela el litro de volumen de distribución que agrega el propio
// infundido. La corrección completa se reparte en 24 horas.
func (s *Service) Correct(req Request) (Outcome, error) {
	sol, ok := findSolution(req.Direction, req.SolutionKey)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q for direction %q", ErrInvalidConfiguration, req.SolutionKey, req.Direction)
	}
	if req.Sex != SexMale && req.Sex != SexFemale {
		return Outcome{}, fmt.Errorf("%w: unknown sex %q", ErrInvalidConfiguration, req.Sex)
	}

	// Campos vacíos o en cero => esperando datos (peso/edad/Na en cero no
	// tienen sentido clínico).
	if !positive(req.WeightKg) || !positive(req.AgeYears) || !positive(req.CurrentNa) || !positive(req.TargetNa) {
		return Outcome{Status: StatusInsufficientInput}, nil
	}

	current := *req.CurrentNa
	target := *req.TargetNa

	// El alerta es independiente del resto del cálculo: dispara aunque el
	// volumen resulte no disponible.
	alert := ""
	if math.Abs(target-current) > alertThresholdMEqL {
		alert = alertMessage
	}

	tbw := *req.WeightKg * tbwFraction(req.Sex, *req.AgeYears)
	deltaPerLiter := (sol.SodiumMEqL - current) / (tbw + 1)

	res := &Result{
		TotalBodyWaterL:  round1(tbw),
		DeltaNaPerLiterL: round2(deltaPerLiter),
		Recipes:          sol.Recipes,
	}

	// Denominador cero: volumen indefinido, nunca se muestra como número.
	if deltaPerLiter == 0 {
		return Outcome{Status: StatusUnavailable, Alert: alert, Result: res}, nil
	}

	volume := (target - current) / deltaPerLiter

	// Volumen negativo: alvo del lado equivocado del Na actual para la
	// solución elegida. Se reporta como no disponible, no se corrige solo.
	if volume < 0 {
		return Outcome{Status: StatusUnavailable, Alert: alert, Result: res}, nil
	}

	rate := volume * 1000 / correctionWindowHours

	v := round2(volume)
	r := round1(rate)
	res.VolumeNeededL = &v
	res.RateMLPerHour = &r

	return Outcome{Status: StatusOK, Alert: alert, Result: res}, nil
}

func positive(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
