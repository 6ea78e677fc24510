package dosage

import (
	"fmt"
	"math"

	"salvamed/internal/domain/catalog"
)

// massToken es la escala de masa de la unidad de dosis.
type massToken string

const (
	massMcg   massToken = "mcg"
	massMg    massToken = "mg"
	massUnits massToken = "U"
)

// formulaSpec describe una entrada de la tabla de fórmulas. Toda la familia de
// conversiones se reduce a:
//
//	flujo = dosis × [peso] × [60] / concentración
//	dosis = flujo × concentración / ([peso] × [60])
//
// donde [peso] aplica solo a unidades /kg y [60] solo a unidades /min
// (el flujo de bomba siempre se expresa por hora).
type formulaSpec struct {
	kind        catalog.CalculationKind
	weightBased bool
	mass        massToken
	perMinute   bool
}

// formulas es el dispatch cerrado (doseUnit -> fórmula). Agregar una unidad
// nueva es agregar una fila; la ley de ida y vuelta se verifica por fila en los
// tests.
var formulas = map[catalog.DoseUnit]formulaSpec{
	catalog.DoseMcgKgMin: {kind: catalog.KindContinuous, weightBased: true, mass: massMcg, perMinute: true},
	catalog.DoseMcgMin:   {kind: catalog.KindContinuous, weightBased: false, mass: massMcg, perMinute: true},
	catalog.DoseUMin:     {kind: catalog.KindContinuous, weightBased: false, mass: massUnits, perMinute: true},
	catalog.DoseMgKgH:    {kind: catalog.KindContinuous, weightBased: true, mass: massMg, perMinute: false},
	catalog.DoseMcgKgH:   {kind: catalog.KindContinuous, weightBased: true, mass: massMcg, perMinute: false},
	catalog.DoseMgKg:     {kind: catalog.KindBolus, weightBased: true, mass: massMg, perMinute: false},
	catalog.DoseMcgKg:    {kind: catalog.KindBolus, weightBased: true, mass: massMcg, perMinute: false},
}

// normalizeConcentration lleva la concentración almacenada a la escala de masa
// de la unidad de dosis:
//   - dosis en mcg con concentración mg/mL -> ×1000
//   - dosis en mg con concentración mcg/mL -> ÷1000
//   - U/mL no tiene conversión de masa: se usa tal cual.
func normalizeConcentration(value float64, unit catalog.ConcentrationUnit, target massToken) (float64, error) {
	if unit == catalog.ConcUPerML {
		return value, nil
	}

	switch target {
	case massMcg:
		if unit == catalog.ConcMgPerML {
			return value * 1000, nil
		}
		return value, nil
	case massMg:
		if unit == catalog.ConcMcgPerML {
			return value / 1000, nil
		}
		return value, nil
	case massUnits:
		// dosis en unidades pero concentración en masa: el catálogo nunca
		// debería producir esto.
		return 0, fmt.Errorf("%w: dose in units with concentration %q", ErrInvalidConfiguration, unit)
	default:
		return 0, fmt.Errorf("%w: unknown mass token %q", ErrInvalidConfiguration, target)
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
