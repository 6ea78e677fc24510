package dosage

import (
	"fmt"
	"math"

	"salvamed/internal/domain/catalog"
)

// Service es el conversor dosis <-> flujo de bomba. Función pura y sincrónica:
// la decisión de cuándo invocar (cada tecla, cambio de modo, cambio de droga)
// es de la vista.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Convert aplica la fórmula de la droga en el sentido pedido.
//
// Precondiciones (estado "insufficient_input", no error):
//   - droga con peso requiere WeightKg presente y > 0
//   - Value presente y finito (0 es un valor legal; ausente es nil)
//
// Un DoseUnit fuera de la tabla, o inconsistente con el tipo de cálculo de la
// droga, devuelve ErrInvalidConfiguration: data de catálogo es de confianza y
// esto es una violación de contrato, no una condición a degradar.
func (s *Service) Convert(drug catalog.Drug, req Request) (Outcome, error) {
	spec, ok := formulas[drug.DoseUnit]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: dose unit %q", ErrInvalidConfiguration, drug.DoseUnit)
	}
	if spec.kind != drug.Kind || spec.weightBased != drug.WeightBased {
		return Outcome{}, fmt.Errorf("%w: drug %q inconsistent with formula table", ErrInvalidConfiguration, drug.ID)
	}

	if req.Direction != DoseToFlow && req.Direction != FlowToDose {
		return Outcome{}, fmt.Errorf("%w: direction %q", ErrInvalidConfiguration, req.Direction)
	}

	weight := 1.0
	if spec.weightBased {
		if req.WeightKg == nil || *req.WeightKg <= 0 {
			return Outcome{Status: StatusInsufficientInput}, nil
		}
		weight = *req.WeightKg
	}

	if req.Value == nil || math.IsNaN(*req.Value) || math.IsInf(*req.Value, 0) {
		return Outcome{Status: StatusInsufficientInput}, nil
	}

	conc, err := normalizeConcentration(drug.ConcentrationValue, drug.ConcentrationUnit, spec.mass)
	if err != nil {
		return Outcome{}, err
	}

	factor := weight
	if spec.perMinute {
		factor *= 60
	}

	res := &Result{Direction: req.Direction, Kind: drug.Kind}
	switch req.Direction {
	case DoseToFlow:
		res.Value = round2(*req.Value * factor / conc)
		if drug.Kind == catalog.KindBolus {
			res.Unit = "mL"
		} else {
			res.Unit = "mL/h"
		}
	case FlowToDose:
		res.Value = round3(*req.Value * conc / factor)
		res.Unit = string(drug.DoseUnit)
	}

	return Outcome{Status: StatusOK, Result: res}, nil
}
