package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("drug not found")
	ErrInvalidDrug  = errors.New("invalid drug record")
	ErrEmptyCatalog = errors.New("empty catalog")
)

// CalculationKind define el tipo de administración.
// @Enum continuous, bolus
type CalculationKind string

const (
	KindContinuous CalculationKind = "continuous" // infusión (mL/h <-> dosis)
	KindBolus      CalculationKind = "bolus"      // dosis única (mL <-> dosis)
)

// ConcentrationUnit define cómo está almacenada la concentración en el catálogo.
type ConcentrationUnit string

const (
	ConcMcgPerML ConcentrationUnit = "mcg/ml"
	ConcMgPerML  ConcentrationUnit = "mg/ml"
	ConcUPerML   ConcentrationUnit = "U/ml"
)

// DoseUnit define las unidades de dosis clínica soportadas.
type DoseUnit string

const (
	DoseMcgKgMin DoseUnit = "mcg/kg/min"
	DoseMcgMin   DoseUnit = "mcg/min"
	DoseUMin     DoseUnit = "U/min"
	DoseMgKgH    DoseUnit = "mg/kg/h"
	DoseMcgKgH   DoseUnit = "mcg/kg/h"
	DoseMgKg     DoseUnit = "mg/kg"  // bolus
	DoseMcgKg    DoseUnit = "mcg/kg" // bolus
)

// Category agrupa drogas en el acordeón de la vista.
type Category struct {
	ID    string
	Name  string
	Color string
}

// Drug representa una droga (o una variante de dilución) del catálogo estático.
// Los campos de texto son de presentación; los campos numéricos alimentan al
// conversor de dosis.
type Drug struct {
	ID           string
	GroupName    string // variantes de la misma droga comparten GroupName
	Name         string
	VariantLabel string // ej: "Padrão (64 mcg/mL)"; vacío si no hay variantes
	CategoryID   string

	Presentation       string // "Apresentação"
	Dilution           string // "Diluição"
	ConcentrationLabel string // "Concentração" (display)
	DoseLabel          string // "Dose" (display)
	Notes              string

	Kind               CalculationKind
	ConcentrationValue float64
	ConcentrationUnit  ConcentrationUnit
	DoseUnit           DoseUnit
	WeightBased        bool
}

// continuousUnits / bolusUnits: dispatch cerrado sobre el set de unidades.
var continuousUnits = map[DoseUnit]bool{
	DoseMcgKgMin: true,
	DoseMcgMin:   true,
	DoseUMin:     true,
	DoseMgKgH:    true,
	DoseMcgKgH:   true,
}

var bolusUnits = map[DoseUnit]bool{
	DoseMgKg:  true,
	DoseMcgKg: true,
}

// weightedUnits: unidades que contienen /kg y por tanto exigen peso.
var weightedUnits = map[DoseUnit]bool{
	DoseMcgKgMin: true,
	DoseMgKgH:    true,
	DoseMcgKgH:   true,
	DoseMgKg:     true,
	DoseMcgKg:    true,
}

// Validate verifica los invariantes del registro:
// - unidad de dosis compatible con el tipo de cálculo
// - unidades con /kg exigen WeightBased = true (y viceversa)
// - concentración positiva y con unidad conocida
// El catálogo es data de confianza: una violación acá es un bug del seed,
// no una condición de runtime, y debe frenar el arranque.
func (d Drug) Validate() error {
	if strings.TrimSpace(d.GroupName) == "" || strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: %q: missing name/group", ErrInvalidDrug, d.ID)
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		return fmt.Errorf("%w: %q: missing category", ErrInvalidDrug, d.ID)
	}

	switch d.ConcentrationUnit {
	case ConcMcgPerML, ConcMgPerML, ConcUPerML:
	default:
		return fmt.Errorf("%w: %q: unknown concentration unit %q", ErrInvalidDrug, d.ID, d.ConcentrationUnit)
	}
	if d.ConcentrationValue <= 0 {
		return fmt.Errorf("%w: %q: concentration must be > 0", ErrInvalidDrug, d.ID)
	}

	switch d.Kind {
	case KindContinuous:
		if !continuousUnits[d.DoseUnit] {
			return fmt.Errorf("%w: %q: dose unit %q not valid for continuous", ErrInvalidDrug, d.ID, d.DoseUnit)
		}
	case KindBolus:
		if !bolusUnits[d.DoseUnit] {
			return fmt.Errorf("%w: %q: dose unit %q not valid for bolus", ErrInvalidDrug, d.ID, d.DoseUnit)
		}
	default:
		return fmt.Errorf("%w: %q: unknown calculation kind %q", ErrInvalidDrug, d.ID, d.Kind)
	}

	if weightedUnits[d.DoseUnit] && !d.WeightBased {
		return fmt.Errorf("%w: %q: dose unit %q requires weight_based", ErrInvalidDrug, d.ID, d.DoseUnit)
	}
	if !weightedUnits[d.DoseUnit] && d.WeightBased {
		return fmt.Errorf("%w: %q: dose unit %q is not weight based", ErrInvalidDrug, d.ID, d.DoseUnit)
	}

	return nil
}
