package sodium

import "errors"

// ErrInvalidConfiguration indica una solución que no pertenece al set de la
// dirección activa. Es un bug de la vista (violación de contrato), no un error
// del usuario.
var ErrInvalidConfiguration = errors.New("solution not valid for direction")

// Direction es la pestaña activa del corrector.
type Direction string

const (
	// DirectionHyper corrige hipernatremia: soluciones que bajan el sodio.
	DirectionHyper Direction = "hyper"
	// DirectionHypo corrige hiponatremia: soluciones que suben el sodio.
	DirectionHypo Direction = "hypo"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionHyper, DirectionHypo:
		return Direction(s), nil
	default:
		return "", ErrInvalidConfiguration
	}
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Solution es una solución de reposición con su sodio en mEq/L.
type Solution struct {
	Key         string
	Label       string
	SodiumMEqL  float64
	// Recipes: instrucciones de preparación cuando la solución no viene lista
	// (hoy solo NaCl 0,45%).
	Recipes []string
}

// Request es el pedido efímero de una corrección. Punteros para distinguir
// campo vacío de valor presente.
type Request struct {
	Direction   Direction
	WeightKg    *float64
	AgeYears    *float64
	Sex         Sex
	CurrentNa   *float64
	TargetNa    *float64
	SolutionKey string
}

type Status string

const (
	StatusOK                Status = "ok"
	StatusInsufficientInput Status = "insufficient_input"
	// StatusUnavailable: denominador cero o volumen/vazão no positivos
	// (alvo del lado equivocado del valor actual). Se reporta, no se
	// auto-corrige.
	StatusUnavailable Status = "unavailable"
)

// Result trae los valores ya redondeados para presentación (ACT 1 decimal,
// ΔNa 2, volumen 2, vazão 1). Volume/Rate son punteros: nil = no disponible.
type Result struct {
	TotalBodyWaterL  float64
	DeltaNaPerLiterL float64
	VolumeNeededL    *float64
	RateMLPerHour    *float64
	Recipes          []string
}

// Outcome es el resultado etiquetado. Alert vive fuera de Result porque el
// chequeo |alvo - actual| > 8 es independiente del resto del cálculo: dispara
// aunque el volumen sea "unavailable".
type Outcome struct {
	Status Status
	Alert  string
	Result *Result
}

// AcuteProtocol es la conducta fija para hiponatremia aguda sintomática grave:
// texto de protocolo puro, sin inputs ni fórmula, que saltea el cálculo.
type AcuteProtocol struct {
	Title   string
	Bolus   string
	Repeat  string
	Target  string
	Warning string
}
