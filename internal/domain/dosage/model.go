package dosage

import (
	"errors"

	"salvamed/internal/domain/catalog"
)

// ErrInvalidConfiguration indica una combinación droga/unidad que no existe en
// la tabla de fórmulas. El catálogo se valida al cargar, así que esto es un bug
// de programación (de la vista o del seed), no un error de usuario: se devuelve
// como error y el handler responde 400 con log fuerte, nunca un default
// silencioso.
var ErrInvalidConfiguration = errors.New("invalid drug/unit configuration")

// Direction selecciona el sentido de la conversión. Es un flag explícito de la
// vista, nunca inferido.
type Direction string

const (
	DoseToFlow Direction = "doseToFlow"
	FlowToDose Direction = "flowToDose"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DoseToFlow, FlowToDose:
		return Direction(s), nil
	default:
		return "", ErrInvalidConfiguration
	}
}

// Request es el pedido efímero de una conversión. Los campos son punteros
// porque "campo vacío" y "valor 0" son estados distintos: 0 es un valor legal,
// nil es "todavía sin dato".
type Request struct {
	Direction Direction
	Value     *float64
	WeightKg  *float64
}

type Status string

const (
	StatusOK Status = "ok"
	// StatusInsufficientInput no es un error: es el estado estable de
	// "esperando datos"; la vista muestra un prompt neutro.
	StatusInsufficientInput Status = "insufficient_input"
)

// Result es el valor convertido, ya redondeado (2 decimales para volumen/
// vazão, 3 para dosis).
type Result struct {
	Direction Direction
	Value     float64
	Unit      string // "mL/h", "mL", o la unidad de dosis de la droga
	Kind      catalog.CalculationKind
}

// Outcome es el resultado etiquetado de Convert. Nunca se propaga como
// excepción hacia la vista; ella solo elige cómo renderizar cada estado.
type Outcome struct {
	Status Status
	Result *Result // presente solo si Status == StatusOK
}
