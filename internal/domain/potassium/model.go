package potassium

// Severity clasifica el potasio sérico dentro del protocolo de hipercalemia.
type Severity string

const (
	SeverityWithinLimits Severity = "within_limits"
	SeverityMild         Severity = "mild"     // 5,6 - 5,9
	SeverityModerate     Severity = "moderate" // 6,0 - 6,4
	SeveritySevere       Severity = "severe"   // >= 6,5
)

type Status string

const (
	StatusOK                Status = "ok"
	StatusInsufficientInput Status = "insufficient_input"
	// StatusPending: protocolo todavía no publicado (hipocalemia).
	StatusPending Status = "pending"
)

// Block es un paso de conducta con sus ítems; texto fijo de protocolo, sin
// fórmula.
type Block struct {
	Step  string
	Title string
	Items []Item
}

type Item struct {
	Name   string
	Detail string
	Note   string
}

// Outcome es la guía estática elegida para el rango del valor informado.
// NeedsECGAnswer indica que el rango leve exige triage por ECG antes de
// mostrar conducta.
type Outcome struct {
	Status         Status
	Severity       Severity
	Label          string
	Conduct        string // "full" | "conservative" | ""
	NeedsECGAnswer bool
	Blocks         []Block
}
