package magnesium

// Classification clasifica el magnesio sérico (mg/dL) dentro del protocolo.
type Classification string

const (
	ClassSevere Classification = "severe_hypo" // < 1,0
	ClassMild   Classification = "mild_hypo"   // 1,0 - 1,7
	ClassNormal Classification = "normal"      // 1,8 - 2,5
	ClassHyper  Classification = "hyper"       // > 2,5
)

type Status string

const (
	StatusOK                Status = "ok"
	StatusInsufficientInput Status = "insufficient_input"
)

// Block / Item: mismo formato de guía estática que el protocolo de potasio.
type Block struct {
	Title string
	Items []Item
}

type Item struct {
	Name   string
	Detail string
	Note   string
}

// AmpouleRef es la tabla de referencia de presentación de las ampollas.
type AmpouleRef struct {
	Name   string
	Detail string
}

type Outcome struct {
	Status         Status
	Classification Classification
	Label          string
	Blocks         []Block
	Ampoules       []AmpouleRef
}

// EmergencyProtocol: conductas fijas de torsades y de síntomas graves, sin
// inputs.
type EmergencyProtocol struct {
	Blocks   []Block
	Ampoules []AmpouleRef
}
