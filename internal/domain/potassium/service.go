package potassium

import "math"

// Service resuelve "guía estática para el rango R": dispatch determinístico
// sobre el potasio sérico, sin cálculo.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Hyperkalemia clasifica el K+ sérico y devuelve la conducta del rango.
// Los cortes son los literales del protocolo (5,6-5,9 / 6,0-6,4 / >= 6,5).
// En el rango leve la conducta depende del triage de ECG: sin respuesta se
// devuelve NeedsECGAnswer para que la vista pregunte primero.
func (s *Service) Hyperkalemia(kMEqL *float64, ecgChanges *bool) Outcome {
	if kMEqL == nil || math.IsNaN(*kMEqL) || math.IsInf(*kMEqL, 0) {
		return Outcome{Status: StatusInsufficientInput}
	}
	k := *kMEqL

	switch {
	case k >= 5.6 && k <= 5.9:
		out := Outcome{
			Status:   StatusOK,
			Severity: SeverityMild,
			Label:    "Hipercalemia Leve (5,6 - 5,9)",
		}
		switch {
		case ecgChanges == nil:
			out.NeedsECGAnswer = true
		case *ecgChanges:
			out.Conduct = "full"
			out.Blocks = fullTreatment(false)
		default:
			out.Conduct = "conservative"
			out.Blocks = conservativeTreatment()
		}
		return out

	case k >= 6.0 && k <= 6.4:
		return Outcome{
			Status:   StatusOK,
			Severity: SeverityModerate,
			Label:    "Hipercalemia Moderada (6,0 - 6,4)",
			Conduct:  "full",
			Blocks:   fullTreatment(true),
		}

	case k >= 6.5:
		return Outcome{
			Status:   StatusOK,
			Severity: SeveritySevere,
			Label:    "Hipercalemia Grave (≥ 6,5)",
			Conduct:  "full",
			Blocks:   fullTreatment(true),
		}

	default:
		return Outcome{
			Status:   StatusOK,
			Severity: SeverityWithinLimits,
			Label:    "Potássio dentro dos limites de segurança para este protocolo (< 5,6).",
		}
	}
}

// Hypokalemia: el protocolo de reposición todavía no está publicado; se
// devuelve un estado explícito en lugar de inventar conducta.
func (s *Service) Hypokalemia() Outcome {
	return Outcome{
		Status: StatusPending,
		Label:  "Aguardando Protocolo de Hipocalemia",
	}
}
