package magnesium

import "math"

// Service: dispatch del magnesio sérico hacia la guía del rango. Igual que el
// potasio: lookup determinístico, sin fórmula.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Evaluate clasifica el Mg sérico (mg/dL) con los cortes literales del
// protocolo: < 1,0 grave / 1,0 - 1,7 leve / > 2,5 hipermagnesemia / resto
// dentro de referencia.
func (s *Service) Evaluate(mgDL *float64) Outcome {
	if mgDL == nil || math.IsNaN(*mgDL) || math.IsInf(*mgDL, 0) {
		return Outcome{Status: StatusInsufficientInput}
	}
	mg := *mgDL

	switch {
	case mg < 1.0:
		return Outcome{
			Status:         StatusOK,
			Classification: ClassSevere,
			Label:          "Hipomagnesemia Grave (< 1,0 mg/dL)",
			Blocks:         severeBlocks(),
			Ampoules:       ampouleReference(),
		}
	case mg >= 1.0 && mg <= 1.7:
		return Outcome{
			Status:         StatusOK,
			Classification: ClassMild,
			Label:          "Hipomagnesemia Leve (1,0 - 1,7 mg/dL)",
			Blocks:         mildBlocks(),
			Ampoules:       ampouleReference(),
		}
	case mg > 2.5:
		return Outcome{
			Status:         StatusOK,
			Classification: ClassHyper,
			Label:          "Hipermagnesemia (> 2,5 mg/dL)",
			Blocks:         hyperBlocks(),
		}
	default:
		return Outcome{
			Status:         StatusOK,
			Classification: ClassNormal,
			Label:          "Magnésio dentro dos limites de referência ou fora da faixa de tratamento deste protocolo (1,8 - 2,5).",
		}
	}
}

// Emergency devuelve los protocolos fijos (torsades, síntomas graves); no
// depende del valor sérico.
func (s *Service) Emergency() EmergencyProtocol {
	return EmergencyProtocol{
		Blocks:   emergencyBlocks(),
		Ampoules: ampouleReference(),
	}
}
