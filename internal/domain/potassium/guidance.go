package potassium

// Bloques de conducta de la hipercalemia, texto tomado del protocolo
// institucional. Solo lookup por rango: acá no hay fórmula.

func stabilizationBlock() Block {
	return Block{
		Step:  "Passo 01",
		Title: "Estabilização da Membrana Cardíaca",
		Items: []Item{
			{
				Name:   "Gluconato de Cálcio 10%",
				Detail: "10 mL + 100 mL SG 5% EV em BIC - correr em 10 minutos.",
				Note:   "Pode ser repetido 3x ou até normalizar ECG.",
			},
		},
	}
}

func redistributionBlock() Block {
	return Block{
		Step:  "Passo 02",
		Title: "Redistribuição do Potássio (Shift)",
		Items: []Item{
			{
				Name:   "Solução Polarizante (Glicoinsulina)",
				Detail: "10 UI de insulina regular + 100 mL de SG 50% OU 500 mL de SG 10% OU 1.000 mL de SG 5%.",
				Note:   "Administrar 4/4h ou 6/6h.",
			},
			{
				Name:   "Beta2-agonista (Salbutamol)",
				Detail: "100 µg (6 a 10 puffs) via inalatória.",
			},
		},
	}
}

func eliminationBlock(step, lokelmaMaintenance string, dialysis bool) Block {
	b := Block{
		Step:  step,
		Title: "Eliminação do Potássio",
		Items: []Item{
			{
				Name:   "Diurético de Alça",
				Detail: "Furosemida (20mg/2mL): 1 a 2 mg/kg EV em bolus, até 4/4h.",
			},
			{
				Name:   "Poliestirenossulfonato de Cálcio (Sorcal®)",
				Detail: "30 g/envelope: fazer 15g + 100 mL água VO de 6/6 horas.",
			},
			{
				Name:   "Ciclossilicato de Zircônio (Lokelma®)",
				Detail: "5 g/envelope: 2 sachês de 8/8h em 24h.",
				Note:   "Manutenção: " + lokelmaMaintenance,
			},
		},
	}
	if dialysis {
		b.Items = append(b.Items, Item{
			Name:   "Hemodiálise",
			Detail: "Hemodiálise se refratário.",
		})
	}
	return b
}

func suspensionBlock() Block {
	return Block{
		Step:  "Passo 01",
		Title: "Suspensão de Fármacos",
		Items: []Item{
			{
				Name:   "Suspender drogas que aumentam o K+ sérico",
				Detail: "IECA / BRA, Espironolactona, Betabloqueadores.",
			},
		},
	}
}

// fullTreatment: estabilización + shift + eliminación.
func fullTreatment(dialysis bool) []Block {
	return []Block{
		stabilizationBlock(),
		redistributionBlock(),
		eliminationBlock("Passo 03", "2 sachês de 12/12h", dialysis),
	}
}

// conservativeTreatment: sin estabilización; suspensión + eliminación con
// quelantes opcionales.
func conservativeTreatment() []Block {
	return []Block{
		suspensionBlock(),
		eliminationBlock("Passo 02", "1 sachê 12/12h", false),
	}
}
