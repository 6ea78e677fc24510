package sodium

// nacl045Recipes: preparaciones equivalentes de NaCl 0,45% (no viene lista
// de fábrica en la mayoría de los servicios).
var nacl045Recipes = []string{
	"250 mL SF 0,9% + 250 mL Água Destilada",
	"10 mL NaCl 20% + 490 mL Água Destilada",
	"500 mL SF 0,9% + 500 mL Água Destilada",
	"22 mL NaCl 20% + 978 mL Água Destilada",
}

// loweringSolutions bajan el sodio sérico (hipernatremia).
var loweringSolutions = []Solution{
	{Key: "sf09", Label: "Soro Fisiológico 0,9%", SodiumMEqL: 154},
	{Key: "sg5", Label: "Soro Glicosado 5%", SodiumMEqL: 0},
	{Key: "nacl045", Label: "NaCl 0,45%", SodiumMEqL: 77, Recipes: nacl045Recipes},
}

// raisingSolutions suben el sodio sérico (hiponatremia).
var raisingSolutions = []Solution{
	{Key: "nacl3", Label: "NaCl 3%", SodiumMEqL: 513},
	{Key: "sf09", Label: "Soro Fisiológico 0,9%", SodiumMEqL: 154},
}

// Solutions devuelve el set enumerado válido para la dirección.
func Solutions(dir Direction) []Solution {
	switch dir {
	case DirectionHypo:
		return raisingSolutions
	default:
		return loweringSolutions
	}
}

func findSolution(dir Direction, key string) (Solution, bool) {
	for _, s := range Solutions(dir) {
		if s.Key == key {
			return s, true
		}
	}
	return Solution{}, false
}

// acuteHyponatremia: sub-modo de emergencia, solo texto de protocolo.
var acuteHyponatremia = AcuteProtocol{
	Title:   "Hiponatremia aguda sintomática grave",
	Bolus:   "NaCl 3%: 100 a 150 mL EV em 10 a 20 minutos.",
	Repeat:  "Pode ser repetido até 3 vezes se persistirem os sintomas.",
	Target:  "Objetivo: elevar o Na+ sérico em 4 a 6 mEq/L até cessarem os sintomas.",
	Warning: "Não ultrapassar 8 mEq/L de variação nas primeiras 24h.",
}

// Acute devuelve el protocolo fijo; no recibe inputs por diseño.
func Acute() AcuteProtocol {
	return acuteHyponatremia
}
