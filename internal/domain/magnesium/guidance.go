package magnesium

func ampouleReference() []AmpouleRef {
	return []AmpouleRef{
		{Name: "Sulfato de Magnésio 10%", Detail: "Ampola 10 mL = 1g"},
		{Name: "Sulfato de Magnésio 50%", Detail: "Ampola 10 mL = 5g"},
	}
}

func severeBlocks() []Block {
	return []Block{
		{
			Title: "Reposição Endovenosa (Estável)",
			Items: []Item{
				{
					Name:   "Opção A (Mg 10%)",
					Detail: "Sulfato de Magnésio 10% (20 mL) + 250 mL SG 5% (ou SF 0,9%).",
				},
				{
					Name:   "Opção B (Mg 50%)",
					Detail: "Sulfato de Magnésio 50% (4 mL) + 246 mL SG 5% (ou SF 0,9%).",
					Note:   "Tempo de infusão: 3 a 6 horas.",
				},
			},
		},
		{
			Title: "Dose de Manutenção",
			Items: []Item{
				{
					Name:   "Sulfato de Magnésio",
					Detail: "4 a 6g/dia por 3 a 4 dias para repor estoques.",
				},
			},
		},
	}
}

func mildBlocks() []Block {
	return []Block{
		{
			Title: "Reposição Via Oral",
			Items: []Item{
				{
					Name:   "Glicinato de Mg (Magnen®)",
					Detail: "720 mg por comprimido.",
					Note:   "130 mg de magnésio elementar.",
				},
				{
					Name:   "Pidolato de Mg (Pidomag®)",
					Detail: "1500 mg por dose.",
					Note:   "130 mg de magnésio elementar.",
				},
				{
					Name:   "Hidróxido de Mg (Estomazil®, Eno®)",
					Detail: "180 mg por dose.",
					Note:   "72 mg de magnésio elementar.",
				},
			},
		},
		{
			Title: "Opção EV (Se indisponibilidade VO)",
			Items: []Item{
				{
					Name:   "Mg 10%",
					Detail: "10 mL + 100 mL diluente.",
				},
				{
					Name:   "Mg 50%",
					Detail: "2,5 mL + 100 mL diluente.",
					Note:   "Diluente: SG 5% ou SF 0,9%. Correr em 3-6 horas.",
				},
			},
		},
	}
}

func hyperBlocks() []Block {
	return []Block{
		{
			Title: "Conduta",
			Items: []Item{
				{
					Name:   "Suspender reposição",
					Detail: "Interromper reposição de magnésio imediatamente.",
				},
				{
					Name:   "Expansão e Diurese",
					Detail: "Considerar hidratação com Soro Fisiológico.",
					Note:   "Furosemida: 40 a 80mg EV de até 4/4 horas.",
				},
			},
		},
	}
}

func emergencyBlocks() []Block {
	return []Block{
		{
			Title: "Torsade de Pointes",
			Items: []Item{
				{
					Name:   "Opção A (Mg 10%) - preferencial",
					Detail: "Sulfato de Magnésio 10% (20 mL) + 100 mL SG 5%.",
				},
				{
					Name:   "Opção B (Mg 50%)",
					Detail: "Sulfato de Magnésio 50% (4 mL) + 100 mL SG 5%.",
					Note:   "Tempo de infusão: 2 a 15 minutos (EV).",
				},
			},
		},
		{
			Title: "Sintomas Graves ou Instabilidade",
			Items: []Item{
				{
					Name:   "Dose de Ataque",
					Detail: "Sulfato de Magnésio 10% (20 mL) + 100 mL SG 5% (ou SF 0,9%).",
					Note:   "Infusão: 5 a 60 minutos (EV).",
				},
				{
					Name:   "Manutenção",
					Detail: "Sulfato de Magnésio 10% (40 mL) + 460 mL SG 5% (ou SF 0,9%).",
					Note:   "Infusão: 12 a 24 horas (EV).",
				},
			},
		},
	}
}
