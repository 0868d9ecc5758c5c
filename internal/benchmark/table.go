package benchmark

// Built-in benchmark table. Each band is [min, preferred, max] with its data
// source. Subclass declaration order matters: the first subclass of each
// asset class serves as the fallback when a deal's subclass is unrecognized.

type subclassDef struct {
	name    string
	metrics map[string]Band
}

type classDef struct {
	name       string
	subclasses []subclassDef
}

func b(min, preferred, max float64, source string) Band {
	return Band{Min: min, Preferred: []float64{preferred}, Max: max, Source: source}
}

func buildRepository(defs []classDef) *Repository {
	repo := &Repository{
		classes: make(map[string]map[string]map[string]Band),
		order:   make(map[string][]string),
	}
	for _, class := range defs {
		name := normalizeKey(class.name)
		repo.classes[name] = make(map[string]map[string]Band)
		for _, sub := range class.subclasses {
			subName := normalizeKey(sub.name)
			repo.classes[name][subName] = sub.metrics
			repo.order[name] = append(repo.order[name], subName)
		}
	}
	return repo
}

var builtinRepository = buildRepository([]classDef{
	{"multifamily", []subclassDef{
		{"garden_lowrise", map[string]Band{
			"cap_rate":             b(4.5, 5.5, 7.0, "RCA Analytics Q4 2024"),
			"dscr":                 b(1.20, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":                  b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":            b(92, 95, 98, "NMHC Market Report Q4 2024"),
			"expense_ratio":        b(35, 40, 45, "IREM Benchmark 2024"),
			"price_per_unit":       b(100000, 150000, 250000, "RCA Analytics Q4 2024"),
			"noi_growth":           b(2.0, 3.5, 5.0, "JLL Research Q4 2024"),
			"replacement_reserves": b(250, 350, 500, "Fannie Mae Guidelines 2024"),
		}},
		{"midrise", map[string]Band{
			"cap_rate":             b(4.0, 5.0, 6.5, "RCA Analytics Q4 2024"),
			"dscr":                 b(1.20, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":                  b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":            b(93, 96, 98, "NMHC Market Report Q4 2024"),
			"expense_ratio":        b(30, 35, 40, "IREM Benchmark 2024"),
			"price_per_unit":       b(150000, 225000, 350000, "RCA Analytics Q4 2024"),
			"noi_growth":           b(2.5, 4.0, 5.5, "JLL Research Q4 2024"),
			"replacement_reserves": b(300, 400, 550, "Fannie Mae Guidelines 2024"),
		}},
		{"highrise", map[string]Band{
			"cap_rate":             b(3.5, 4.5, 6.0, "RCA Analytics Q4 2024"),
			"dscr":                 b(1.25, 1.40, 1.55, "MBA Survey Q4 2024"),
			"ltv":                  b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":            b(94, 96, 98, "NMHC Market Report Q4 2024"),
			"expense_ratio":        b(28, 33, 38, "IREM Benchmark 2024"),
			"price_per_unit":       b(250000, 400000, 600000, "RCA Analytics Q4 2024"),
			"noi_growth":           b(3.0, 4.5, 6.0, "JLL Research Q4 2024"),
			"replacement_reserves": b(400, 500, 650, "Fannie Mae Guidelines 2024"),
		}},
		{"student_housing", map[string]Band{
			"cap_rate":             b(5.0, 6.0, 7.5, "RCA Analytics Q4 2024"),
			"dscr":                 b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":                  b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":            b(90, 94, 97, "Axiometrics Student Housing 2024"),
			"expense_ratio":        b(40, 45, 52, "IREM Benchmark 2024"),
			"price_per_unit":       b(40000, 60000, 85000, "RCA Analytics Q4 2024"),
			"noi_growth":           b(2.0, 3.0, 4.5, "JLL Student Housing 2024"),
			"replacement_reserves": b(200, 300, 400, "Fannie Mae Guidelines 2024"),
		}},
		{"senior_IL", map[string]Band{
			"cap_rate":             b(5.5, 6.5, 8.0, "NIC MAP Q4 2024"),
			"dscr":                 b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":                  b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":            b(88, 92, 95, "NIC MAP Q4 2024"),
			"expense_ratio":        b(45, 50, 55, "ASHA Benchmark 2024"),
			"price_per_unit":       b(125000, 175000, 250000, "NIC Investment Guide 2024"),
			"noi_growth":           b(2.5, 3.5, 5.0, "JLL Seniors Housing 2024"),
			"replacement_reserves": b(350, 450, 600, "HUD Guidelines 2024"),
		}},
		{"senior_AL", map[string]Band{
			"cap_rate":             b(6.0, 7.0, 8.5, "NIC MAP Q4 2024"),
			"dscr":                 b(1.15, 1.25, 1.40, "MBA Survey Q4 2024"),
			"ltv":                  b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":            b(85, 90, 94, "NIC MAP Q4 2024"),
			"expense_ratio":        b(55, 60, 65, "ASHA Benchmark 2024"),
			"price_per_unit":       b(150000, 225000, 325000, "NIC Investment Guide 2024"),
			"noi_growth":           b(3.0, 4.0, 5.5, "JLL Seniors Housing 2024"),
			"replacement_reserves": b(400, 500, 650, "HUD Guidelines 2024"),
		}},
		{"senior_MemoryCare", map[string]Band{
			"cap_rate":             b(6.5, 7.5, 9.0, "NIC MAP Q4 2024"),
			"dscr":                 b(1.15, 1.25, 1.35, "MBA Survey Q4 2024"),
			"ltv":                  b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":            b(82, 88, 92, "NIC MAP Q4 2024"),
			"expense_ratio":        b(60, 65, 70, "ASHA Benchmark 2024"),
			"price_per_unit":       b(175000, 250000, 350000, "NIC Investment Guide 2024"),
			"noi_growth":           b(3.0, 4.5, 6.0, "JLL Seniors Housing 2024"),
			"replacement_reserves": b(450, 550, 700, "HUD Guidelines 2024"),
		}},
	}},
	{"office", []subclassDef{
		{"cbd_A_trophy", map[string]Band{
			"cap_rate":           b(3.5, 4.5, 5.5, "CBRE EA Q4 2024"),
			"dscr":               b(1.25, 1.40, 1.55, "MBA Survey Q4 2024"),
			"ltv":                b(55, 60, 65, "MBA Survey Q4 2024"),
			"occupancy":          b(90, 93, 96, "JLL Office Insight Q4 2024"),
			"walt":               b(5.0, 7.0, 10.0, "CBRE Research Q4 2024"),
			"expense_ratio":      b(35, 40, 45, "BOMA Experience Report 2024"),
			"price_psf":          b(400, 600, 900, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(50, 75, 100, "JLL Construction Cost Guide 2024"),
			"parking_ratio":      b(2.0, 2.5, 3.5, "ULI Parking Standards 2024"),
		}},
		{"cbd_BC", map[string]Band{
			"cap_rate":           b(5.0, 6.0, 7.5, "CBRE EA Q4 2024"),
			"dscr":               b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":                b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":          b(85, 90, 94, "JLL Office Insight Q4 2024"),
			"walt":               b(3.0, 5.0, 7.0, "CBRE Research Q4 2024"),
			"expense_ratio":      b(38, 43, 48, "BOMA Experience Report 2024"),
			"price_psf":          b(200, 350, 500, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(35, 50, 75, "JLL Construction Cost Guide 2024"),
			"parking_ratio":      b(1.5, 2.0, 3.0, "ULI Parking Standards 2024"),
		}},
		{"suburban", map[string]Band{
			"cap_rate":           b(5.5, 6.5, 8.0, "CBRE EA Q4 2024"),
			"dscr":               b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":                b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":          b(83, 88, 92, "JLL Office Insight Q4 2024"),
			"walt":               b(2.5, 4.0, 6.0, "CBRE Research Q4 2024"),
			"expense_ratio":      b(40, 45, 50, "BOMA Experience Report 2024"),
			"price_psf":          b(100, 200, 350, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(25, 40, 60, "JLL Construction Cost Guide 2024"),
			"parking_ratio":      b(3.0, 4.0, 5.0, "ULI Parking Standards 2024"),
		}},
		{"medical_office", map[string]Band{
			"cap_rate":           b(5.0, 6.0, 7.0, "CBRE Healthcare Q4 2024"),
			"dscr":               b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":                b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":          b(88, 92, 95, "Revista MOB Report Q4 2024"),
			"walt":               b(4.0, 6.0, 8.0, "CBRE Healthcare Q4 2024"),
			"expense_ratio":      b(42, 47, 52, "BOMA Healthcare 2024"),
			"price_psf":          b(250, 350, 500, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(40, 60, 85, "JLL Healthcare Construction 2024"),
			"parking_ratio":      b(4.0, 5.0, 6.5, "ULI Healthcare Standards 2024"),
		}},
		{"flex_creative", map[string]Band{
			"cap_rate":           b(6.0, 7.0, 8.5, "CBRE EA Q4 2024"),
			"dscr":               b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":                b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":          b(80, 87, 92, "JLL Flex Space Report Q4 2024"),
			"walt":               b(2.0, 3.5, 5.0, "CBRE Research Q4 2024"),
			"expense_ratio":      b(35, 40, 45, "BOMA Experience Report 2024"),
			"price_psf":          b(75, 150, 250, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(15, 30, 45, "JLL Construction Cost Guide 2024"),
			"parking_ratio":      b(2.5, 3.5, 4.5, "ULI Parking Standards 2024"),
		}},
	}},
	{"industrial", []subclassDef{
		{"bulk_distribution", map[string]Band{
			"cap_rate":      b(4.0, 5.0, 6.0, "CBRE Industrial Q4 2024"),
			"dscr":          b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(92, 95, 98, "JLL Industrial Insight Q4 2024"),
			"walt":          b(4.0, 6.0, 8.0, "CBRE Research Q4 2024"),
			"price_psf":     b(60, 85, 120, "RCA Analytics Q4 2024"),
			"clear_height":  b(32, 36, 40, "NAIOP Industrial Standards 2024"),
			"dock_doors":    b(20, 40, 80, "NAIOP Industrial Standards 2024"),
			"expense_ratio": b(15, 20, 25, "IREM Industrial Benchmark 2024"),
			"parking_ratio": b(0.5, 1.0, 1.5, "ULI Industrial Standards 2024"),
		}},
		{"light_industrial_flex", map[string]Band{
			"cap_rate":      b(5.0, 6.0, 7.5, "CBRE Industrial Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(88, 92, 95, "JLL Industrial Insight Q4 2024"),
			"walt":          b(2.5, 4.0, 6.0, "CBRE Research Q4 2024"),
			"price_psf":     b(75, 125, 175, "RCA Analytics Q4 2024"),
			"clear_height":  b(18, 24, 28, "NAIOP Industrial Standards 2024"),
			"dock_doors":    b(4, 10, 20, "NAIOP Industrial Standards 2024"),
			"expense_ratio": b(18, 23, 28, "IREM Industrial Benchmark 2024"),
			"parking_ratio": b(1.5, 2.5, 3.5, "ULI Industrial Standards 2024"),
		}},
		{"last_mile", map[string]Band{
			"cap_rate":      b(3.5, 4.5, 5.5, "CBRE Last Mile Report Q4 2024"),
			"dscr":          b(1.25, 1.40, 1.55, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(94, 97, 99, "JLL Last Mile Insight Q4 2024"),
			"walt":          b(5.0, 7.0, 10.0, "CBRE Research Q4 2024"),
			"price_psf":     b(150, 250, 400, "RCA Analytics Q4 2024"),
			"clear_height":  b(24, 28, 32, "NAIOP Industrial Standards 2024"),
			"dock_doors":    b(10, 20, 40, "NAIOP Industrial Standards 2024"),
			"expense_ratio": b(12, 17, 22, "IREM Industrial Benchmark 2024"),
			"parking_ratio": b(1.0, 2.0, 3.0, "ULI Industrial Standards 2024"),
		}},
		{"cold_storage", map[string]Band{
			"cap_rate":      b(5.5, 6.5, 8.0, "CBRE Cold Storage Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(90, 94, 97, "IARW Market Report Q4 2024"),
			"walt":          b(5.0, 7.0, 10.0, "CBRE Research Q4 2024"),
			"price_psf":     b(100, 175, 275, "RCA Analytics Q4 2024"),
			"clear_height":  b(30, 35, 40, "IARW Standards 2024"),
			"dock_doors":    b(8, 15, 30, "IARW Standards 2024"),
			"expense_ratio": b(20, 25, 30, "IARW Benchmark 2024"),
			"power_density": b(15, 25, 35, "IARW Energy Standards 2024"),
		}},
		{"manufacturing", map[string]Band{
			"cap_rate":      b(6.0, 7.0, 8.5, "CBRE Industrial Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(85, 90, 94, "NAM Manufacturing Report Q4 2024"),
			"walt":          b(3.0, 5.0, 7.0, "CBRE Research Q4 2024"),
			"price_psf":     b(40, 75, 125, "RCA Analytics Q4 2024"),
			"clear_height":  b(20, 28, 35, "NAIOP Industrial Standards 2024"),
			"dock_doors":    b(4, 10, 20, "NAIOP Industrial Standards 2024"),
			"expense_ratio": b(22, 28, 34, "IREM Industrial Benchmark 2024"),
			"power_density": b(10, 20, 30, "NAM Energy Standards 2024"),
		}},
	}},
	{"retail", []subclassDef{
		{"grocery_anchored", map[string]Band{
			"cap_rate":      b(5.0, 6.0, 7.0, "CBRE Retail Q4 2024"),
			"dscr":          b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(92, 95, 98, "JLL Retail Insight Q4 2024"),
			"walt":          b(4.0, 6.0, 8.0, "CBRE Research Q4 2024"),
			"price_psf":     b(150, 225, 350, "RCA Analytics Q4 2024"),
			"sales_psf":     b(350, 450, 600, "ICSC Benchmark Q4 2024"),
			"rent_to_sales": b(3.0, 4.5, 6.0, "ICSC Benchmark Q4 2024"),
			"parking_ratio": b(4.0, 5.0, 6.5, "ULI Retail Standards 2024"),
		}},
		{"power_center", map[string]Band{
			"cap_rate":      b(5.5, 6.5, 8.0, "CBRE Retail Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(88, 93, 96, "JLL Retail Insight Q4 2024"),
			"walt":          b(3.0, 5.0, 7.0, "CBRE Research Q4 2024"),
			"price_psf":     b(75, 125, 200, "RCA Analytics Q4 2024"),
			"sales_psf":     b(250, 350, 450, "ICSC Benchmark Q4 2024"),
			"rent_to_sales": b(4.0, 6.0, 8.0, "ICSC Benchmark Q4 2024"),
			"parking_ratio": b(4.5, 5.5, 7.0, "ULI Retail Standards 2024"),
		}},
		{"lifestyle_open_air", map[string]Band{
			"cap_rate":      b(4.5, 5.5, 7.0, "CBRE Retail Q4 2024"),
			"dscr":          b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(90, 94, 97, "JLL Retail Insight Q4 2024"),
			"walt":          b(3.5, 5.5, 7.5, "CBRE Research Q4 2024"),
			"price_psf":     b(200, 350, 550, "RCA Analytics Q4 2024"),
			"sales_psf":     b(400, 550, 750, "ICSC Benchmark Q4 2024"),
			"rent_to_sales": b(5.0, 7.0, 9.0, "ICSC Benchmark Q4 2024"),
			"parking_ratio": b(3.5, 4.5, 6.0, "ULI Retail Standards 2024"),
		}},
		{"mall_regional", map[string]Band{
			"cap_rate":      b(6.0, 7.5, 9.5, "Green Street Mall Report Q4 2024"),
			"dscr":          b(1.15, 1.25, 1.40, "MBA Survey Q4 2024"),
			"ltv":           b(55, 60, 65, "MBA Survey Q4 2024"),
			"occupancy":     b(80, 87, 92, "Green Street Mall Report Q4 2024"),
			"walt":          b(2.0, 3.5, 5.0, "CBRE Research Q4 2024"),
			"price_psf":     b(50, 125, 250, "RCA Analytics Q4 2024"),
			"sales_psf":     b(300, 425, 575, "ICSC Benchmark Q4 2024"),
			"rent_to_sales": b(8.0, 11.0, 14.0, "ICSC Benchmark Q4 2024"),
			"parking_ratio": b(4.0, 5.0, 6.5, "ULI Retail Standards 2024"),
		}},
		{"single_tenant_nnn", map[string]Band{
			"cap_rate":            b(4.5, 5.5, 7.0, "Boulder Group Net Lease Q4 2024"),
			"dscr":                b(1.25, 1.40, 1.55, "MBA Survey Q4 2024"),
			"ltv":                 b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":           b(100, 100, 100, "Net Lease Market Report Q4 2024"),
			"walt":                b(7.0, 10.0, 15.0, "Boulder Group Research Q4 2024"),
			"price_psf":           b(150, 275, 450, "RCA Analytics Q4 2024"),
			"renewal_probability": b(70, 80, 90, "Boulder Group Research Q4 2024"),
			"rent_to_sales":       b(4.0, 6.0, 8.0, "ICSC Benchmark Q4 2024"),
			"expense_ratio":       b(0, 5, 10, "IREM Net Lease Benchmark 2024"),
		}},
	}},
	{"hospitality", []subclassDef{
		{"full_service", map[string]Band{
			"cap_rate":       b(6.0, 7.5, 9.0, "HVS Hotel Valuation Q4 2024"),
			"dscr":           b(1.20, 1.35, 1.50, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(60, 65, 70, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(65, 72, 78, "STR US Hotel Review Q4 2024"),
			"adr":            b(150, 200, 275, "STR US Hotel Review Q4 2024"),
			"revpar":         b(95, 145, 215, "STR US Hotel Review Q4 2024"),
			"gop_margin":     b(28, 35, 42, "CBRE Hotels Americas Q4 2024"),
			"expense_ratio":  b(70, 75, 80, "CBRE Hotels Benchmark 2024"),
			"price_per_unit": b(125000, 200000, 350000, "HVS Hotel Valuation Q4 2024"),
		}},
		{"limited_service", map[string]Band{
			"cap_rate":       b(6.5, 8.0, 9.5, "HVS Hotel Valuation Q4 2024"),
			"dscr":           b(1.20, 1.30, 1.45, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(60, 68, 75, "STR US Hotel Review Q4 2024"),
			"adr":            b(85, 110, 145, "STR US Hotel Review Q4 2024"),
			"revpar":         b(50, 75, 110, "STR US Hotel Review Q4 2024"),
			"gop_margin":     b(32, 38, 45, "CBRE Hotels Americas Q4 2024"),
			"expense_ratio":  b(62, 68, 74, "CBRE Hotels Benchmark 2024"),
			"price_per_unit": b(60000, 90000, 130000, "HVS Hotel Valuation Q4 2024"),
		}},
		{"extended_stay", map[string]Band{
			"cap_rate":       b(6.0, 7.0, 8.5, "HVS Hotel Valuation Q4 2024"),
			"dscr":           b(1.25, 1.35, 1.50, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(72, 78, 84, "STR Extended Stay Report Q4 2024"),
			"adr":            b(75, 95, 120, "STR Extended Stay Report Q4 2024"),
			"revpar":         b(55, 75, 100, "STR Extended Stay Report Q4 2024"),
			"gop_margin":     b(35, 42, 48, "CBRE Hotels Americas Q4 2024"),
			"expense_ratio":  b(58, 64, 70, "CBRE Hotels Benchmark 2024"),
			"price_per_unit": b(70000, 100000, 140000, "HVS Hotel Valuation Q4 2024"),
		}},
		{"resort", map[string]Band{
			"cap_rate":       b(5.5, 7.0, 8.5, "HVS Resort Valuation Q4 2024"),
			"dscr":           b(1.20, 1.35, 1.50, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(55, 60, 65, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(62, 70, 77, "STR Resort Report Q4 2024"),
			"adr":            b(250, 400, 650, "STR Resort Report Q4 2024"),
			"revpar":         b(155, 280, 500, "STR Resort Report Q4 2024"),
			"gop_margin":     b(25, 32, 40, "CBRE Resort Americas Q4 2024"),
			"expense_ratio":  b(72, 78, 84, "CBRE Resort Benchmark 2024"),
			"price_per_unit": b(200000, 400000, 750000, "HVS Resort Valuation Q4 2024"),
		}},
		{"boutique_lifestyle", map[string]Band{
			"cap_rate":       b(5.0, 6.5, 8.0, "HVS Boutique Hotel Q4 2024"),
			"dscr":           b(1.20, 1.35, 1.50, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(60, 65, 70, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(68, 75, 82, "STR Boutique Report Q4 2024"),
			"adr":            b(175, 275, 425, "STR Boutique Report Q4 2024"),
			"revpar":         b(120, 205, 350, "STR Boutique Report Q4 2024"),
			"gop_margin":     b(26, 33, 40, "CBRE Boutique Hotels Q4 2024"),
			"expense_ratio":  b(72, 77, 82, "CBRE Boutique Benchmark 2024"),
			"price_per_unit": b(150000, 300000, 550000, "HVS Boutique Valuation Q4 2024"),
		}},
		{"luxury", map[string]Band{
			"cap_rate":       b(4.0, 5.5, 7.0, "HVS Luxury Hotel Q4 2024"),
			"dscr":           b(1.25, 1.40, 1.55, "MBA Hospitality Survey Q4 2024"),
			"ltv":            b(55, 60, 65, "MBA Hospitality Survey Q4 2024"),
			"occupancy":      b(65, 72, 78, "STR Luxury Report Q4 2024"),
			"adr":            b(400, 650, 1000, "STR Luxury Report Q4 2024"),
			"revpar":         b(260, 470, 780, "STR Luxury Report Q4 2024"),
			"gop_margin":     b(22, 30, 38, "CBRE Luxury Hotels Q4 2024"),
			"expense_ratio":  b(75, 80, 85, "CBRE Luxury Benchmark 2024"),
			"price_per_unit": b(400000, 750000, 1500000, "HVS Luxury Valuation Q4 2024"),
		}},
	}},
	{"self_storage", []subclassDef{
		{"climate_controlled", map[string]Band{
			"cap_rate":      b(5.0, 6.0, 7.5, "Marcus & Millichap Self Storage Q4 2024"),
			"dscr":          b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(88, 92, 95, "SSA Quarterly Report Q4 2024"),
			"price_psf":     b(100, 150, 225, "RCA Analytics Q4 2024"),
			"expense_ratio": b(30, 35, 40, "SSA Benchmark Report 2024"),
			"noi_growth":    b(3.0, 4.5, 6.0, "JLL Self Storage Outlook 2024"),
		}},
		{"non_climate", map[string]Band{
			"cap_rate":      b(5.5, 6.5, 8.0, "Marcus & Millichap Self Storage Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(85, 90, 94, "SSA Quarterly Report Q4 2024"),
			"price_psf":     b(60, 90, 130, "RCA Analytics Q4 2024"),
			"expense_ratio": b(28, 33, 38, "SSA Benchmark Report 2024"),
			"noi_growth":    b(2.5, 3.5, 5.0, "JLL Self Storage Outlook 2024"),
		}},
		{"mixed", map[string]Band{
			"cap_rate":      b(5.25, 6.25, 7.75, "Marcus & Millichap Self Storage Q4 2024"),
			"dscr":          b(1.22, 1.32, 1.47, "MBA Survey Q4 2024"),
			"ltv":           b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":     b(86, 91, 94, "SSA Quarterly Report Q4 2024"),
			"price_psf":     b(75, 115, 175, "RCA Analytics Q4 2024"),
			"expense_ratio": b(29, 34, 39, "SSA Benchmark Report 2024"),
			"noi_growth":    b(2.75, 4.0, 5.5, "JLL Self Storage Outlook 2024"),
		}},
	}},
	{"data_center", []subclassDef{
		{"wholesale", map[string]Band{
			"cap_rate":      b(5.0, 6.0, 7.0, "CBRE Data Center Q4 2024"),
			"dscr":          b(1.30, 1.45, 1.60, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(85, 92, 97, "451 Research Datacenter Q4 2024"),
			"walt":          b(7.0, 10.0, 15.0, "CBRE Data Center Q4 2024"),
			"power_density": b(100, 150, 250, "Uptime Institute Standards 2024"),
			"pue":           b(1.3, 1.5, 1.7, "Uptime Institute Standards 2024"),
			"price_psf":     b(800, 1200, 1800, "RCA Analytics Q4 2024"),
		}},
		{"retail_colocation", map[string]Band{
			"cap_rate":      b(4.5, 5.5, 6.5, "CBRE Data Center Q4 2024"),
			"dscr":          b(1.35, 1.50, 1.65, "MBA Survey Q4 2024"),
			"ltv":           b(55, 60, 65, "MBA Survey Q4 2024"),
			"occupancy":     b(88, 94, 98, "451 Research Datacenter Q4 2024"),
			"walt":          b(3.0, 5.0, 7.0, "CBRE Data Center Q4 2024"),
			"power_density": b(75, 125, 200, "Uptime Institute Standards 2024"),
			"pue":           b(1.4, 1.6, 1.8, "Uptime Institute Standards 2024"),
			"price_psf":     b(600, 900, 1400, "RCA Analytics Q4 2024"),
		}},
		{"hyperscale", map[string]Band{
			"cap_rate":      b(4.0, 5.0, 6.0, "CBRE Data Center Q4 2024"),
			"dscr":          b(1.40, 1.55, 1.70, "MBA Survey Q4 2024"),
			"ltv":           b(55, 60, 65, "MBA Survey Q4 2024"),
			"occupancy":     b(90, 95, 99, "451 Research Hyperscale Q4 2024"),
			"walt":          b(10.0, 15.0, 20.0, "CBRE Data Center Q4 2024"),
			"power_density": b(150, 250, 400, "Uptime Institute Standards 2024"),
			"pue":           b(1.2, 1.4, 1.6, "Uptime Institute Standards 2024"),
			"price_psf":     b(1000, 1500, 2500, "RCA Analytics Q4 2024"),
		}},
	}},
	{"life_science", []subclassDef{
		{"wet_lab", map[string]Band{
			"cap_rate":           b(4.5, 5.5, 6.5, "CBRE Life Sciences Q4 2024"),
			"dscr":               b(1.25, 1.40, 1.55, "MBA Survey Q4 2024"),
			"ltv":                b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":          b(88, 93, 96, "JLL Life Sciences Q4 2024"),
			"walt":               b(5.0, 7.0, 10.0, "CBRE Life Sciences Q4 2024"),
			"price_psf":          b(500, 750, 1100, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(150, 250, 400, "JLL Lab Construction 2024"),
			"parking_ratio":      b(2.5, 3.5, 4.5, "BioMed Realty Standards 2024"),
		}},
		{"dry_lab", map[string]Band{
			"cap_rate":           b(5.0, 6.0, 7.0, "CBRE Life Sciences Q4 2024"),
			"dscr":               b(1.20, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":                b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":          b(85, 90, 94, "JLL Life Sciences Q4 2024"),
			"walt":               b(3.5, 5.5, 7.5, "CBRE Life Sciences Q4 2024"),
			"price_psf":          b(300, 450, 650, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(75, 125, 200, "JLL Lab Construction 2024"),
			"parking_ratio":      b(2.0, 3.0, 4.0, "BioMed Realty Standards 2024"),
		}},
		{"GMP_bio", map[string]Band{
			"cap_rate":           b(4.0, 5.0, 6.0, "CBRE Life Sciences Q4 2024"),
			"dscr":               b(1.30, 1.45, 1.60, "MBA Survey Q4 2024"),
			"ltv":                b(55, 60, 65, "MBA Survey Q4 2024"),
			"occupancy":          b(90, 94, 97, "JLL Life Sciences Q4 2024"),
			"walt":               b(7.0, 10.0, 15.0, "CBRE Life Sciences Q4 2024"),
			"price_psf":          b(600, 900, 1400, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(200, 350, 550, "JLL GMP Construction 2024"),
			"parking_ratio":      b(2.0, 2.5, 3.5, "BioMed Realty Standards 2024"),
		}},
		{"R&D", map[string]Band{
			"cap_rate":           b(4.75, 5.75, 6.75, "CBRE Life Sciences Q4 2024"),
			"dscr":               b(1.22, 1.37, 1.52, "MBA Survey Q4 2024"),
			"ltv":                b(62, 67, 72, "MBA Survey Q4 2024"),
			"occupancy":          b(86, 91, 95, "JLL Life Sciences Q4 2024"),
			"walt":               b(4.0, 6.0, 8.5, "CBRE Life Sciences Q4 2024"),
			"price_psf":          b(400, 600, 900, "RCA Analytics Q4 2024"),
			"tenant_improvement": b(100, 175, 275, "JLL R&D Construction 2024"),
			"parking_ratio":      b(2.25, 3.25, 4.25, "BioMed Realty Standards 2024"),
		}},
	}},
	{"senior_living", []subclassDef{
		{"IL", map[string]Band{
			"cap_rate":       b(5.5, 6.5, 8.0, "NIC MAP Q4 2024"),
			"dscr":           b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(88, 92, 95, "NIC MAP Q4 2024"),
			"expense_ratio":  b(45, 50, 55, "ASHA Benchmark 2024"),
			"price_per_unit": b(125000, 175000, 250000, "NIC Investment Guide 2024"),
			"noi_growth":     b(2.5, 3.5, 5.0, "JLL Seniors Housing 2024"),
		}},
		{"AL", map[string]Band{
			"cap_rate":       b(6.0, 7.0, 8.5, "NIC MAP Q4 2024"),
			"dscr":           b(1.15, 1.25, 1.40, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(85, 90, 94, "NIC MAP Q4 2024"),
			"expense_ratio":  b(55, 60, 65, "ASHA Benchmark 2024"),
			"price_per_unit": b(150000, 225000, 325000, "NIC Investment Guide 2024"),
			"noi_growth":     b(3.0, 4.0, 5.5, "JLL Seniors Housing 2024"),
		}},
		{"MemoryCare", map[string]Band{
			"cap_rate":       b(6.5, 7.5, 9.0, "NIC MAP Q4 2024"),
			"dscr":           b(1.15, 1.25, 1.35, "MBA Survey Q4 2024"),
			"ltv":            b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":      b(82, 88, 92, "NIC MAP Q4 2024"),
			"expense_ratio":  b(60, 65, 70, "ASHA Benchmark 2024"),
			"price_per_unit": b(175000, 250000, 350000, "NIC Investment Guide 2024"),
			"noi_growth":     b(3.0, 4.5, 6.0, "JLL Seniors Housing 2024"),
		}},
		{"CCRC", map[string]Band{
			"cap_rate":       b(5.0, 6.0, 7.5, "NIC CCRC Report Q4 2024"),
			"dscr":           b(1.20, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":            b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":      b(87, 92, 95, "NIC CCRC Report Q4 2024"),
			"expense_ratio":  b(50, 55, 60, "ASHA CCRC Benchmark 2024"),
			"price_per_unit": b(200000, 300000, 450000, "NIC Investment Guide 2024"),
			"noi_growth":     b(2.5, 3.5, 5.0, "JLL CCRC Outlook 2024"),
		}},
	}},
	{"student_housing", []subclassDef{
		{"by_bed", map[string]Band{
			"cap_rate":       b(5.0, 6.0, 7.5, "Axiometrics Student Housing Q4 2024"),
			"dscr":           b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(90, 94, 97, "Axiometrics Report Q4 2024"),
			"expense_ratio":  b(40, 45, 52, "NMHC Student Housing 2024"),
			"price_per_unit": b(25000, 35000, 50000, "RCA Analytics Q4 2024"),
			"noi_growth":     b(2.0, 3.0, 4.5, "JLL Student Housing 2024"),
		}},
		{"by_unit", map[string]Band{
			"cap_rate":       b(4.75, 5.75, 7.25, "Axiometrics Student Housing Q4 2024"),
			"dscr":           b(1.22, 1.32, 1.47, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(91, 95, 98, "Axiometrics Report Q4 2024"),
			"expense_ratio":  b(38, 43, 50, "NMHC Student Housing 2024"),
			"price_per_unit": b(80000, 120000, 175000, "RCA Analytics Q4 2024"),
			"noi_growth":     b(2.25, 3.25, 4.75, "JLL Student Housing 2024"),
		}},
	}},
	{"manufactured_housing", []subclassDef{
		{"MHC", map[string]Band{
			"cap_rate":       b(5.0, 6.0, 7.0, "JLL Manufactured Housing Q4 2024"),
			"dscr":           b(1.25, 1.35, 1.50, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(92, 95, 98, "MHI Community Report Q4 2024"),
			"expense_ratio":  b(35, 40, 45, "MHI Benchmark 2024"),
			"price_per_unit": b(15000, 25000, 40000, "RCA Analytics Q4 2024"),
			"noi_growth":     b(3.0, 4.0, 5.5, "JLL MH Outlook 2024"),
		}},
		{"RV", map[string]Band{
			"cap_rate":       b(6.0, 7.0, 8.5, "JLL RV Resort Report Q4 2024"),
			"dscr":           b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":            b(65, 70, 75, "MBA Survey Q4 2024"),
			"occupancy":      b(70, 80, 90, "ARVC Park Report Q4 2024"),
			"expense_ratio":  b(40, 45, 50, "ARVC Benchmark 2024"),
			"price_per_unit": b(20000, 35000, 55000, "RCA Analytics Q4 2024"),
			"noi_growth":     b(2.5, 3.5, 5.0, "JLL RV Outlook 2024"),
		}},
	}},
	{"mixed_use", []subclassDef{
		{"res+retail", map[string]Band{
			"cap_rate":      b(4.75, 5.75, 7.0, "CBRE Mixed-Use Q4 2024"),
			"dscr":          b(1.22, 1.35, 1.48, "MBA Survey Q4 2024"),
			"ltv":           b(62, 67, 72, "MBA Survey Q4 2024"),
			"occupancy":     b(90, 94, 97, "JLL Mixed-Use Report Q4 2024"),
			"walt":          b(3.5, 5.5, 7.5, "CBRE Research Q4 2024"),
			"expense_ratio": b(37, 42, 47, "IREM Mixed-Use Benchmark 2024"),
			"price_psf":     b(175, 275, 425, "RCA Analytics Q4 2024"),
		}},
		{"res+office", map[string]Band{
			"cap_rate":      b(5.0, 6.0, 7.5, "CBRE Mixed-Use Q4 2024"),
			"dscr":          b(1.20, 1.32, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(88, 92, 95, "JLL Mixed-Use Report Q4 2024"),
			"walt":          b(3.0, 5.0, 7.0, "CBRE Research Q4 2024"),
			"expense_ratio": b(38, 43, 48, "IREM Mixed-Use Benchmark 2024"),
			"price_psf":     b(150, 250, 400, "RCA Analytics Q4 2024"),
		}},
		{"custom", map[string]Band{
			"cap_rate":      b(5.25, 6.25, 7.75, "CBRE Mixed-Use Q4 2024"),
			"dscr":          b(1.20, 1.30, 1.45, "MBA Survey Q4 2024"),
			"ltv":           b(60, 65, 70, "MBA Survey Q4 2024"),
			"occupancy":     b(87, 91, 94, "JLL Mixed-Use Report Q4 2024"),
			"walt":          b(3.0, 4.5, 6.5, "CBRE Research Q4 2024"),
			"expense_ratio": b(40, 45, 50, "IREM Mixed-Use Benchmark 2024"),
			"price_psf":     b(125, 225, 375, "RCA Analytics Q4 2024"),
		}},
	}},
})
