package aci

// LoadCombination represents an ACI strength design load combination
// Based on ACI 318-19 Table 5.3.1
type LoadCombination struct {
	ID          string
	Equation    string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Snow       float64 // S - Snow load
	Rain       float64 // R - Rain load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
}

// ACI 318-19 Table 5.3.1. Where the table offers "Lr or S or R" each
// alternative gets its own row so the governing case is explicit.
var LoadCombinations = []LoadCombination{
	{ID: "1", Equation: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "2a", Equation: "5.3.1b", Description: "1.2D + 1.6L + 0.5Lr", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "2b", Equation: "5.3.1b", Description: "1.2D + 1.6L + 0.5S", Dead: 1.2, Live: 1.6, Snow: 0.5},
	{ID: "2c", Equation: "5.3.1b", Description: "1.2D + 1.6L + 0.5R", Dead: 1.2, Live: 1.6, Rain: 0.5},
	{ID: "3a", Equation: "5.3.1c", Description: "1.2D + 1.6Lr + 1.0L", Dead: 1.2, Roof: 1.6, Live: 1.0},
	{ID: "3b", Equation: "5.3.1c", Description: "1.2D + 1.6S + 0.5W", Dead: 1.2, Snow: 1.6, Wind: 0.5},
	{ID: "3c", Equation: "5.3.1c", Description: "1.2D + 1.6R + 1.0L", Dead: 1.2, Rain: 1.6, Live: 1.0},
	{ID: "4", Equation: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr+S+R)", Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5, Snow: 0.5, Rain: 0.5},
	{ID: "5", Equation: "5.3.1e", Description: "1.2D + 1.0E + 1.0L + 0.2S", Dead: 1.2, Earthquake: 1.0, Live: 1.0, Snow: 0.2},
	{ID: "6", Equation: "5.3.1f", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Equation: "5.3.1g", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// GravityCombinations for common beam design scenarios
var GravityCombinations = []LoadCombination{
	{ID: "1", Equation: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "2", Equation: "5.3.1b", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// LoadMoments holds unfactored moments from different load types
type LoadMoments struct {
	Dead       float64 // kip-ft
	Live       float64
	Roof       float64
	Snow       float64
	Rain       float64
	Wind       float64
	Earthquake float64
}

// IsZero reports whether no load effect was given.
func (m LoadMoments) IsZero() bool {
	return m == LoadMoments{}
}

// Factored calculates the factored moment for this combination
func (lc LoadCombination) Factored(m LoadMoments) float64 {
	return lc.Dead*m.Dead +
		lc.Live*m.Live +
		lc.Roof*m.Roof +
		lc.Snow*m.Snow +
		lc.Rain*m.Rain +
		lc.Wind*m.Wind +
		lc.Earthquake*m.Earthquake
}

// GoverningMoment finds the maximum factored moment from all combinations
func GoverningMoment(m LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governing LoadCombination

	for _, combo := range combinations {
		mu := combo.Factored(m)
		if mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
