package aci

import "strings"

// Combination is a gravity strength-design load combination U = γD·D + γL·L.
type Combination struct {
	Name        string
	Description string
	Dead        float64
	Live        float64
}

// Both factor pairs appear in practice: older Thai ministry rules follow the
// ACI 318-99 pair, newer work the ACI 318-14 pair. The engine takes the pair
// as configuration rather than hard-coding one.
var Combinations = []Combination{
	{
		Name:        "ACI318-99",
		Description: "1.4D + 1.7L",
		Dead:        1.4,
		Live:        1.7,
	},
	{
		Name:        "ACI318-14",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// DefaultCombination is used when the caller does not pick a pair.
var DefaultCombination = Combinations[0]

// Factored returns the combined load for unfactored dead and live values.
// Units follow the inputs (kg/m² in, kg/m² out).
func (c Combination) Factored(dead, live float64) float64 {
	return c.Dead*dead + c.Live*live
}

// CombinationByName looks a combination up case-insensitively.
// Unknown names fall back to the default pair.
func CombinationByName(name string) Combination {
	for _, c := range Combinations {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return DefaultCombination
}
