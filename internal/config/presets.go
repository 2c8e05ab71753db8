package config

import "sort"

// Presets are ready-made requests for the classical orthogonal
// families and a few common multivariate setups.
var Presets = map[string]*Config{
	"hermite": {
		Order: 4, CrossTruncation: 1,
		Marginals: []Marginal{{Family: "normal", Mu: 0, Sigma: 1}},
	},
	"legendre": {
		Order: 4, CrossTruncation: 1,
		Marginals: []Marginal{{Family: "uniform", Lower: -1, Upper: 1}},
	},
	"laguerre": {
		Order: 4, CrossTruncation: 1,
		Marginals: []Marginal{{Family: "exponential", Rate: 1}},
	},
	"jacobi": {
		Order: 4, CrossTruncation: 1,
		Marginals: []Marginal{{Family: "beta", ShapeA: 2, ShapeB: 2}},
	},
	"hermite-2d": {
		Order: 3, CrossTruncation: 1,
		Marginals: []Marginal{
			{Family: "normal", Mu: 0, Sigma: 1},
			{Family: "normal", Mu: 0, Sigma: 1},
		},
	},
	"mixed-sparse": {
		Order: 5, CrossTruncation: 0.5, Normed: true,
		Marginals: []Marginal{
			{Family: "normal", Mu: 0, Sigma: 1},
			{Family: "uniform", Lower: -1, Upper: 1},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
