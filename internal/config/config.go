// Package config loads basis-construction requests from YAML files and
// resolves them into moment providers.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/polychaos/internal/dist"
)

const (
	DefaultOrder           = 4
	DefaultCrossTruncation = 1.0
)

type Config struct {
	Order           int        `yaml:"order"`
	Start           int        `yaml:"start"`
	CrossTruncation float64    `yaml:"cross_truncation"`
	Normed          bool       `yaml:"normed"`
	Marginals       []Marginal `yaml:"marginals"`
}

// Marginal describes one dimension's distribution. Family selects which
// parameter fields apply.
type Marginal struct {
	Family  string    `yaml:"family"`
	Mu      float64   `yaml:"mu"`
	Sigma   float64   `yaml:"sigma"`
	Lower   float64   `yaml:"lower"`
	Upper   float64   `yaml:"upper"`
	Rate    float64   `yaml:"rate"`
	Shape   float64   `yaml:"shape"`
	Scale   float64   `yaml:"scale"`
	ShapeA  float64   `yaml:"shape_a"`
	ShapeB  float64   `yaml:"shape_b"`
	Samples []float64 `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Order:           DefaultOrder,
		CrossTruncation: DefaultCrossTruncation,
		Marginals: []Marginal{
			{Family: "normal", Mu: 0, Sigma: 1},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Order < 0 {
		return fmt.Errorf("config: order %d must be non-negative", c.Order)
	}
	if c.Start < 0 || c.Start > c.Order {
		return fmt.Errorf("config: start %d outside [0,%d]", c.Start, c.Order)
	}
	if c.CrossTruncation <= 0 {
		return fmt.Errorf("config: cross truncation %g must be positive", c.CrossTruncation)
	}
	if len(c.Marginals) == 0 {
		return fmt.Errorf("config: at least one marginal required")
	}
	for i, m := range c.Marginals {
		if _, err := m.Provider(); err != nil {
			return fmt.Errorf("config: marginal %d: %w", i, err)
		}
	}
	return nil
}

// Dimensions returns the stochastic dimension count of the request.
func (c *Config) Dimensions() int { return len(c.Marginals) }

// Provider resolves the marginals into an independent joint moment
// provider.
func (c *Config) Provider() (dist.MomentProvider, error) {
	marginals := make([]dist.MomentProvider, len(c.Marginals))
	for i, m := range c.Marginals {
		p, err := m.Provider()
		if err != nil {
			return nil, fmt.Errorf("config: marginal %d: %w", i, err)
		}
		marginals[i] = p
	}
	return dist.Join(marginals...), nil
}

// Provider resolves a single marginal into its univariate provider.
func (m Marginal) Provider() (dist.MomentProvider, error) {
	switch m.Family {
	case "normal", "gaussian":
		return dist.NewNormal(m.Mu, m.Sigma), nil
	case "uniform":
		return dist.NewUniform(m.Lower, m.Upper), nil
	case "exponential":
		return dist.NewExponential(m.Rate), nil
	case "gamma":
		return dist.NewGamma(m.Shape, m.Scale), nil
	case "lognormal":
		return dist.NewLognormal(m.Mu, m.Sigma), nil
	case "beta":
		return dist.NewBeta(m.ShapeA, m.ShapeB), nil
	case "empirical":
		return dist.NewEmpirical(m.Samples), nil
	default:
		return nil, fmt.Errorf("unknown distribution family: %s", m.Family)
	}
}
