package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lotkaviz/internal/ode"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

const (
	DefaultTEnd        = 100.0
	DefaultPoints      = 1000
	DefaultPrey        = 10.0
	DefaultPredators   = 5.0
	DefaultPreyMax     = 100.0
	DefaultPredatorMax = 50.0
	DefaultPort        = 8050
)

type Config struct {
	Params  ParamConfig   `yaml:"params"`
	Initial StateConfig   `yaml:"initial"`
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Port    int           `yaml:"port"`
}

type ParamConfig struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
	Delta float64 `yaml:"delta"`
}

type StateConfig struct {
	Prey      float64 `yaml:"prey"`
	Predators float64 `yaml:"predators"`
}

type GridConfig struct {
	TEnd   float64 `yaml:"t_end"`
	Points int     `yaml:"points"`
}

// DisplayConfig fixes the phase-plot axis ranges. These are rendering
// bounds only, never simulation constraints.
type DisplayConfig struct {
	PreyMax     float64 `yaml:"prey_max"`
	PredatorMax float64 `yaml:"predator_max"`
}

func DefaultConfig() *Config {
	p := volterra.DefaultParams()
	return &Config{
		Params:  ParamConfig{Alpha: p.Alpha, Beta: p.Beta, Gamma: p.Gamma, Delta: p.Delta},
		Initial: StateConfig{Prey: DefaultPrey, Predators: DefaultPredators},
		Grid:    GridConfig{TEnd: DefaultTEnd, Points: DefaultPoints},
		Display: DisplayConfig{PreyMax: DefaultPreyMax, PredatorMax: DefaultPredatorMax},
		Port:    DefaultPort,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToParams converts to simulation parameters, clamped to control bounds.
// Clamping happens here so the core never sees out-of-range values.
func (c *Config) ToParams() volterra.Params {
	return volterra.Params{
		Alpha: c.Params.Alpha,
		Beta:  c.Params.Beta,
		Gamma: c.Params.Gamma,
		Delta: c.Params.Delta,
	}.Clamp()
}

func (c *Config) ToInitial() ode.State {
	return ode.State{c.Initial.Prey, c.Initial.Predators}
}

func (c *Config) ToGrid() ode.TimeGrid {
	return ode.NewTimeGrid(c.Grid.TEnd, c.Grid.Points)
}
