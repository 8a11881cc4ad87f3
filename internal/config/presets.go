package config

var Presets = map[string]*Config{
	"defaults": DefaultConfig(),
	"equilibrium": {
		Params:  ParamConfig{Alpha: 1.0, Beta: 0.1, Gamma: 1.0, Delta: 0.1},
		Initial: StateConfig{Prey: 10.0, Predators: 10.0},
		Grid:    GridConfig{TEnd: DefaultTEnd, Points: DefaultPoints},
		Display: DisplayConfig{PreyMax: DefaultPreyMax, PredatorMax: DefaultPredatorMax},
		Port:    DefaultPort,
	},
	"boom-bust": {
		Params:  ParamConfig{Alpha: 2.0, Beta: 0.05, Gamma: 1.5, Delta: 0.02},
		Initial: StateConfig{Prey: 40.0, Predators: 9.0},
		Grid:    GridConfig{TEnd: DefaultTEnd, Points: DefaultPoints},
		Display: DisplayConfig{PreyMax: 200.0, PredatorMax: 100.0},
		Port:    DefaultPort,
	},
	"predator-heavy": {
		Params:  ParamConfig{Alpha: 0.8, Beta: 0.2, Gamma: 0.6, Delta: 0.05},
		Initial: StateConfig{Prey: 15.0, Predators: 30.0},
		Grid:    GridConfig{TEnd: DefaultTEnd, Points: DefaultPoints},
		Display: DisplayConfig{PreyMax: DefaultPreyMax, PredatorMax: DefaultPreyMax},
		Port:    DefaultPort,
	},
	"slow-cycle": {
		Params:  ParamConfig{Alpha: 0.3, Beta: 0.03, Gamma: 0.4, Delta: 0.02},
		Initial: StateConfig{Prey: 25.0, Predators: 8.0},
		Grid:    GridConfig{TEnd: 300.0, Points: 3000},
		Display: DisplayConfig{PreyMax: DefaultPreyMax, PredatorMax: DefaultPredatorMax},
		Port:    DefaultPort,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
// Callers may mutate the result freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
