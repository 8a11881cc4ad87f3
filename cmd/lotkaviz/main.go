package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lotkaviz/internal/config"
	"github.com/san-kum/lotkaviz/internal/server"
	"github.com/san-kum/lotkaviz/internal/session"
	"github.com/san-kum/lotkaviz/internal/viz"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

var (
	configFile string
	preset     string

	alpha     float64
	beta      float64
	gamma     float64
	delta     float64
	prey      float64
	predators float64
	tEnd      float64
	points    int
	format    string

	port int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lotkaviz",
		Short: "interactive Lotka-Volterra phase-space explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named preset")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "solve once and print the result",
		RunE:  runOnce,
	}
	runCmd.Flags().Float64Var(&alpha, "alpha", 0, "prey growth rate")
	runCmd.Flags().Float64Var(&beta, "beta", 0, "predation rate")
	runCmd.Flags().Float64Var(&gamma, "gamma", 0, "predator death rate")
	runCmd.Flags().Float64Var(&delta, "delta", 0, "predator growth rate")
	runCmd.Flags().Float64Var(&prey, "prey", 0, "initial prey population")
	runCmd.Flags().Float64Var(&predators, "predators", 0, "initial predator population")
	runCmd.Flags().Float64Var(&tEnd, "time", 0, "integration end time")
	runCmd.Flags().IntVar(&points, "points", 0, "number of samples")
	runCmd.Flags().StringVar(&format, "format", "plot", "output format: plot, csv, json")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the phase plot over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return server.New(cfg).ListenAndServe()
		},
	}
	serveCmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port (env "+server.PortEnv+" overrides)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, serveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Params.Alpha = alpha
	}
	if cmd.Flags().Changed("beta") {
		cfg.Params.Beta = beta
	}
	if cmd.Flags().Changed("gamma") {
		cfg.Params.Gamma = gamma
	}
	if cmd.Flags().Changed("delta") {
		cfg.Params.Delta = delta
	}
	if cmd.Flags().Changed("prey") {
		cfg.Initial.Prey = prey
	}
	if cmd.Flags().Changed("predators") {
		cfg.Initial.Predators = predators
	}
	if cmd.Flags().Changed("time") {
		cfg.Grid.TEnd = tEnd
	}
	if cmd.Flags().Changed("points") {
		cfg.Grid.Points = points
	}

	sess := session.New(cfg.ToParams(), cfg.ToInitial(), cfg.ToGrid())
	frame, err := sess.Step(session.Input{})
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return writeCSV(frame)
	case "json":
		return writeJSON(frame)
	case "plot":
		return printPlot(frame)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printPlot(frame *session.Frame) error {
	preySeries := make([]float64, len(frame.Trajectory))
	predatorSeries := make([]float64, len(frame.Trajectory))
	preyMin, preyMax := frame.Trajectory[0][0], frame.Trajectory[0][0]
	predMin, predMax := frame.Trajectory[0][1], frame.Trajectory[0][1]
	for i, st := range frame.Trajectory {
		preySeries[i], predatorSeries[i] = st[0], st[1]
		if st[0] < preyMin {
			preyMin = st[0]
		}
		if st[0] > preyMax {
			preyMax = st[0]
		}
		if st[1] < predMin {
			predMin = st[1]
		}
		if st[1] > predMax {
			predMax = st[1]
		}
	}

	fmt.Println(asciigraph.Plot(preySeries,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("prey population"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(predatorSeries,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("predator population"),
	))
	fmt.Println()

	m := volterra.New(frame.Params)
	eq := m.Equilibrium()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "alpha\t%.3f\n", frame.Params.Alpha)
	fmt.Fprintf(w, "beta\t%.3f\n", frame.Params.Beta)
	fmt.Fprintf(w, "gamma\t%.3f\n", frame.Params.Gamma)
	fmt.Fprintf(w, "delta\t%.3f\n", frame.Params.Delta)
	fmt.Fprintf(w, "initial\t(%.1f, %.1f)\n", frame.InitialCondition[0], frame.InitialCondition[1])
	fmt.Fprintf(w, "equilibrium\t(%.1f, %.1f)\n", eq[0], eq[1])
	fmt.Fprintf(w, "prey range\t[%.2f, %.2f]\n", preyMin, preyMax)
	fmt.Fprintf(w, "predator range\t[%.2f, %.2f]\n", predMin, predMax)
	fmt.Fprintf(w, "samples\t%d\n", len(frame.Trajectory))
	return w.Flush()
}

func writeCSV(frame *session.Frame) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "prey", "predators"}); err != nil {
		return err
	}
	for i, st := range frame.Trajectory {
		row := []string{
			strconv.FormatFloat(frame.Times[i], 'f', 6, 64),
			strconv.FormatFloat(st[0], 'f', 6, 64),
			strconv.FormatFloat(st[1], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type runExport struct {
	Alpha     float64   `json:"alpha"`
	Beta      float64   `json:"beta"`
	Gamma     float64   `json:"gamma"`
	Delta     float64   `json:"delta"`
	Initial   []float64 `json:"initial"`
	Times     []float64 `json:"times"`
	Prey      []float64 `json:"prey"`
	Predators []float64 `json:"predators"`
}

func writeJSON(frame *session.Frame) error {
	out := runExport{
		Alpha:     frame.Params.Alpha,
		Beta:      frame.Params.Beta,
		Gamma:     frame.Params.Gamma,
		Delta:     frame.Params.Delta,
		Initial:   frame.InitialCondition,
		Times:     frame.Times,
		Prey:      make([]float64, len(frame.Trajectory)),
		Predators: make([]float64, len(frame.Trajectory)),
	}
	for i, st := range frame.Trajectory {
		out.Prey[i], out.Predators[i] = st[0], st[1]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
