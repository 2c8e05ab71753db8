package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/polychaos/internal/basis"
	"github.com/san-kum/polychaos/internal/config"
	"github.com/san-kum/polychaos/internal/dist"
	"github.com/san-kum/polychaos/internal/export"
	"github.com/san-kum/polychaos/internal/indices"
	"github.com/san-kum/polychaos/internal/orth"
	"github.com/san-kum/polychaos/internal/poly"
	"github.com/san-kum/polychaos/internal/render"
)

var (
	start      int
	stop       int
	dimensions int
	cross      float64
	order      int
	normed     bool
	configFile string
	preset     string
	jsonOut    string
	csvOut     string
	// Plot window
	plotLower   float64
	plotUpper   float64
	plotSamples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "polychaos",
		Short: "polynomial chaos basis toolkit",
	}

	indicesCmd := &cobra.Command{
		Use:   "indices",
		Short: "enumerate the multi-index set of a truncation scheme",
		RunE:  runIndices,
	}
	indicesCmd.Flags().IntVar(&start, "start", 0, "lower degree bound")
	indicesCmd.Flags().IntVar(&stop, "stop", 2, "upper degree bound")
	indicesCmd.Flags().IntVar(&dimensions, "dims", 2, "stochastic dimensions")
	indicesCmd.Flags().Float64Var(&cross, "cross", 1.0, "cross-truncation exponent")

	basisCmd := &cobra.Command{
		Use:   "basis",
		Short: "build the monomial basis of a truncation scheme",
		RunE:  runBasis,
	}
	basisCmd.Flags().IntVar(&start, "start", 0, "lower degree bound")
	basisCmd.Flags().IntVar(&stop, "stop", 4, "upper degree bound")
	basisCmd.Flags().IntVar(&dimensions, "dims", 1, "stochastic dimensions")
	basisCmd.Flags().Float64Var(&cross, "cross", 1.0, "cross-truncation exponent")
	basisCmd.Flags().StringVar(&jsonOut, "json", "", "write expansion to JSON file")
	basisCmd.Flags().StringVar(&csvOut, "csv", "", "write expansion to CSV file")

	orthCmd := &cobra.Command{
		Use:   "orthogonal",
		Short: "build a basis orthogonal under a distribution",
		RunE:  runOrthogonal,
	}
	orthCmd.Flags().IntVar(&order, "order", 4, "polynomial order")
	orthCmd.Flags().BoolVar(&normed, "normed", false, "orthonormal instead of monic")
	orthCmd.Flags().Float64Var(&cross, "cross", 1.0, "cross-truncation exponent")
	orthCmd.Flags().StringVar(&configFile, "config", "", "request YAML file")
	orthCmd.Flags().StringVar(&preset, "preset", "", "named preset (see presets command)")
	orthCmd.Flags().StringVar(&jsonOut, "json", "", "write expansion to JSON file")
	orthCmd.Flags().StringVar(&csvOut, "csv", "", "write expansion to CSV file")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a univariate orthogonal basis",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&order, "order", 4, "polynomial order")
	plotCmd.Flags().BoolVar(&normed, "normed", false, "orthonormal instead of monic")
	plotCmd.Flags().StringVar(&configFile, "config", "", "request YAML file")
	plotCmd.Flags().StringVar(&preset, "preset", "", "named preset")
	plotCmd.Flags().Float64Var(&plotLower, "lower", -2, "plot window lower bound")
	plotCmd.Flags().Float64Var(&plotUpper, "upper", 2, "plot window upper bound")
	plotCmd.Flags().IntVar(&plotSamples, "samples", 81, "samples per curve")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named basis presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				families := make([]string, len(cfg.Marginals))
				for i, m := range cfg.Marginals {
					families[i] = m.Family
				}
				fmt.Printf("%s\t%s\n",
					render.Value.Render(name),
					render.Subtle.Render(fmt.Sprintf("order %d, %s", cfg.Order, strings.Join(families, " x "))))
			}
		},
	}

	rootCmd.AddCommand(indicesCmd, basisCmd, orthCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Warn.Render(err.Error()))
		os.Exit(1)
	}
}

func runIndices(cmd *cobra.Command, args []string) error {
	tuples, err := indices.Generate(start, stop, dimensions, cross)
	if err != nil {
		return err
	}

	fmt.Println(render.Title.Render(fmt.Sprintf("multi-index set [%d,%d], %d dimensions, cross %g", start, stop, dimensions, cross)))
	w := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	fmt.Fprintln(w, render.Header.Render("#\tdegree\ttuple"))
	for i, exps := range tuples {
		fmt.Fprintf(w, "%d\t%d\t%v\n", i, indices.TotalDegree(exps), exps)
	}
	return w.Flush()
}

func runBasis(cmd *cobra.Command, args []string) error {
	e, err := basis.Monomials(start, stop, dimensions, cross)
	if err != nil {
		return err
	}
	fmt.Println(render.Title.Render(fmt.Sprintf("monomial basis [%d,%d], %d dimensions", start, stop, dimensions)))
	return emit(e)
}

func runOrthogonal(cmd *cobra.Command, args []string) error {
	cfg, mp, err := resolveRequest()
	if err != nil {
		return err
	}

	opts := []orth.Option{orth.CrossTruncation(cfg.CrossTruncation)}
	if cfg.Normed {
		opts = append(opts, orth.Normed())
	}
	e, err := orth.Orthogonal(cfg.Order, mp, opts...)
	if err != nil {
		return err
	}
	fmt.Println(render.Title.Render(fmt.Sprintf("orthogonal basis, order %d, %d dimensions", cfg.Order, mp.Dims())))
	return emit(e)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, mp, err := resolveRequest()
	if err != nil {
		return err
	}
	if mp.Dims() != 1 {
		return fmt.Errorf("plot needs a univariate request, got %d dimensions", mp.Dims())
	}

	opts := []orth.Option{}
	if cfg.Normed {
		opts = append(opts, orth.Normed())
	}
	e, err := orth.Orthogonal(cfg.Order, mp, opts...)
	if err != nil {
		return err
	}

	graph, err := render.PlotUnivariate(e, plotLower, plotUpper, plotSamples)
	if err != nil {
		return err
	}
	fmt.Println(render.Title.Render(fmt.Sprintf("orthogonal basis, order %d", cfg.Order)))
	fmt.Println(graph)
	return nil
}

// resolveRequest merges the config file or preset with command-line
// overrides. Explicit flags win over file values.
func resolveRequest() (*config.Config, dist.MomentProvider, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	case preset != "":
		loaded := config.GetPreset(preset)
		if loaded == nil {
			return nil, nil, fmt.Errorf("unknown preset %q (try the presets command)", preset)
		}
		cfg = loaded
	default:
		cfg.Order = order
		cfg.Normed = normed
		cfg.CrossTruncation = cross
	}

	mp, err := cfg.Provider()
	if err != nil {
		return nil, nil, err
	}
	return cfg, mp, nil
}

func emit(e poly.Expansion) error {
	w := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	fmt.Fprintln(w, render.Header.Render("#\tdegree\tpolynomial"))
	for i, p := range e {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i, p.Degree(), p)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if jsonOut != "" {
		if err := export.ExportJSON(jsonOut, e); err != nil {
			return err
		}
		fmt.Println(render.Subtle.Render("wrote " + jsonOut))
	}
	if csvOut != "" {
		if err := export.ExportCSV(csvOut, e); err != nil {
			return err
		}
		fmt.Println(render.Subtle.Render("wrote " + csvOut))
	}
	return nil
}
