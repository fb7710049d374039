package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	benchSizes []int
	benchSeed  int64
	svgPath    string
	jsonPath   string
)

// main registers the sortviz commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "animated sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(os.Stderr, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate a sort",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	addInputFlags(runCmd)
	addDisplayFlags(runCmd)
	runCmd.Flags().BoolVar(&plain, "plain", false, "draw with plain ANSI output instead of the full-screen view")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "log every step of a sort without pauses",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceSort,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme (svg export)")
	traceCmd.Flags().StringVar(&svgPath, "svg", "", "write the final board to an svg file")
	traceCmd.Flags().StringVar(&jsonPath, "json", "", "write the step trace to a json file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "count steps per algorithm and input shape",
		Args:  cobra.NoArgs,
		RunE:  benchSorts,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{8, 16, 32, 64, 128}, "array sizes")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "random seed")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of headless sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range engine.NewRegistry().Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPresets(os.Stdout)
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, benchCmd, scenarioCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func setupLogging(out io.Writer, debug bool) {
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	algo, err := engine.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	values, err := cfg.Values()
	if err != nil {
		return err
	}

	theme := render.GetTheme(cfg.Theme)

	if plain {
		return runPlain(cfg, algo, values, theme)
	}

	result, err := viz.Run(viz.Options{
		Algorithm: algo,
		Values:    values,
		Pacer:     cfg.Pacer(),
		Theme:     theme,
		Reshuffle: reshuffler(cfg),
	})
	if err != nil && !engine.IsCancelled(err) {
		return err
	}
	if result != nil {
		printSummary(os.Stdout, result)
	}
	return nil
}

func runPlain(cfg *config.Config, algo engine.Algorithm, values []int, theme render.Theme) error {
	ctx, cancel := signalContext()
	defer cancel()

	title := strings.ToUpper(algo.Name()) + " SORT"
	term := render.NewTerminal(os.Stdout, values, title, theme, cfg.FrameRate)
	term.Start()
	defer term.Stop()

	eng := engine.New(algo, cfg.Pacer())
	eng.AddSink(term)

	result, err := eng.Run(ctx, values)
	if err != nil && !engine.IsCancelled(err) {
		return err
	}
	if err := term.Flush(); err != nil {
		return err
	}
	printSummary(os.Stdout, result)
	return nil
}

func traceSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	algo, err := engine.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	values, err := cfg.Values()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	board := render.NewBoard(values)
	rec := export.NewRecorder()
	eng := engine.New(algo, engine.Instant{})
	eng.AddSink(render.NewLogger(logrus.StandardLogger(), logrus.GetLevel()))
	eng.AddSink(board)
	eng.AddSink(rec)

	result, err := eng.Run(ctx, values)
	if err != nil && !engine.IsCancelled(err) {
		return err
	}
	printSummary(os.Stdout, result)

	if svgPath != "" {
		if err := export.SaveBoardSVG(svgPath, board, render.GetTheme(cfg.Theme), 800, 400); err != nil {
			return fmt.Errorf("failed to export svg: %w", err)
		}
		logrus.WithField("path", svgPath).Info("board exported")
	}
	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, result, rec.Frames()); err != nil {
			return fmt.Errorf("failed to export trace: %w", err)
		}
		logrus.WithField("path", jsonPath).Info("trace exported")
	}
	return nil
}

func printSummary(w io.Writer, result *engine.Result) {
	status := "sorted"
	if result.Cancelled {
		status = "cancelled"
	}
	fmt.Fprintf(w, "run id: %s\n", result.ID)
	fmt.Fprintf(w, "algorithm: %s (%s)\n", result.Algorithm, status)
	fmt.Fprintf(w, "input: %v\n", result.Input)
	fmt.Fprintf(w, "output: %v\n", result.Values)
	fmt.Fprintf(w, "steps: %d  compares: %d  swaps: %d  sorted: %d/%d\n",
		result.Stats.Steps, result.Stats.Compares, result.Stats.Swaps,
		result.Sorted.Len(), len(result.Values))
	fmt.Fprintf(w, "elapsed: %v\n", result.Stats.Elapsed)
}

func benchSorts(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()
	return bench(ctx, os.Stdout, benchSizes, benchSeed)
}

func bench(ctx context.Context, out io.Writer, sizes []int, seed int64) error {
	registry := engine.NewRegistry()

	var sweeps []*automation.Sweep
	for _, name := range registry.Names() {
		for _, shape := range dataset.Shapes() {
			sweeps = append(sweeps, &automation.Sweep{
				Algorithm: name,
				Shape:     dataset.Shape(shape),
				Sizes:     sizes,
				Seed:      seed,
			})
		}
	}

	results, err := automation.RunSweeps(ctx, sweeps, registry)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSHAPE\tSIZE\tCOMPARES\tSWAPS\tSTEPS")

	var series [][]float64
	var names []string
	for i, sweep := range sweeps {
		swaps := make([]float64, len(results[i]))
		for j, r := range results[i] {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
				sweep.Algorithm, sweep.Shape, r.Size, r.Stats.Compares, r.Stats.Swaps, r.Stats.Steps)
			swaps[j] = float64(r.Stats.Swaps)
		}
		if sweep.Shape == dataset.Random {
			series = append(series, swaps)
			names = append(names, sweep.Algorithm)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(sizes) > 1 && len(series) > 0 {
		graph := asciigraph.PlotMany(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("swaps on random input: %s", strings.Join(names, " vs "))),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunScenario(ctx, scenario, engine.NewRegistry())
	printScenario(os.Stdout, scenario, results)
	return err
}

func printScenario(out io.Writer, scenario *automation.Scenario, results []*engine.Result) {
	fmt.Fprintf(out, "scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Fprintf(out, "%s\n", scenario.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tSIZE\tCOMPARES\tSWAPS\tSTEPS\tID")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			i+1, r.Algorithm, len(r.Values), r.Stats.Compares, r.Stats.Swaps, r.Stats.Steps, r.ID)
	}
	w.Flush()
}

func printPresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tSHAPE\tSIZE\tCOMPARE\tSWAP")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\t%v\n",
			name, p.Algorithm, p.Input.Shape, p.Input.Size, p.Delays.Compare, p.Delays.Swap)
	}
	return w.Flush()
}
