package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/engine"
)

var (
	size         int
	seed         int64
	shape        string
	valuesFlag   string
	compareDelay time.Duration
	swapDelay    time.Duration
	themeName    string
	frameRate    int
	configFile   string
	preset       string
	plain        bool
	verbose      bool
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of bars")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&shape, "shape", string(dataset.Random), fmt.Sprintf("input shape %v", dataset.Shapes()))
	cmd.Flags().StringVar(&valuesFlag, "values", "", "explicit input, e.g. 5,3,4,1,2")
	cmd.Flags().DurationVar(&compareDelay, "compare-delay", engine.DefaultCompareDelay, "pause after a compare")
	cmd.Flags().DurationVar(&swapDelay, "swap-delay", engine.DefaultSwapDelay, "pause after a swap")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate (plain mode)")
}

// resolveConfig layers the run configuration: defaults, then the preset,
// then the config file, then flags the user actually set, then the
// algorithm argument.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Input.Size = size
	}
	if flags.Changed("shape") {
		cfg.Input.Shape = shape
	}
	if flags.Changed("seed") || cfg.Input.Seed == 0 {
		cfg.Input.Seed = seed
	}
	if flags.Changed("values") {
		vals, err := dataset.Parse(valuesFlag)
		if err != nil {
			return nil, err
		}
		cfg.Input.Values = vals
	}
	if flags.Changed("compare-delay") {
		cfg.Delays.Compare = compareDelay
	}
	if flags.Changed("swap-delay") {
		cfg.Delays.Swap = swapDelay
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reshuffler returns fresh input for each restart of the visualization.
// Explicit values are replayed unchanged.
func reshuffler(cfg *config.Config) func() ([]int, error) {
	if len(cfg.Input.Values) > 0 {
		return nil
	}
	next := *cfg
	return func() ([]int, error) {
		next.Input.Seed++
		return next.Values()
	}
}
