package automation

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/engine"
)

// Scenario is a scripted batch of headless runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun is a single run in a scenario. Values, when set, take
// precedence over the generated input.
type ScenarioRun struct {
	Algorithm string `yaml:"algorithm"`
	Shape     string `yaml:"shape"`
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Seed      int64  `yaml:"seed"`
	Values    []int  `yaml:"values"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}

	return &scenario, nil
}

func (r ScenarioRun) input() ([]int, error) {
	if len(r.Values) > 0 {
		out := make([]int, len(r.Values))
		copy(out, r.Values)
		return out, nil
	}
	spec := dataset.Spec{
		Shape: dataset.Shape(r.Shape),
		Size:  r.Size,
		Min:   r.Min,
		Max:   r.Max,
		Seed:  r.Seed,
	}
	if spec.Max == 0 {
		spec.Min, spec.Max = 1, 100
	}
	return dataset.Generate(spec)
}

// RunScenario executes every run of a scenario without pauses. It stops at
// the first failing run and returns the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *engine.Registry) ([]*engine.Result, error) {
	results := make([]*engine.Result, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		logrus.WithFields(logrus.Fields{
			"scenario":  scenario.Name,
			"run":       fmt.Sprintf("%d/%d", i+1, len(scenario.Runs)),
			"algorithm": run.Algorithm,
		}).Info("running")

		algo, err := registry.Get(run.Algorithm)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		values, err := run.input()
		if err != nil {
			return results, fmt.Errorf("run %d input: %w", i+1, err)
		}

		result, err := engine.New(algo, engine.Instant{}).Run(ctx, values)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		results = append(results, result)
	}

	return results, nil
}

// Sweep measures one algorithm on one input shape across several sizes.
type Sweep struct {
	Algorithm string
	Shape     dataset.Shape
	Sizes     []int
	Seed      int64
}

type SweepResult struct {
	Size  int
	Stats engine.Stats
}

// RunSweep sorts a generated array of every size in the sweep.
func RunSweep(ctx context.Context, sweep *Sweep, registry *engine.Registry) ([]SweepResult, error) {
	algo, err := registry.Get(sweep.Algorithm)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, len(sweep.Sizes))
	for _, size := range sweep.Sizes {
		values, err := dataset.Generate(dataset.Spec{
			Shape: sweep.Shape,
			Size:  size,
			Min:   1,
			Max:   100,
			Seed:  sweep.Seed,
		})
		if err != nil {
			return nil, err
		}

		result, err := engine.New(algo, engine.Instant{}).Run(ctx, values)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{Size: size, Stats: result.Stats})
		logrus.WithFields(logrus.Fields{
			"algorithm": sweep.Algorithm,
			"shape":     sweep.Shape,
			"size":      size,
		}).Debug("sweep point done")
	}

	return results, nil
}

// RunSweeps runs independent sweeps concurrently. Results line up with the
// sweeps slice.
func RunSweeps(ctx context.Context, sweeps []*Sweep, registry *engine.Registry) ([][]SweepResult, error) {
	results := make([][]SweepResult, len(sweeps))
	errs := make([]error, len(sweeps))

	var wg sync.WaitGroup
	for i, sweep := range sweeps {
		wg.Add(1)
		go func(idx int, sw *Sweep) {
			defer wg.Done()
			results[idx], errs[idx] = RunSweep(ctx, sw, registry)
		}(i, sweep)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
