// Package dataset builds the integer arrays that runs sort.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

type Shape string

const (
	Random    Shape = "random"
	Reversed  Shape = "reversed"
	Sorted    Shape = "sorted"
	FewUnique Shape = "few_unique"
)

const fewUniqueLevels = 4

var shapes = []Shape{Random, Reversed, Sorted, FewUnique}

// Shapes returns the known shape names.
func Shapes() []string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = string(s)
	}
	return names
}

// Spec describes an array to generate. Values fall in [Min, Max].
type Spec struct {
	Shape Shape
	Size  int
	Min   int
	Max   int
	Seed  int64
}

// Generate builds the array described by spec. The same spec always yields
// the same array.
func Generate(spec Spec) ([]int, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", spec.Size)
	}
	if spec.Min < 0 || spec.Max < spec.Min {
		return nil, fmt.Errorf("invalid value range [%d, %d]", spec.Min, spec.Max)
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	span := spec.Max - spec.Min + 1
	values := make([]int, spec.Size)

	switch spec.Shape {
	case Random, "":
		for i := range values {
			values[i] = spec.Min + rng.Intn(span)
		}
	case Sorted, Reversed:
		for i := range values {
			values[i] = spec.Min + rng.Intn(span)
		}
		sort.Ints(values)
		if spec.Shape == Reversed {
			for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
				values[i], values[j] = values[j], values[i]
			}
		}
	case FewUnique:
		levels := make([]int, fewUniqueLevels)
		for i := range levels {
			levels[i] = spec.Min + (i+1)*span/(fewUniqueLevels+1)
		}
		for i := range values {
			values[i] = levels[rng.Intn(len(levels))]
		}
	default:
		return nil, fmt.Errorf("unknown shape: %s (available: %v)", spec.Shape, Shapes())
	}

	return values, nil
}

// Parse reads a comma or space separated list such as "5,3,4,1,2".
func Parse(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
