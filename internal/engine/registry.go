package engine

import (
	"fmt"
	"sort"
)

type Registry struct {
	algorithms map[string]func() Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() Algorithm),
	}

	r.algorithms["selection"] = func() Algorithm { return Selection{} }
	r.algorithms["bubble"] = func() Algorithm { return Bubble{} }

	return r
}

func (r *Registry) Get(name string) (Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s (available: %v)", name, r.Names())
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
