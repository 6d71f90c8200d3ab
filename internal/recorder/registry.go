package recorder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/sortviz/internal/anim"
)

// ErrUnknownAlgorithm is returned by lookups for names that were never registered.
var ErrUnknownAlgorithm = errors.New("recorder: unknown algorithm")

// Algorithm is a sorting strategy that records its work as an event log.
// Sort may mutate the slice it is given.
type Algorithm struct {
	Name       string
	Title      string
	Complexity string
	Sort       func(values []int) anim.Log
}

type Registry struct {
	algorithms map[string]Algorithm
	order      []string
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.Register(Algorithm{Name: "merge", Title: "Merge sort", Complexity: "O(n log n)", Sort: MergeSort})
	r.Register(Algorithm{Name: "quick", Title: "Quick sort", Complexity: "O(n log n)", Sort: QuickSort})
	r.Register(Algorithm{Name: "heap", Title: "Heap sort", Complexity: "O(n log n)", Sort: HeapSort})
	r.Register(Algorithm{Name: "comb", Title: "Comb sort", Complexity: "O(n^2)", Sort: CombSort})
	r.Register(Algorithm{Name: "gnome", Title: "Gnome sort", Complexity: "O(n^2)", Sort: GnomeSort})
	r.Register(Algorithm{Name: "oddeven", Title: "Odd even sort", Complexity: "O(n^2)", Sort: OddEvenSort})
	r.Register(Algorithm{Name: "selection", Title: "Selection sort", Complexity: "O(n^2)", Sort: SelectionSort})
	r.Register(Algorithm{Name: "bubble", Title: "Bubble sort", Complexity: "O(n^2)", Sort: BubbleSort})

	return r
}

// Register adds or replaces an algorithm. Menu order follows first registration.
func (r *Registry) Register(a Algorithm) {
	if _, ok := r.algorithms[a.Name]; !ok {
		r.order = append(r.order, a.Name)
	}
	r.algorithms[a.Name] = a
}

func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Names returns the registered names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Menu returns the algorithms in registration order.
func (r *Registry) Menu() []Algorithm {
	out := make([]Algorithm, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.algorithms[name])
	}
	return out
}

// Record runs the named algorithm over values and returns its event log.
// An unknown name yields an empty log and leaves values untouched.
func (r *Registry) Record(name string, values []int) anim.Log {
	a, ok := r.algorithms[name]
	if !ok {
		return anim.Log{}
	}
	return a.Sort(values)
}

var defaultRegistry = NewRegistry()

func Default() *Registry { return defaultRegistry }

func Record(name string, values []int) anim.Log {
	return defaultRegistry.Record(name, values)
}
