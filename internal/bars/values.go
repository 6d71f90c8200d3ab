package bars

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

const (
	MinHeight = 5
	MaxHeight = 500
	MinSize   = 10
	MaxSize   = 300
)

var ErrUnknownShape = errors.New("bars: unknown shape")

// Shape builds an initial Value Array of length n.
type Shape func(rng *rand.Rand, n int) []int

var shapes = map[string]Shape{
	"random":   Generate,
	"sorted":   sortedShape,
	"reversed": reversedShape,
	"nearly":   nearlySortedShape,
	"few":      fewUniqueShape,
}

func GetShape(name string) (Shape, error) {
	s, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
	return s, nil
}

func ListShapes() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns n heights drawn uniformly from [MinHeight, MaxHeight].
func Generate(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = randomHeight(rng)
	}
	return values
}

func randomHeight(rng *rand.Rand) int {
	return MinHeight + rng.Intn(MaxHeight-MinHeight+1)
}

func sortedShape(rng *rand.Rand, n int) []int {
	values := Generate(rng, n)
	sort.Ints(values)
	return values
}

func reversedShape(rng *rand.Rand, n int) []int {
	values := sortedShape(rng, n)
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// nearlySortedShape displaces roughly one in ten positions.
func nearlySortedShape(rng *rand.Rand, n int) []int {
	values := sortedShape(rng, n)
	if n < 2 {
		return values
	}
	for k := 0; k < n/10+1; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		values[i], values[j] = values[j], values[i]
	}
	return values
}

func fewUniqueShape(rng *rand.Rand, n int) []int {
	pool := [4]int{}
	for i := range pool {
		pool[i] = randomHeight(rng)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = pool[rng.Intn(len(pool))]
	}
	return values
}

// ClampSize limits n to the supported array lengths.
func ClampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}
