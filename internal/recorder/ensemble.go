package recorder

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/sortviz/internal/anim"
)

// Generator builds one input array from a seeded source.
type Generator func(rng *rand.Rand) []int

// Trial is one recorded sort over a generated input. Err is set when the
// log fails to validate or its replay does not end sorted.
type Trial struct {
	Seed  int64
	Input []int
	Log   anim.Log
	Stats Stats
	Err   error
}

// Ensemble records numRuns sorts concurrently, run i seeded with seedStart+i.
// Runs with the same seed see the same input whatever the algorithm.
type Ensemble struct {
	registry  *Registry
	gen       Generator
	numRuns   int
	seedStart int64
}

func NewEnsemble(r *Registry, gen Generator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{registry: r, gen: gen, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, name string) ([]Trial, error) {
	if _, err := e.registry.Get(name); err != nil {
		return nil, err
	}

	trials := make([]Trial, e.numRuns)
	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			seed := e.seedStart + int64(idx)
			input := e.gen(rand.New(rand.NewSource(seed)))
			log, stats := e.registry.Sample(name, input)
			trials[idx] = Trial{
				Seed:  seed,
				Input: input,
				Log:   log,
				Stats: stats,
				Err:   Check(input, log),
			}
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return trials, nil
}

// Check confirms log is well formed for input and that replaying it sorts.
func Check(input []int, log anim.Log) error {
	if err := anim.Validate(log, len(input)); err != nil {
		return err
	}
	out, err := anim.Replay(input, log)
	if err != nil {
		return err
	}
	if !anim.IsSorted(out) {
		return fmt.Errorf("replay of %d values ended unsorted", len(out))
	}
	return nil
}

// Failures counts the trials whose Err is set.
func Failures(trials []Trial) int {
	n := 0
	for _, t := range trials {
		if t.Err != nil {
			n++
		}
	}
	return n
}
