package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/recorder"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/spf13/cobra"
)

var benchSizes = []int{10, 25, 50, 100, 150, 200, 300}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg := recorder.Default()
	if _, err := reg.Get(args[0]); err != nil {
		return err
	}

	input, err := makeInput(cfg, rand.New(rand.NewSource(cfg.Seed)), cfg.Size)
	if err != nil {
		return err
	}
	log, stats := reg.Sample(args[0], input)
	logging.Debug("recorded", "algorithm", args[0], "events", stats.Events, "swaps", stats.Swaps)

	d, err := trace.New(args[0], cfg.Shape, cfg.Seed, input, log)
	if err != nil {
		return err
	}
	return trace.Write(os.Stdout, format, d)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	shapeFn, err := bars.GetShape(cfg.Shape)
	if err != nil {
		return err
	}
	gen := func(rng *rand.Rand) []int { return shapeFn(rng, rng.Intn(bars.MaxSize+1)) }
	reg := recorder.Default()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRIALS\tEVENTS\tFAILURES")
	failed := 0
	for _, a := range reg.Menu() {
		results, err := recorder.NewEnsemble(reg, gen, trials, cfg.Seed).Run(cmd.Context(), a.Name)
		if err != nil {
			return err
		}
		events := 0
		for _, t := range results {
			events += t.Stats.Events
			if t.Err != nil {
				logging.Error("verify failed", "algorithm", a.Name, "seed", t.Seed, "size", len(t.Input), "err", t.Err)
			}
		}
		n := recorder.Failures(results)
		failed += n
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", a.Name, trials, events, n)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d recorded runs did not sort their input", failed)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	shapeFn, err := bars.GetShape(cfg.Shape)
	if err != nil {
		return err
	}
	reg := recorder.Default()
	menu := reg.Menu()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "ALGORITHM")
	for _, n := range benchSizes {
		fmt.Fprintf(w, "\tn=%d", n)
	}
	fmt.Fprintln(w)

	series := make([][]float64, len(menu))
	for k, a := range menu {
		fmt.Fprint(w, a.Name)
		for _, n := range benchSizes {
			gen := func(rng *rand.Rand) []int { return shapeFn(rng, n) }
			results, err := recorder.NewEnsemble(reg, gen, trials, cfg.Seed).Run(cmd.Context(), a.Name)
			if err != nil {
				return err
			}
			total := 0
			for _, t := range results {
				total += t.Stats.Swaps
			}
			mean := float64(total) / float64(trials)
			series[k] = append(series[k], math.Log10(mean+1))
			fmt.Fprintf(w, "\t%.0f", mean)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logging.Debug("bench done", "algorithms", len(menu), "sizes", len(benchSizes), "trials", trials)
	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("log10(mean swaps + 1) by size, shape=%s", cfg.Shape)),
	))
	return nil
}

func makeInput(cfg *config.Config, rng *rand.Rand, n int) ([]int, error) {
	gen, err := bars.GetShape(cfg.Shape)
	if err != nil {
		return nil, err
	}
	return gen(rng, n), nil
}
