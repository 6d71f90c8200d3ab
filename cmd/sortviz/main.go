package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/recorder"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	size       int
	speed      time.Duration
	seed       int64
	shape      string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	theme      string
	// trace
	format string
	// bench and verify
	trials int
)

// main registers the sortviz commands and launches the interactive view when
// no subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "sorting algorithm animation lab",
		SilenceUsage:      true,
		RunE:              func(cmd *cobra.Command, args []string) error { return runPlay(cmd, nil) },
		PersistentPreRunE: setupLogging,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&size, "size", config.DefaultSize, "number of bars (10-300)")
	pf.DurationVar(&speed, "speed", config.DefaultSpeed, "delay between animation steps (10ms-200ms)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&shape, "shape", config.DefaultShape, "initial array shape")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&theme, "theme", "classic", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "animate a sort in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&theme, "theme", "classic", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print the event log recorded for one sort",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "replay every algorithm over random arrays and check the result",
		RunE:  runVerify,
	}
	verifyCmd.Flags().IntVar(&trials, "trials", 200, "arrays per algorithm")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "count recorded swaps by array size",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&trials, "trials", 20, "arrays per size")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSPEED\tSHAPE\tALGORITHM")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%v\t%s\t%s\n", name, p.Size, p.Speed, p.Shape, p.Algorithm)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, traceCmd, verifyCmd, benchCmd, listCmd, presetsCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging sends logs to --log-file when given. Without one, the
// interactive view stays silent and the batch commands log to stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	path := logFile
	level := logLevel
	if configFile != "" && !cmd.Flags().Changed("log-file") {
		if cfg, err := config.Load(configFile); err == nil {
			path = cfg.LogFile
			if !cmd.Flags().Changed("log-level") {
				level = cfg.LogLevel
			}
		}
	}
	if path != "" {
		return logging.InitFile(path, level)
	}
	if cmd.Name() == "play" || cmd.Name() == "sortviz" {
		return nil
	}
	return logging.Init(os.Stderr, level)
}

// loadConfig resolves defaults, then the preset, then the config file, then
// any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("size") || (preset == "" && configFile == "") {
		cfg.Size = size
	}
	if flags.Changed("speed") || (preset == "" && configFile == "") {
		cfg.Speed = speed
	}
	if flags.Changed("shape") || (preset == "" && configFile == "") {
		cfg.Shape = shape
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cfg *config.Config) (*session.Session, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return session.New(cfg, rng, recorder.Default())
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	algorithm := ""
	if len(args) > 0 {
		algorithm = args[0]
	} else if preset != "" {
		algorithm = cfg.Algorithm
	}
	if algorithm != "" {
		if _, err := recorder.Default().Get(algorithm); err != nil {
			return err
		}
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	viz.SetTheme(theme)
	logging.Info("interactive session", "size", cfg.Size, "speed", cfg.Speed, "seed", cfg.Seed, "shape", cfg.Shape)
	return viz.Run(s, algorithm)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tTITLE\tCOMPLEXITY")
	for i, a := range recorder.Default().Menu() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, a.Name, a.Title, a.Complexity)
	}
	fmt.Fprintf(w, "\nshapes: %v\n", bars.ListShapes())
	return w.Flush()
}
