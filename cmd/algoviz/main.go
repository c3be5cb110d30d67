package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/san-kum/algoviz/internal/xlog"
)

var (
	configFile string
	preset     string
	theme      string
	logFile    string
	logFormat  string
	debug      bool

	// trace
	size     int
	seed     int64
	pattern  string
	speed    float64
	variant  string
	realtime bool
	plot     bool
	noColor  bool

	// init
	force bool
)

// main registers the commands and opens the interactive visualizer when no
// subcommand is given. It exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "step-by-step sorting and tree traversal visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, func(cfg *config.Config, log *zap.Logger) error {
				return tui.RunInteractive(cfg, log)
			})
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml configuration file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named configuration preset")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log encoding: json or console")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every step")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "run an algorithm headless and print its log",
		Long: "run an algorithm headless and print its log.\n" +
			"algorithm is one of the names shown by `list`; `tree` traverses in the --variant order.\n" +
			"without an argument the configured algorithm runs.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, func(cfg *config.Config, log *zap.Logger) error {
				name := cfg.Algorithm
				if len(args) > 0 {
					name = args[0]
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runTrace(ctx, cmd.OutOrStdout(), cfg, name, traceOptions{
					Realtime: realtime,
					Plot:     plot,
					NoColor:  noColor,
				}, log)
			})
		},
	}
	traceCmd.Flags().IntVar(&size, "size", dataset.DefaultSize, "number of values to sort (5-50)")
	traceCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one")
	traceCmd.Flags().StringVar(&pattern, "pattern", string(dataset.PatternRandom), "data pattern")
	traceCmd.Flags().Float64Var(&speed, "speed", 1.0, "speed multiplier (0.1-3.0)")
	traceCmd.Flags().StringVar(&variant, "variant", algo.InOrder.String(), "traversal order for `tree`")
	traceCmd.Flags().BoolVar(&realtime, "realtime", false, "pause between steps like the animation")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot metric histories after the run")
	traceCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms and traversal variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tSUBJECT")
			for _, info := range algo.NewRegistry().List() {
				subject := "sequence"
				if info.Tree {
					subject = "tree"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Title, subject)
			}
			return w.Flush()
		},
	}

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "validate and print the configured tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, func(cfg *config.Config, log *zap.Logger) error {
				return printTree(cmd.OutOrStdout(), cfg, noColor)
			})
		},
	}
	treeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name].Description)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config with the reference tree spelled out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, func(cfg *config.Config, log *zap.Logger) error {
				if err := writeStarterConfig(args[0], cfg, force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
				return nil
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(traceCmd, listCmd, treeCmd, presetsCmd, themesCmd, initCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// withSetup builds the logger and the effective configuration, then runs fn.
func withSetup(cmd *cobra.Command, fn func(*config.Config, *zap.Logger) error) (err error) {
	log, closeLog, err := xlog.New(xlog.WithFile(logFile), xlog.WithFormat(logFormat), xlog.WithDebug(debug))
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeLog()) }()

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Error("configuration rejected", zap.Error(err))
		return err
	}
	log.Info("configuration loaded",
		zap.String("config", configFile),
		zap.String("preset", preset),
		zap.Int("array_size", cfg.ArraySize),
		zap.Float64("speed", cfg.Speed),
		zap.String("theme", cfg.Theme))
	return fn(cfg, log)
}

// loadConfig layers the defaults, the config file, the preset and finally
// any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if theme != "" {
		cfg.Theme = theme
	}
	if flags.Changed("size") {
		cfg.ArraySize = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = dataset.Pattern(pattern)
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("variant") {
		cfg.Variant = variant
	}

	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeStarterConfig saves cfg to path, filling in the reference tree when
// cfg has none so the nodes can be edited in place.
func writeStarterConfig(path string, cfg *config.Config, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists (use --force)", path)
	}
	out := cfg.Clone()
	if len(out.Tree.Nodes) == 0 {
		out.Tree = config.TreeConfig{Root: dataset.ReferenceRoot, Nodes: dataset.ReferenceNodes()}
	}
	return config.Save(path, out)
}
