// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/uplcp/config"
	"github.com/katalvlaran/uplcp/crisscross"
	"github.com/katalvlaran/uplcp/partition"
	"github.com/katalvlaran/uplcp/problem"
	"github.com/katalvlaran/uplcp/report"
)

const numericWarning = "Warning: The data entered consists of an M matrix containing no parameters. " +
	"While the method implemented here is applicable for this problem, a more efficient procedure exists. " +
	"See Adelgren and Wiecek's 'A two phase algorithm for the multiparametric linear complementarity problem' (2016). " +
	"This method may implemented here in a future release, but is not as of now. Continuing ... "

// legacyFlags are accepted after a single dash, as in "-numThreads 4".
var legacyFlags = []string{config.FlagParStart, config.FlagShowProgress, config.FlagNumThreads}

// rootOptions holds the flags of the root command.
type rootOptions struct {
	configFile  string
	output      string
	metricsFile string
	verbose     bool
	epsilon     float64
	warmStart   bool

	// Legacy flags stay strings so bad values warn instead of failing the parse.
	parStart     string
	showProgress string
	numThreads   string

	logger *zap.Logger // nil builds the production logger
}

func execute(ctx context.Context, args []string) error {
	cmd := newRootCommand(&rootOptions{})
	cmd.SetArgs(normalizeArgs(args))

	return cmd.ExecuteContext(ctx)
}

// normalizeArgs rewrites single-dash legacy flags into their long form.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") {
			continue
		}
		name, _, _ := strings.Cut(a[1:], "=")
		if slices.Contains(legacyFlags, name) {
			out[i] = "-" + a
		}
	}

	return out
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uplcp <problem-file>",
		Short: "Partition the parameter interval of a uni-parametric LCP into invariancy regions",
		Long: `uplcp reads an LCP, LP or QP instance whose data depend on one parameter x,
computes every invariancy region over the interval allowed by the
parameter-space restrictions, and writes them to the solution file.

Example:
  uplcp problem.txt -numThreads 4 -parStart T
  uplcp problem.txt --config run.yaml --output out.txt --metrics-file run.prom`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	f.StringVar(&opts.output, "output", config.DefaultOutput, "solution file")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	f.BoolVar(&opts.verbose, "verbose", false, "debug logging")
	f.Float64Var(&opts.epsilon, "epsilon", config.DefaultEpsilon, "do not partition intervals narrower than this")
	f.BoolVar(&opts.warmStart, "warm-start", false, "start subintervals from the parent region's basis")
	f.StringVar(&opts.parStart, config.FlagParStart, "F", "pre-split the interval among workers (T|F)")
	f.StringVar(&opts.showProgress, config.FlagShowProgress, "T", "log every processed interval (T|F)")
	f.StringVar(&opts.numThreads, config.FlagNumThreads, "", "number of workers (default: number of CPUs)")

	return cmd
}

func buildLogger(opts *rootOptions, runID string) (*zap.Logger, error) {
	if opts.logger != nil {
		return opts.logger.With(zap.String("run", runID)), nil
	}
	zc := zap.NewProductionConfig()
	if opts.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.With(zap.String("run", runID)), nil
}

// resolveConfig layers defaults, the config file and the flags that were set.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, logger *zap.Logger) (config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return config.Config{}, err
		}
	}

	f := cmd.Flags()
	legacy := map[string]string{
		config.FlagParStart:     opts.parStart,
		config.FlagShowProgress: opts.showProgress,
		config.FlagNumThreads:   opts.numThreads,
	}
	for _, name := range legacyFlags {
		if !f.Changed(name) {
			continue
		}
		if err := cfg.Apply(name, legacy[name], logger); err != nil {
			return config.Config{}, err
		}
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("epsilon") {
		cfg.Epsilon = opts.epsilon
	}
	if f.Changed("warm-start") {
		cfg.WarmStart = opts.warmStart
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, opts *rootOptions, path string) error {
	runID := uuid.NewString()
	logger, err := buildLogger(opts, runID)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(cmd, opts, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	start := time.Now()
	p, err := problem.LoadFile(path, problem.WithLogger(logger))
	if err != nil {
		return err
	}
	if cfg.ShowProgress {
		fmt.Fprintf(out, "Time to read problem: %ss\n", seconds(time.Since(start)))
	}
	if p.Numeric {
		logger.Warn(numericWarning)
	}

	var reg *prometheus.Registry
	popts := []partition.Option{
		partition.WithWorkers(cfg.NumThreads),
		partition.WithParallelStart(cfg.ParallelStart),
		partition.WithEpsilon(cfg.Epsilon),
		partition.WithLogger(logger),
		partition.WithProgress(cfg.ShowProgress),
		partition.WithWarmStart(cfg.WarmStart),
	}
	if opts.metricsFile != "" {
		reg = prometheus.NewRegistry()
		popts = append(popts, partition.WithMetrics(reg))
	}
	s, err := partition.New(crisscross.New(crisscross.WithLogger(logger)), p.Space, popts...)
	if err != nil {
		return err
	}

	res, err := s.Run(cmd.Context(), p.Tableau, p.Basis)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "Solution Computed. Elapsed Time: %ss\n", seconds(elapsed))

	n, err := report.WriteFile(cfg.Output, p, res.Regions(),
		report.WithRunID(runID),
		report.WithElapsed(elapsed))
	if err != nil {
		return err
	}
	if reg != nil {
		if err = prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	logger.Info("solution written",
		zap.String("output", cfg.Output),
		zap.Int("regions", n),
		zap.Int("workers", res.Workers),
		zap.Duration("elapsed", elapsed))
	fmt.Fprintf(out, "Number of intervals in the final partition: %d\n", n)

	return nil
}

// seconds rounds d to hundredths of a second.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(math.Round(d.Seconds()*100)/100, 'f', -1, 64)
}
