// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the minimum width of an interval still worth partitioning.
	DefaultEpsilon = 1e-6

	// DefaultOutput is the solution file written next to the working directory.
	DefaultOutput = "Solution.txt"
)

// Legacy flag names, as typed after a single dash.
const (
	FlagParStart     = "parStart"
	FlagShowProgress = "showProgress"
	FlagNumThreads   = "numThreads"
)

// Config is the effective run configuration.
type Config struct {
	NumThreads    int     `yaml:"num_threads"`
	ParallelStart bool    `yaml:"parallel_start"`
	ShowProgress  bool    `yaml:"show_progress"`
	Epsilon       float64 `yaml:"epsilon"`
	Output        string  `yaml:"output"`
	WarmStart     bool    `yaml:"warm_start"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		NumThreads:   runtime.NumCPU(),
		ShowProgress: true,
		Epsilon:      DefaultEpsilon,
		Output:       DefaultOutput,
	}
}

// Load reads a YAML file over the defaults. Keys not present keep their
// default; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configErrorf(opLoad, err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults. An empty document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, configErrorf(opLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.NumThreads <= 0:
		return configErrorf(opValidate, fmt.Errorf("num_threads %d must be positive: %w", c.NumThreads, ErrInvalidConfig))
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return configErrorf(opValidate, fmt.Errorf("epsilon %v must be finite, non-negative: %w", c.Epsilon, ErrInvalidConfig))
	case strings.TrimSpace(c.Output) == "":
		return configErrorf(opValidate, fmt.Errorf("output must not be empty: %w", ErrInvalidConfig))
	}

	return nil
}

// ParseBoolFlag accepts "T" or "F" in any case.
func ParseBoolFlag(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T":
		return true, nil
	case "F":
		return false, nil
	}

	return false, fmt.Errorf("%q: %w", s, ErrInvalidFlag)
}

// Apply sets the legacy flag name (with or without its leading dash) to value.
// An unparsable value is logged at warn level and the current value is kept;
// only an unknown name is an error.
func (c *Config) Apply(name, value string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.TrimLeft(name, "-") {
	case FlagParStart:
		if v, err := ParseBoolFlag(value); err == nil {
			c.ParallelStart = v
		} else {
			warnInvalid(logger, FlagParStart, c.ParallelStart, "T and F")
		}
	case FlagShowProgress:
		if v, err := ParseBoolFlag(value); err == nil {
			c.ShowProgress = v
		} else {
			warnInvalid(logger, FlagShowProgress, c.ShowProgress, "T and F")
		}
	case FlagNumThreads:
		if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
			c.NumThreads = v
		} else {
			warnInvalid(logger, FlagNumThreads, c.NumThreads, "positive integers")
		}
	default:
		return configErrorf(opApply, fmt.Errorf("unknown flag %q: %w", name, ErrInvalidFlag))
	}

	return nil
}

func warnInvalid(logger *zap.Logger, flag string, current any, valid string) {
	logger.Warn(fmt.Sprintf("Invalid value for flag '-%s', ignoring and leaving at default value of %v. "+
		"For future reference, valid values are %s.", flag, current, valid),
		zap.String("flag", flag))
}
