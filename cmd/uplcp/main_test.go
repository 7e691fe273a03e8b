package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/uplcp/problem"
)

// runCLI executes the root command with an observed logger.
func runCLI(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	cmd := newRootCommand(&rootOptions{logger: zap.New(core)})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(normalizeArgs(args))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), logs, err
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	got := normalizeArgs([]string{
		"p.txt", "-numThreads", "4", "-parStart=T", "--output", "o.txt", "-showProgress", "F", "-x", "-3",
	})
	assert.Equal(t, []string{
		"p.txt", "--numThreads", "4", "--parStart=T", "--output", "o.txt", "--showProgress", "F", "-x", "-3",
	}, got)
}

func TestRun_WritesSolutionAndMetrics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "Solution.txt")
	metrics := filepath.Join(dir, "run.prom")
	out, logs, err := runCLI(t, "testdata/lcp_one.txt",
		"-numThreads", "1", "-parStart", "F", "--output", output, "--metrics-file", metrics)
	require.NoError(t, err)

	assert.Contains(t, out, "Solution Computed. Elapsed Time: ")
	assert.Contains(t, out, "Number of intervals in the final partition: 2")
	assert.Contains(t, out, "Time to read problem: ", "progress is on by default")
	assert.Equal(t, 2, logs.FilterMessage("processing interval").Len())

	sol, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(sol), "Valid over:\t0 <= x <= 5")
	assert.Contains(t, string(sol), "Valid over:\t5 <= x <= 10")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "uplcp_partition_tasks_created_total 2")
	assert.Contains(t, string(prom), `uplcp_partition_regions_total{kind="region"} 2`)

	// M carries no parameter in this instance.
	assert.Equal(t, 1, logs.FilterMessageSnippet("M matrix containing no parameters").Len())
	written := logs.FilterMessage("solution written").All()
	require.Len(t, written, 1)
	assert.Contains(t, written[0].ContextMap(), "run")
}

func TestRun_InvalidLegacyValueWarns(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "Solution.txt")
	_, logs, err := runCLI(t, "testdata/lcp_one.txt", "-numThreads", "zero", "-showProgress", "maybe", "--output", output)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Invalid value for flag '-numThreads'").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Invalid value for flag '-showProgress'").Len())
}

func TestRun_ProgressOff(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "Solution.txt")
	out, logs, err := runCLI(t, "testdata/lcp_one.txt", "-showProgress", "F", "--output", output)
	require.NoError(t, err)
	assert.NotContains(t, out, "Time to read problem")
	assert.Zero(t, logs.FilterMessage("processing interval").Len())
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "from-config.txt")
	cfg := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("num_threads: 1\noutput: "+output+"\n"), 0o600))

	out, _, err := runCLI(t, "testdata/lcp_one.txt", "--config", cfg, "-showProgress", "T")
	require.NoError(t, err)
	assert.Contains(t, out, "Time to read problem: ")
	assert.FileExists(t, output)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t)
	require.Error(t, err)

	_, _, err = runCLI(t, "testdata/absent.txt")
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("LCP\nM_DATA\n1, 1, 0, 1\n"), 0o600))
	_, _, err = runCLI(t, bad)
	require.ErrorIs(t, err, problem.ErrMalformed)

	_, _, err = runCLI(t, "testdata/lcp_one.txt", "--epsilon", "-1")
	require.Error(t, err)
}
