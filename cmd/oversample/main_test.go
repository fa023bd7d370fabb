package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	csvio "github.com/YuminosukeSato/imbalance/pkg/io/csv"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
	"github.com/YuminosukeSato/imbalance/pkg/log"
)

func writeInput(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("amount,merchant,class\n")
	for i := 0; i < 8; i++ {
		b.WriteString("1.5,m1,ok\n")
	}
	b.WriteString("9,m2,fraud\n")
	b.WriteString("8,m3,fraud\n")
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		log.SetLogger(nil)
		errors.SetZerologWarnFunc(nil)
	})
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResampleCommand(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.csv")
	chart := filepath.Join(t.TempDir(), "dist.png")

	stdout, _, err := execute(t, "resample",
		"--input", in, "--output", out,
		"--props", "merchant", "--seed", "3", "--plot", chart)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(stdout), "class distribution")
	assert.Contains(t, stdout, "+6")

	tbl, err := csvio.NewReader(csvio.WithPropertyColumns("merchant")).ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 16, tbl.Len())

	fraud := 0
	for i, label := range tbl.Labels {
		if label == "fraud" {
			fraud++
			assert.NotEqual(t, "m1", tbl.Props["merchant"][i])
			assert.NotEqual(t, 1.5, tbl.X.At(i, 0))
		}
	}
	assert.Equal(t, 8, fraud)

	info, err := os.Stat(chart)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestResampleCommandReproducible(t *testing.T) {
	in := writeInput(t)
	dir := t.TempDir()

	for _, name := range []string{"a.csv", "b.csv"} {
		_, _, err := execute(t, "resample", "-i", in, "-o", filepath.Join(dir, name),
			"--props", "merchant", "--seed", "11", "--ratio", "0.5")
		require.NoError(t, err)
	}
	a, err := os.ReadFile(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.csv"))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, 1+8+4, strings.Count(string(a), "\n"))
}

func TestPlanCommand(t *testing.T) {
	in := writeInput(t)

	stdout, _, err := execute(t, "plan", "--input", in, "--ratios", "ok=1,fraud=0.5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "majority: ok (8)")
	assert.Contains(t, stdout, "plan: fraud:+2")
}

func TestPlanIgnoresFeatureColumns(t *testing.T) {
	in := writeInput(t)

	// merchant is text; plan never parses it as a feature.
	stdout, _, err := execute(t, "plan", "--input", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "plan: fraud:+6")

	_, _, err = execute(t, "plan", "--input", in, "--props", "country")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "country")
}

func TestResampleRequiresNumericFeatures(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	_, _, err := execute(t, "resample", "-i", in, "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "merchant"`)
	assert.Contains(t, err.Error(), "not a number")
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	in := writeInput(t)
	cfgPath := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ratio: 0.5\nlabel_column: class\nlog_format: console\n"), 0o600))

	stdout, _, err := execute(t, "plan", "--config", cfgPath, "--input", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "plan: fraud:+2")

	stdout, _, err = execute(t, "plan", "--config", cfgPath, "--input", in, "--ratio", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plan: fraud:+6")
}

func TestCommandErrors(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "invalid ratio", args: []string{"resample", "-i", in, "-o", out, "--ratio", "1.5"}, want: "ratio"},
		{name: "bad ratios list", args: []string{"plan", "-i", in, "--ratios", "fraud"}, want: "label=ratio"},
		{name: "exclusive ratio flags", args: []string{"plan", "-i", in, "--ratio", "1", "--ratios", "ok=1"}, want: "ratio"},
		// The input does not exist: the method is rejected before any data is read.
		{name: "unknown method", args: []string{"plan", "-i", filepath.Join(t.TempDir(), "none.csv"), "--method", "smote"}, want: "unknown resampler"},
		{name: "unknown method on resample", args: []string{"resample", "-i", filepath.Join(t.TempDir(), "none.csv"), "-o", out, "--method", "smote"}, want: "unknown resampler"},
		{name: "missing label", args: []string{"plan", "-i", in, "--label", "nope"}, want: "label"},
		{name: "missing input", args: []string{"plan", "-i", filepath.Join(t.TempDir(), "none.csv")}, want: "none.csv"},
		{name: "bad log level", args: []string{"plan", "-i", in, "--log-level", "loud"}, want: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed runs must not write output")
}
