package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "skillkraft-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "skillkraft")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/skillkraft")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/bundles", name))
	return abs
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	var stderr []byte
	stdout, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			stderr = exitErr.Stderr
		}
	}
	return string(stdout), string(stderr), exitCode
}

// --- Evaluate Tests ---

func TestE2E_EvaluateExitCodes(t *testing.T) {
	tests := []struct {
		bundle string
		mode   string
		code   int
	}{
		{"perfect-skill", "quick", 0},
		{"perfect-skill", "full", 0},
		{"perfect-skill", "release", 0},
		{"broken-skill", "quick", 1},
		{"broken-skill", "full", 1},
		{"warning-skill", "full", 0},
		{"warning-skill", "release", 1},
		{"does-not-exist", "full", 2},
	}
	for _, tt := range tests {
		t.Run(tt.bundle+"/"+tt.mode, func(t *testing.T) {
			_, _, code := run(t, "evaluate", fixturePath(tt.bundle), "--mode", tt.mode)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestE2E_EvaluateText(t *testing.T) {
	out, _, code := run(t, "evaluate", fixturePath("perfect-skill"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "skillkraft")
	assert.Contains(t, out, "perfect-skill")
	assert.Contains(t, out, "PASSED")
}

func TestE2E_EvaluateJSON(t *testing.T) {
	out, _, code := run(t, "evaluate", fixturePath("broken-skill"), "--format", "json")
	assert.Equal(t, 1, code)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report), "stdout must be pure JSON")
	assert.False(t, report.Passed)
	assert.Equal(t, 2, report.Counts.Error)
	require.NotNil(t, report.Overall)
	assert.True(t, *report.Overall >= 0 && *report.Overall <= 100)
}

func TestE2E_CriticalErrorOnStderr(t *testing.T) {
	out, stderr, code := run(t, "evaluate", fixturePath("does-not-exist"), "--format", "json")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Error:")
}

func TestE2E_BadFlagIsCritical(t *testing.T) {
	_, _, code := run(t, "evaluate", "--no-such-flag")
	assert.Equal(t, 2, code)
}

// --- Compare Tests ---

func TestE2E_Compare(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	cur := filepath.Join(dir, "cur.json")
	_, _, code := run(t, "evaluate", fixturePath("perfect-skill"), "-o", base)
	require.Equal(t, 0, code)
	_, _, code = run(t, "evaluate", fixturePath("broken-skill"), "-o", cur)
	require.Equal(t, 1, code)

	out, _, code := run(t, "compare", base, cur, "--format", "json", "--fail-on-regression")
	assert.Equal(t, 1, code)

	var diff domain.ReportDiff
	require.NoError(t, json.Unmarshal([]byte(out), &diff))
	assert.True(t, diff.Regressed())
	assert.Len(t, diff.Introduced, 2)
}

// --- Sweep Tests ---

func TestE2E_Sweep(t *testing.T) {
	out, _, code := run(t, "sweep", fixturePath(""), "--format", "json")
	assert.Equal(t, 1, code)

	var sweep domain.SweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &sweep))
	assert.Len(t, sweep.Bundles, 3)
	assert.Equal(t, 2, sweep.Passed)
	assert.Equal(t, 1, sweep.Failed)
}

// --- Misc Tests ---

func TestE2E_Schema(t *testing.T) {
	out, _, code := run(t, "schema")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "$schema")
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "skillkraft")
}
