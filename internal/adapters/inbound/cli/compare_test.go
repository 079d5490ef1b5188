package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveReports(t *testing.T) (perfect, warning string) {
	t.Helper()
	dir := t.TempDir()
	perfect = filepath.Join(dir, "perfect.json")
	warning = filepath.Join(dir, "warning.json")
	_, _, err := run(t, "evaluate", bundlesDir+"/perfect-skill", "-o", perfect)
	require.NoError(t, err)
	_, _, err = run(t, "evaluate", bundlesDir+"/warning-skill", "-o", warning)
	require.NoError(t, err)
	return perfect, warning
}

func TestCompare_ShowsIntroducedIssues(t *testing.T) {
	perfect, warning := saveReports(t)

	out, code, err := run(t, "compare", perfect, warning)
	require.NoError(t, err, "regressions only fail with --fail-on-regression")
	assert.Equal(t, domain.ExitPassed, code)
	assert.Contains(t, out, "Introduced (2)")
	assert.Contains(t, out, "REGRESSED")
}

func TestCompare_FailOnRegression(t *testing.T) {
	perfect, warning := saveReports(t)

	_, code, err := run(t, "compare", perfect, warning, "--fail-on-regression")
	require.Error(t, err)
	assert.Equal(t, domain.ExitFailed, code)

	_, code, err = run(t, "compare", warning, perfect, "--fail-on-regression")
	require.NoError(t, err)
	assert.Equal(t, domain.ExitPassed, code)
}

func TestCompare_JSON(t *testing.T) {
	perfect, warning := saveReports(t)

	out, _, err := run(t, "compare", warning, perfect, "--format", "json")
	require.NoError(t, err)

	var diff domain.ReportDiff
	require.NoError(t, json.Unmarshal([]byte(out), &diff))
	assert.Equal(t, "perfect-skill", diff.Bundle)
	assert.Empty(t, diff.Introduced)
	assert.Len(t, diff.Resolved, 2)
	assert.Len(t, diff.Metrics, len(domain.ValidMetrics))
}

func TestCompare_Errors(t *testing.T) {
	perfect, _ := saveReports(t)
	garbage := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("not json"), 0o644))

	_, code, _ := run(t, "compare", perfect)
	assert.Equal(t, domain.ExitCritical, code, "wrong argument count")

	_, code, err := run(t, "compare", perfect, filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, domain.ExitCritical, code)
	assert.Contains(t, err.Error(), "does not exist")

	_, code, _ = run(t, "compare", garbage, perfect)
	assert.Equal(t, domain.ExitCritical, code)
}
