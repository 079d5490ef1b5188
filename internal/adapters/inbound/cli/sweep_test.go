package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_Text(t *testing.T) {
	out, code, err := run(t, "sweep", bundlesDir)
	require.Error(t, err)
	assert.Equal(t, domain.ExitFailed, code)
	assert.Contains(t, out, "perfect-skill")
	assert.Contains(t, out, "broken-skill")
	assert.Contains(t, out, "2 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "0 critical")
}

func TestSweep_JSON(t *testing.T) {
	out, _, _ := run(t, "sweep", bundlesDir, "--format", "json", "--mode", "release", "--workers", "1")

	var sweep domain.SweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &sweep))
	assert.Equal(t, domain.ModeRelease, sweep.Mode)
	assert.Len(t, sweep.Bundles, 3)
	assert.Equal(t, 1, sweep.Passed)
	assert.Equal(t, 2, sweep.Failed)
}

func TestSweep_EmptyRootPasses(t *testing.T) {
	out, code, err := run(t, "sweep", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.ExitPassed, code)
	assert.Contains(t, out, "No bundles found.")
}

func TestSweep_MissingRootIsCritical(t *testing.T) {
	_, code, _ := run(t, "sweep", bundlesDir+"/nope")
	assert.Equal(t, domain.ExitCritical, code)
}
