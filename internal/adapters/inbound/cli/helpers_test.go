package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/skillkraft/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const bundlesDir = "../../../../testdata/bundles"

// run executes the root command and returns stdout and the exit code.
func run(t *testing.T, args ...string) (string, int, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), cli.ExitCode(err), err
}

// copyBundle copies a fixture bundle into a temp dir so tests can write to it.
func copyBundle(t *testing.T, name string) string {
	t.Helper()
	src := filepath.Join(bundlesDir, name)
	dst := filepath.Join(t.TempDir(), name)
	err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)
	return dst
}
