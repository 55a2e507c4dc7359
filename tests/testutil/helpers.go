// Package testutil locates the repository and its fixtures for the e2e and
// integration suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the module root, two levels above the test package.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Fixture returns the absolute path of a file under fixtures/ and fails the
// test when it does not exist.
func Fixture(t *testing.T, elem ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{RepoRoot(t), "fixtures"}, elem...)...)
	require.FileExists(t, path)
	return path
}
