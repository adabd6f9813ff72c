package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteWordFile writes lines to a words.txt in a temp dir and returns its path
func WriteWordFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
	require.NoError(t, err, "failed to write word file")
	return path
}
