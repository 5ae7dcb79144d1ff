package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWidthFallsBackToColumns(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	assert.Equal(t, 132, Width(regularFile(t)))
}

func TestWidthDefault(t *testing.T) {
	for _, cols := range []string{"", "wide", "-5", "0"} {
		t.Setenv("COLUMNS", cols)
		assert.Equal(t, DefaultWidth, Width(regularFile(t), nil), "COLUMNS=%q", cols)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.False(t, IsTerminal(regularFile(t)))
}
