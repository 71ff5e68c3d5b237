package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppendAndReadDescending(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "scores.txt"))

	for _, score := range []int{5, 12, 3} {
		require.NoError(t, l.Append(score))
	}

	scores, err := l.Scores()
	require.NoError(t, err)
	assert.Equal(t, []int{12, 5, 3}, scores)

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	assert.Equal(t, "5\n12\n3\n", string(data))
}

func TestLedgerTopLimitsResult(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "scores.txt"))

	for _, score := range []int{4, 9, 1, 7, 3, 8, 2, 6} {
		require.NoError(t, l.Append(score))
	}

	top, err := l.Top(5)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 4}, top)

	all, err := l.Top(50)
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestLedgerMissingFileIsEmpty(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "scores.txt"))

	scores, err := l.Scores()
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestLedgerSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\nabc\n\n10\n2.5\n 7 \n"), 0644))

	scores, err := NewLedger(path).Scores()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 7, 4}, scores)
}

func TestLedgerAppendToUnwritablePath(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "missing", "scores.txt"))

	assert.ErrorIs(t, l.Append(1), ErrIO)
}
