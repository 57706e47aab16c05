package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/convert"
	"github.com/filingworks/filing-converter/internal/jurisdiction"
	"github.com/filingworks/filing-converter/internal/workbook"
)

func TestRunConvertsDirectory(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(srcDir, "out")
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("A,B\nC,D\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b.txt"), []byte("E,F,G\n"), 0o644))
	// Empty file: extraction fails, the run continues.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "bad.txt"), nil, 0o644))
	// Non-matching extension is never picked up.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.md"), []byte("x"), 0o644))

	runner := NewRunner(convert.NewService(jurisdiction.DefaultRegistry(), 0, nil), nil)
	summaries, stats, err := runner.Run(context.Background(), "PA", srcDir, "*.txt", outDir)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 2, stats.Converted)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, summaries, 2)

	for _, s := range summaries {
		data, err := os.ReadFile(s.OutputPath)
		require.NoError(t, err)
		tables, err := workbook.ReadXLSX(data)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, s.Rows, len(tables[0].Records))
	}
}

func TestRunNoMatches(t *testing.T) {
	srcDir := t.TempDir()
	runner := NewRunner(convert.NewService(jurisdiction.DefaultRegistry(), 0, nil), nil)
	_, _, err := runner.Run(context.Background(), "PA", srcDir, "*.txt", filepath.Join(srcDir, "out"))
	require.Error(t, err)
}

func TestRunUnknownJurisdictionFailsPerFile(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("A,B\n"), 0o644))

	runner := NewRunner(convert.NewService(jurisdiction.DefaultRegistry(), 0, nil), nil)
	summaries, stats, err := runner.Run(context.Background(), "XX", srcDir, "*.txt", filepath.Join(srcDir, "out"))
	require.NoError(t, err, "per-file failures do not abort the run")
	assert.Empty(t, summaries)
	assert.Equal(t, 1, stats.Failed)
}
