package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relAll(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestCollectSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vhd":             "",
		"b.VHDL":            "",
		"notes.txt":         "",
		"sub/c.vhd":         "",
		"build/gen.vhd":     "",
		"sim/top_tb.vhd":    "",
		"sim/deep/x_tb.vhd": "",
	})

	files, err := CollectSourceFiles(context.Background(), []string{root}, FileFilter{
		Exclude: []string{"build", "**/*_tb.vhd"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.vhd", "b.VHDL", "sub/c.vhd"}, relAll(t, root, files))
}

func TestCollectSourceFilesExplicitFileAndDedup(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.vhd": "", "cfg.txt": ""})

	files, err := CollectSourceFiles(context.Background(), []string{
		filepath.Join(root, "cfg.txt"),
		root,
		filepath.Join(root, "a.vhd"),
	}, FileFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.vhd", "cfg.txt"}, relAll(t, root, files))
}

func TestCollectSourceFilesCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.vhd": "", "b.cfg": ""})

	files, err := CollectSourceFiles(context.Background(), []string{root}, FileFilter{Extensions: []string{"cfg"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.cfg"}, relAll(t, root, files))
}

func TestCollectSourceFilesErrors(t *testing.T) {
	_, err := CollectSourceFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, FileFilter{})
	require.Error(t, err)

	_, err = CollectSourceFiles(context.Background(), []string{t.TempDir()}, FileFilter{Exclude: []string{"[x"}})
	require.ErrorContains(t, err, "invalid exclude pattern")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = CollectSourceFiles(ctx, []string{t.TempDir()}, FileFilter{})
	require.ErrorIs(t, err, context.Canceled)
}
