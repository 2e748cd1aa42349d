package driver

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/ctxlog"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/observ"
)

func TestFormatPathsRewritesFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"clean.vhd": canonicalSource,
		"messy.vhd": messySource,
	})
	messy := filepath.Join(root, "messy.vhd")
	require.NoError(t, os.Chmod(messy, 0o600))

	sink := &recordingSink{}
	timer := observ.NewTimer()
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Jobs: 2, Progress: sink, Timer: timer})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(root, "clean.vhd"), results[0].Path)
	assert.False(t, results[0].Changed)
	assert.True(t, results[1].Changed)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Nil(t, r.Formatted)
	}

	assert.Equal(t, canonicalSource, readFile(t, messy))
	info, err := os.Stat(messy)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	assert.Equal(t, []Status{StatusQueued, StatusWorking, StatusWorking, StatusWorking, StatusDone}, sink.statuses(messy))
	names := make([]string, 0)
	for _, p := range timer.Report().Phases {
		names = append(names, p.Name)
	}
	assert.Subset(t, names, []string{"collect", "parse", "format", "write"})
}

func TestFormatPathsCheckLeavesFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"messy.vhd": messySource})
	path := filepath.Join(root, "messy.vhd")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Changed)
	assert.Equal(t, canonicalSource, string(results[0].Formatted))
	assert.Equal(t, messySource, readFile(t, path))

	diff, err := Diff(results[0])
	require.NoError(t, err)
	assert.Contains(t, diff, "--- "+path)
	assert.Contains(t, diff, "+++ "+path+" (formatted)")
	assert.Contains(t, diff, "+            use entity work.impl(arch);")
}

func TestFormatPathsStdoutKeepsContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.vhd": canonicalSource})

	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Stdout: true, Verify: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Changed)
	assert.Equal(t, canonicalSource, string(results[0].Formatted))

	diff, err := Diff(results[0])
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestFormatPathsParseErrors(t *testing.T) {
	root := t.TempDir()
	broken := "configuration cfg of top is\n    for rtl\nend configuration;\n"
	writeTree(t, root, map[string]string{"broken.vhd": broken})
	path := filepath.Join(root, "broken.vhd")

	sink := &recordingSink{}
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Progress: sink})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, ErrParseErrors)
	require.NotNil(t, results[0].Bag)
	assert.True(t, results[0].Bag.HasErrors())
	assert.NotNil(t, results[0].FileSet)
	assert.Equal(t, broken, readFile(t, path))
	assert.Equal(t, StatusError, sink.statuses(path)[len(sink.statuses(path))-1])
}

func TestFormatPathsUnsupportedConstruct(t *testing.T) {
	root := t.TempDir()
	src := "configuration cfg of top is\n    for rtl\n        use work.pkg.all;\n    end for;\nend configuration cfg;\n"
	writeTree(t, root, map[string]string{"a.vhd": src})

	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, format.ErrUnsupportedConstruct)
	assert.Equal(t, src, readFile(t, filepath.Join(root, "a.vhd")))
}

func TestFormatPathsNoFiles(t *testing.T) {
	_, err := FormatPaths(context.Background(), []string{t.TempDir()}, FormatOptions{})
	require.ErrorIs(t, err, ErrNoSourceFiles)
}

func TestFormatPathsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FormatPaths(ctx, []string{t.TempDir()}, FormatOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatUsesCache(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"messy.vhd": messySource})
	path := filepath.Join(root, "messy.vhd")
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	first, err := FormatFiles(ctx, []string{path}, FormatOptions{Check: true, Cache: cache})
	require.NoError(t, err)
	require.False(t, first[0].Cached)
	assert.True(t, first[0].Changed)

	sink := &recordingSink{}
	second, err := FormatFiles(ctx, []string{path}, FormatOptions{Check: true, Cache: cache, Progress: sink})
	require.NoError(t, err)
	assert.True(t, second[0].Cached)
	assert.True(t, second[0].Changed)
	assert.Equal(t, canonicalSource, string(second[0].Formatted))
	statuses := sink.statuses(path)
	assert.Equal(t, StatusCached, statuses[len(statuses)-1])

	// rewriting from the cache produces the same file
	third, err := FormatFiles(ctx, []string{path}, FormatOptions{Cache: cache})
	require.NoError(t, err)
	assert.True(t, third[0].Cached)
	assert.Equal(t, canonicalSource, readFile(t, path))

	// a different indent width is a different key
	fourth, err := FormatFiles(ctx, []string{path}, FormatOptions{Check: true, Cache: cache, Options: format.Options{IndentWidth: 2}})
	require.NoError(t, err)
	assert.False(t, fourth[0].Cached)
	assert.True(t, fourth[0].Changed)

	assert.True(t, strings.Contains(logs.String(), "cached=true"))
}

func TestFormatSource(t *testing.T) {
	r := FormatSource("<stdin>", []byte(messySource), FormatOptions{Verify: true})
	require.NoError(t, r.Err)
	assert.True(t, r.Changed)
	assert.Equal(t, canonicalSource, string(r.Formatted))

	r = FormatSource("<stdin>", []byte("configuration c of e is\n"), FormatOptions{})
	require.ErrorIs(t, r.Err, ErrParseErrors)
	assert.True(t, r.Bag.HasErrors())
}
