package services

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanBuildsTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	writeFile(t, filepath.Join(root, "sub", "b.log"), "abc")
	require.NoError(t, os.Mkdir(filepath.Join(root, "emptydir"), 0o755))

	outcome, err := NewFSScanner().Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)

	result := outcome.Result
	require.NotNil(t, result)
	require.NotNil(t, result.Root)
	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 3, result.TotalDirs)
	assert.Equal(t, int64(8), result.TotalSizeBytes)
	assert.Equal(t, int64(8), result.Root.SizeBytes)
	assert.Empty(t, result.ScanErrors)

	rootPath := result.Root.Path
	sub := result.AllNodes[filepath.Join(rootPath, "sub")]
	require.NotNil(t, sub)
	assert.True(t, sub.IsDir)
	assert.Equal(t, int64(3), sub.SizeBytes)
	assert.Equal(t, result.Root, sub.Parent)

	b := result.AllNodes[filepath.Join(rootPath, "sub", "b.log")]
	require.NotNil(t, b)
	assert.Equal(t, ".log", b.Ext)
	assert.Equal(t, int64(3), b.SizeBytes)
	assert.Equal(t, sub, b.Parent)

	assert.Equal(t, []string{
		filepath.Join(rootPath, "a.txt"),
		filepath.Join(rootPath, "sub", "b.log"),
	}, paths(outcome.Lists.AllFiles))
	assert.Equal(t, []string{filepath.Join(rootPath, "emptydir")}, paths(outcome.Lists.ZeroEmpty))
}

func TestScanRootValidation(t *testing.T) {
	scanner := NewFSScanner()

	_, err := scanner.Scan(context.Background(), ScanRequest{RootPath: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access root path")

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "x")
	_, err = scanner.Scan(context.Background(), ScanRequest{RootPath: file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid directory")
}

func TestScanCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFSScanner().Scan(ctx, ScanRequest{RootPath: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	target := filepath.Join(root, "real.txt")
	writeFile(t, target, "content")
	require.NoError(t, os.Mkdir(filepath.Join(root, "realdir"), 0o755))
	writeFile(t, filepath.Join(root, "realdir", "inner.txt"), "abcd")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "realdir"), filepath.Join(root, "linkdir")))

	scanner := NewFSScanner()

	outcome, err := scanner.Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)
	rootPath := outcome.Result.Root.Path
	assert.Nil(t, outcome.Result.AllNodes[filepath.Join(rootPath, "link.txt")])
	assert.Nil(t, outcome.Result.AllNodes[filepath.Join(rootPath, "linkdir")])
	assert.Equal(t, 2, outcome.Result.TotalFiles)

	outcome, err = scanner.Scan(context.Background(), ScanRequest{RootPath: root, IncludeSymlinks: true})
	require.NoError(t, err)
	rootPath = outcome.Result.Root.Path
	link := outcome.Result.AllNodes[filepath.Join(rootPath, "link.txt")]
	require.NotNil(t, link)
	assert.False(t, link.IsDir)
	linkDir := outcome.Result.AllNodes[filepath.Join(rootPath, "linkdir")]
	require.NotNil(t, linkDir)
	assert.False(t, linkDir.IsDir)
	assert.Nil(t, outcome.Result.AllNodes[filepath.Join(rootPath, "linkdir", "inner.txt")])
	assert.Equal(t, 4, outcome.Result.TotalFiles)
}

func TestScanUnreadableDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on windows")
	}
	if os.Getuid() == 0 {
		t.Skip("running as root bypasses permission checks")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeFile(t, filepath.Join(locked, "hidden.txt"), "secret")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	outcome, err := NewFSScanner().Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)

	rootPath := outcome.Result.Root.Path
	node := outcome.Result.AllNodes[filepath.Join(rootPath, "locked")]
	require.NotNil(t, node)
	assert.Contains(t, node.ScanError, "permission denied")
	assert.Empty(t, node.Children)
	assert.Equal(t, 0, outcome.Result.TotalFiles)
	require.Len(t, outcome.Result.ScanErrors, 1)
	assert.Contains(t, outcome.Result.ScanErrors[0], "cannot scan directory")
}

func TestScanPhases(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "x")

	scanner := NewFSScanner()
	_, err := scanner.Scan(context.Background(), ScanRequest{RootPath: root})
	require.NoError(t, err)

	var phases []string
	for msg := range scanner.Progress() {
		if msg.Phase != "" {
			phases = append(phases, msg.Phase)
		}
	}
	assert.Equal(t, []string{"Calculating folder sizes...", "Filtering results..."}, phases)
}
