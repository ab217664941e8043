package services

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskcull/internal/domain"
)

func TestDeletePermanent(t *testing.T) {
	root := t.TempDir()
	victim := filepath.Join(root, "victim.txt")
	writeFile(t, victim, "12345")
	bundle := filepath.Join(root, "bundle")
	require.NoError(t, os.Mkdir(bundle, 0o755))
	writeFile(t, filepath.Join(bundle, "inner.txt"), "abc")

	fileNode := &domain.FileNode{Path: victim, Name: "victim.txt", SizeBytes: 5}
	dirNode := &domain.FileNode{Path: bundle, Name: "bundle", IsDir: true, SizeBytes: 3}

	result, err := NewFSActions().Execute(context.Background(), DeleteRequest{
		Nodes:     []*domain.FileNode{fileNode, dirNode},
		Permanent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesDeleted)
	assert.Equal(t, 1, result.DirsDeleted)
	assert.Equal(t, int64(8), result.TotalSizeFreed)
	assert.Equal(t, "delete complete", result.Message)
	assert.Empty(t, result.Errors)
	assert.NoFileExists(t, victim)
	assert.NoDirExists(t, bundle)
}

func TestDeleteResolvesNesting(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "parent")
	require.NoError(t, os.Mkdir(parent, 0o755))
	child := filepath.Join(parent, "child.txt")
	writeFile(t, child, "abc")

	parentNode := &domain.FileNode{Path: parent, Name: "parent", IsDir: true, SizeBytes: 3}
	childNode := &domain.FileNode{Path: child, Name: "child.txt", SizeBytes: 3}
	parentNode.AddChild(childNode)

	result, err := NewFSActions().Execute(context.Background(), DeleteRequest{
		Nodes:     []*domain.FileNode{childNode, parentNode},
		Permanent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.FilesDeleted)
	assert.Equal(t, 1, result.DirsDeleted)
	assert.Equal(t, int64(3), result.TotalSizeFreed)
	assert.Equal(t, 0, result.Skipped)
	assert.NoDirExists(t, parent)
}

func TestTopLevelNodesFilesFirst(t *testing.T) {
	dir := &domain.FileNode{Path: "/r/dir", Name: "dir", IsDir: true}
	file := &domain.FileNode{Path: "/r/z.txt", Name: "z.txt"}

	got := topLevelNodes([]*domain.FileNode{dir, file})

	require.Len(t, got, 2)
	assert.Equal(t, "/r/z.txt", got[0].Path)
	assert.Equal(t, "/r/dir", got[1].Path)
}

func TestDeleteVanishedNode(t *testing.T) {
	ghost := &domain.FileNode{Path: filepath.Join(t.TempDir(), "ghost.txt"), Name: "ghost.txt", SizeBytes: 7}

	result, err := NewFSActions().Execute(context.Background(), DeleteRequest{
		Nodes:     []*domain.FileNode{ghost},
		Permanent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.FilesDeleted)
	assert.Equal(t, int64(0), result.TotalSizeFreed)
	assert.Empty(t, result.Errors)
}

func TestDeleteToTrash(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("freedesktop trash layout is unix only")
	}
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	root := t.TempDir()
	victim := filepath.Join(root, "letter.txt")
	writeFile(t, victim, "dear")

	node := &domain.FileNode{Path: victim, Name: "letter.txt", SizeBytes: 4}
	result, err := NewFSActions().Execute(context.Background(), DeleteRequest{Nodes: []*domain.FileNode{node}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesDeleted)
	assert.NoFileExists(t, victim)
	assert.FileExists(t, filepath.Join(dataHome, "Trash", "files", "letter.txt"))

	info, err := os.ReadFile(filepath.Join(dataHome, "Trash", "info", "letter.txt.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), "Path="+victim)
	assert.Contains(t, string(info), "DeletionDate=")
}

func TestTrashNameCollision(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("freedesktop trash layout is unix only")
	}
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	root := t.TempDir()
	victim := filepath.Join(root, "letter.txt")
	writeFile(t, victim, "one")
	require.NoError(t, moveToTrash(victim))

	writeFile(t, victim, "two")
	require.NoError(t, moveToTrash(victim))

	assert.FileExists(t, filepath.Join(dataHome, "Trash", "files", "letter.txt"))
	assert.FileExists(t, filepath.Join(dataHome, "Trash", "files", "letter.txt.2"))
	assert.FileExists(t, filepath.Join(dataHome, "Trash", "info", "letter.txt.2.trashinfo"))
}

func TestDeleteEmptyRequest(t *testing.T) {
	_, err := NewFSActions().Execute(context.Background(), DeleteRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no nodes provided")
}

func TestDeleteCancelled(t *testing.T) {
	root := t.TempDir()
	victim := filepath.Join(root, "keep.txt")
	writeFile(t, victim, "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	node := &domain.FileNode{Path: victim, Name: "keep.txt", SizeBytes: 1}
	result, err := NewFSActions().Execute(ctx, DeleteRequest{Nodes: []*domain.FileNode{node}, Permanent: true})
	require.NoError(t, err)

	assert.Equal(t, "delete cancelled", result.Message)
	assert.FileExists(t, victim)
}

func TestDeleteReportsFailures(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on windows")
	}
	if os.Getuid() == 0 {
		t.Skip("running as root bypasses permission checks")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	victim := filepath.Join(locked, "pinned.txt")
	writeFile(t, victim, "x")
	require.NoError(t, os.Chmod(locked, 0o500))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	node := &domain.FileNode{Path: victim, Name: "pinned.txt", SizeBytes: 1}
	result, err := NewFSActions().Execute(context.Background(), DeleteRequest{
		Nodes:     []*domain.FileNode{node},
		Permanent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.FilesDeleted)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to delete")
	assert.Equal(t, "delete complete", result.Message)
	assert.FileExists(t, victim)
}
