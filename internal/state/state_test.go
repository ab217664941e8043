package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskcull/internal/config"
	"diskcull/internal/domain"
)

func fixtureState() *State {
	appState := NewState(config.DefaultConfig())

	root := &domain.FileNode{Path: "/r", Name: "r", IsDir: true, SizeBytes: 18}
	result := domain.NewScanResult(root)

	docs := &domain.FileNode{Path: "/r/docs", Name: "docs", IsDir: true, SizeBytes: 15}
	big := &domain.FileNode{Path: "/r/docs/big.pdf", Name: "big.pdf", SizeBytes: 10, Ext: ".pdf"}
	note := &domain.FileNode{Path: "/r/docs/note.txt", Name: "note.txt", SizeBytes: 5, Ext: ".txt"}
	tiny := &domain.FileNode{Path: "/r/tiny.log", Name: "tiny.log", SizeBytes: 3, Ext: ".log"}
	empty := &domain.FileNode{Path: "/r/empty", Name: "empty", IsDir: true}

	root.AddChild(docs)
	result.Add(docs)
	docs.AddChild(big)
	result.Add(big)
	docs.AddChild(note)
	result.Add(note)
	root.AddChild(tiny)
	result.Add(tiny)
	root.AddChild(empty)
	result.Add(empty)
	result.TotalSizeBytes = 18

	appState.SetScan(result, domain.CategoryLists{})
	return appState
}

func TestToggleSelectionSubtree(t *testing.T) {
	appState := fixtureState()

	checked := appState.ToggleSelection("/r/docs")

	assert.True(t, checked)
	assert.True(t, appState.node("/r/docs").Selected)
	assert.True(t, appState.node("/r/docs/big.pdf").Selected)
	assert.True(t, appState.node("/r/docs/note.txt").Selected)
	assert.False(t, appState.node("/r/tiny.log").Selected)
}

func TestUncheckChildClearsAncestors(t *testing.T) {
	appState := fixtureState()
	appState.ToggleSelection("/r/docs")

	appState.ToggleSelection("/r/docs/note.txt")

	assert.False(t, appState.node("/r/docs/note.txt").Selected)
	assert.False(t, appState.node("/r/docs").Selected)
	assert.True(t, appState.node("/r/docs/big.pdf").Selected)
}

func TestSelectionSummary(t *testing.T) {
	appState := fixtureState()

	appState.ToggleSelection("/r/docs")
	count, size := appState.SelectionSummary()
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(15), size)

	appState.ToggleSelection("/r/tiny.log")
	count, size = appState.SelectionSummary()
	assert.Equal(t, 4, count)
	assert.Equal(t, int64(18), size)
}

func TestSelectedNodesSorted(t *testing.T) {
	appState := fixtureState()
	appState.ToggleSelection("/r/tiny.log")
	appState.ToggleSelection("/r/docs/big.pdf")

	nodes := appState.SelectedNodes()

	require.Len(t, nodes, 2)
	assert.Equal(t, "/r/docs/big.pdf", nodes[0].Path)
	assert.Equal(t, "/r/tiny.log", nodes[1].Path)
}

func TestSetScanPrunesExpanded(t *testing.T) {
	appState := fixtureState()
	appState.ToggleExpanded("/r/docs")
	require.True(t, appState.IsExpanded("/r/docs"))

	replacement := domain.NewScanResult(&domain.FileNode{Path: "/r", Name: "r", IsDir: true})
	appState.SetScan(replacement, domain.CategoryLists{})

	assert.False(t, appState.IsExpanded("/r/docs"))
	assert.True(t, appState.IsExpanded("/r"))
}

func TestVisibleNodesExpansion(t *testing.T) {
	appState := fixtureState()

	visible := appState.VisibleNodes()
	require.Len(t, visible, 4)
	assert.Equal(t, "/r", visible[0].Node.Path)
	assert.Equal(t, "/r/docs", visible[1].Node.Path)
	assert.Equal(t, 1, visible[1].Depth)
	assert.Equal(t, "/r/empty", visible[2].Node.Path)
	assert.Equal(t, "/r/tiny.log", visible[3].Node.Path)

	appState.ToggleExpanded("/r/docs")
	visible = appState.VisibleNodes()
	require.Len(t, visible, 6)
	assert.Equal(t, "/r/docs/big.pdf", visible[2].Node.Path)
	assert.Equal(t, 2, visible[2].Depth)
	assert.Equal(t, "/r/docs/note.txt", visible[3].Node.Path)
}

func TestVisibleNodesSearch(t *testing.T) {
	appState := fixtureState()
	appState.SearchQuery = "big"

	visible := appState.VisibleNodes()
	require.Len(t, visible, 2)
	assert.Equal(t, "/r/docs", visible[1].Node.Path)

	appState.ToggleExpanded("/r/docs")
	visible = appState.VisibleNodes()
	require.Len(t, visible, 3)
	assert.Equal(t, "/r/docs/big.pdf", visible[2].Node.Path)
}

func TestVisibleNodesExtFilter(t *testing.T) {
	appState := fixtureState()
	appState.ToggleExpanded("/r/docs")
	appState.FilterExt = ".pdf"

	visible := appState.VisibleNodes()

	require.Len(t, visible, 3)
	assert.Equal(t, "/r/docs/big.pdf", visible[2].Node.Path)
}

func TestVisibleNodesMinSize(t *testing.T) {
	appState := fixtureState()
	appState.ToggleExpanded("/r/docs")
	appState.MinSizeBytes = 6

	visible := appState.VisibleNodes()

	require.Len(t, visible, 3)
	assert.Equal(t, "/r/docs", visible[1].Node.Path)
	assert.Equal(t, "/r/docs/big.pdf", visible[2].Node.Path)
}

func TestCurrentNode(t *testing.T) {
	appState := fixtureState()

	appState.Cursor = 1
	node := appState.CurrentNode()
	require.NotNil(t, node)
	assert.Equal(t, "/r/docs", node.Path)

	appState.Cursor = 99
	assert.Nil(t, appState.CurrentNode())
}

func TestToggleSortModeCycle(t *testing.T) {
	appState := NewState(config.DefaultConfig())

	assert.Equal(t, domain.SortByName, appState.ToggleSortMode())
	assert.Equal(t, domain.SortByMod, appState.ToggleSortMode())
	assert.Equal(t, domain.SortBySize, appState.ToggleSortMode())
}

func TestClearResetsScanData(t *testing.T) {
	appState := fixtureState()
	appState.SearchQuery = "x"
	appState.MinSizeBytes = 5

	appState.ClearFilters()
	assert.Empty(t, appState.SearchQuery)
	assert.Zero(t, appState.MinSizeBytes)

	appState.Clear()
	assert.Nil(t, appState.Result)
	assert.Nil(t, appState.VisibleNodes())
}
