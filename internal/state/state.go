package state

import (
	"path/filepath"
	"sort"
	"strings"

	"diskcull/internal/config"
	"diskcull/internal/domain"
)

type Preferences struct {
	SortMode domain.SortMode
	Theme    string
}

type State struct {
	Path         string
	Cursor       int
	Expanded     map[string]bool
	Prefs        Preferences
	Result       *domain.ScanResult
	Lists        domain.CategoryLists
	SearchQuery  string
	FilterExt    string
	MinSizeBytes int64
}

func NewState(cfg config.Config) *State {
	return &State{
		Path:     cfg.Path,
		Cursor:   0,
		Expanded: make(map[string]bool),
		Prefs: Preferences{
			SortMode: cfg.SortMode,
			Theme:    cfg.Theme,
		},
	}
}

func (appState *State) SetScan(result *domain.ScanResult, lists domain.CategoryLists) {
	appState.Result = result
	appState.Lists = lists
	appState.Cursor = 0

	filteredExpanded := make(map[string]bool, len(appState.Expanded))
	for path := range appState.Expanded {
		if _, ok := result.AllNodes[path]; ok {
			filteredExpanded[path] = true
		}
	}
	appState.Expanded = filteredExpanded
	if result.Root != nil {
		appState.Expanded[result.Root.Path] = true
	}
}

func (appState *State) Clear() {
	appState.Result = nil
	appState.Lists = domain.CategoryLists{}
	appState.Cursor = 0
	appState.Expanded = make(map[string]bool)
}

func (appState *State) node(path string) *domain.FileNode {
	if appState.Result == nil {
		return nil
	}
	return appState.Result.AllNodes[path]
}

// ToggleSelection flips a node and its whole subtree together.
// Unchecking anything also unchecks every ancestor, since a parent can
// no longer claim to cover all of its contents.
func (appState *State) ToggleSelection(path string) bool {
	node := appState.node(path)
	if node == nil {
		return false
	}
	value := !node.Selected
	applySelection(node, value)
	if !value {
		for parent := node.Parent; parent != nil; parent = parent.Parent {
			parent.Selected = false
		}
	}
	return value
}

func applySelection(node *domain.FileNode, value bool) {
	node.Selected = value
	for _, child := range node.Children {
		applySelection(child, value)
	}
}

// SelectionSummary counts every selected node but sizes only the
// top-level ones, so nested selections are not double counted.
func (appState *State) SelectionSummary() (int, int64) {
	if appState.Result == nil {
		return 0, 0
	}
	var count int
	var total int64
	for _, node := range appState.Result.AllNodes {
		if !node.Selected {
			continue
		}
		count++
		if hasSelectedAncestor(node) {
			continue
		}
		total += node.SizeBytes
	}
	return count, total
}

func hasSelectedAncestor(node *domain.FileNode) bool {
	for parent := node.Parent; parent != nil; parent = parent.Parent {
		if parent.Selected {
			return true
		}
	}
	return false
}

func (appState *State) SelectedNodes() []*domain.FileNode {
	if appState.Result == nil {
		return nil
	}
	var nodes []*domain.FileNode
	for _, node := range appState.Result.AllNodes {
		if node.Selected {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Path < nodes[j].Path
	})
	return nodes
}

func (appState *State) ToggleExpanded(path string) bool {
	if path == "" {
		return false
	}
	appState.Expanded[path] = !appState.Expanded[path]
	return appState.Expanded[path]
}

func (appState *State) IsExpanded(path string) bool {
	return appState.Expanded[path]
}

func (appState *State) ToggleSortMode() domain.SortMode {
	switch appState.Prefs.SortMode {
	case domain.SortBySize:
		appState.Prefs.SortMode = domain.SortByName
	case domain.SortByName:
		appState.Prefs.SortMode = domain.SortByMod
	default:
		appState.Prefs.SortMode = domain.SortBySize
	}
	return appState.Prefs.SortMode
}

func (appState *State) ClearFilters() {
	appState.SearchQuery = ""
	appState.FilterExt = ""
	appState.MinSizeBytes = 0
}

type VisibleNode struct {
	Node  *domain.FileNode
	Depth int
}

func (appState *State) VisibleNodes() []VisibleNode {
	if appState.Result == nil || appState.Result.Root == nil {
		return nil
	}
	visible := make([]VisibleNode, 0, len(appState.Result.AllNodes))
	appState.appendNode(&visible, appState.Result.Root, 0)
	return visible
}

func (appState *State) CurrentNode() *domain.FileNode {
	visible := appState.VisibleNodes()
	if len(visible) == 0 || appState.Cursor < 0 || appState.Cursor >= len(visible) {
		return nil
	}
	return visible[appState.Cursor].Node
}

func (appState *State) appendNode(visible *[]VisibleNode, node *domain.FileNode, depth int) {
	if node == nil {
		return
	}
	filtering := appState.SearchQuery != "" || appState.FilterExt != "" || appState.MinSizeBytes > 0
	if !filtering {
		*visible = append(*visible, VisibleNode{Node: node, Depth: depth})
		if !node.IsDir || !appState.IsExpanded(node.Path) {
			return
		}
		for _, child := range appState.sortedChildren(node) {
			appState.appendNode(visible, child, depth+1)
		}
		return
	}
	if !node.IsDir {
		if appState.nodeMatches(node) {
			*visible = append(*visible, VisibleNode{Node: node, Depth: depth})
		}
		return
	}
	children := appState.sortedChildren(node)
	filteredChildren := make([]*domain.FileNode, 0, len(children))
	for _, child := range children {
		if appState.nodeMatches(child) {
			filteredChildren = append(filteredChildren, child)
			continue
		}
		if child.IsDir && appState.dirHasMatch(child) {
			filteredChildren = append(filteredChildren, child)
		}
	}
	isRoot := node == appState.Result.Root
	if isRoot || appState.nodeMatches(node) || len(filteredChildren) > 0 {
		*visible = append(*visible, VisibleNode{Node: node, Depth: depth})
		if !appState.IsExpanded(node.Path) {
			return
		}
		for _, child := range filteredChildren {
			appState.appendNode(visible, child, depth+1)
		}
	}
}

func (appState *State) sortedChildren(node *domain.FileNode) []*domain.FileNode {
	children := append([]*domain.FileNode{}, node.Children...)
	if len(children) < 2 {
		return children
	}
	less := func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		switch appState.Prefs.SortMode {
		case domain.SortByName:
			return strings.ToLower(children[i].Name) < strings.ToLower(children[j].Name)
		case domain.SortByMod:
			return children[i].ModTime.After(children[j].ModTime)
		default:
			return children[i].SizeBytes > children[j].SizeBytes
		}
	}
	sort.SliceStable(children, less)
	return children
}

func (appState *State) nodeMatches(node *domain.FileNode) bool {
	if node == nil {
		return false
	}
	if appState.SearchQuery != "" {
		query := strings.ToLower(appState.SearchQuery)
		if !strings.Contains(strings.ToLower(node.Name), query) {
			return false
		}
	}
	if appState.FilterExt != "" {
		filter := strings.ToLower(strings.TrimPrefix(appState.FilterExt, "."))
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(node.Name), "."))
		if ext != filter {
			return false
		}
	}
	if appState.MinSizeBytes > 0 && node.SizeBytes < appState.MinSizeBytes {
		return false
	}
	return true
}

func (appState *State) dirHasMatch(node *domain.FileNode) bool {
	if node == nil || !node.IsDir {
		return false
	}
	for _, child := range node.Children {
		if appState.nodeMatches(child) {
			return true
		}
		if child.IsDir && appState.dirHasMatch(child) {
			return true
		}
	}
	return false
}
