package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"diskcull/internal/config"
	"diskcull/internal/domain"
	"diskcull/internal/format"
	"diskcull/internal/services"
	"diskcull/internal/state"
)

// Category identifies one of the result views reachable with tab.
type Category int

const (
	CategoryTree Category = iota
	CategoryAllFiles
	CategoryLarge
	CategoryOld
	CategoryUnaccessed
	CategoryJunk
	CategoryZeroEmpty
	CategoryDuplicates

	categoryCount = 8
)

func (category Category) Title() string {
	switch category {
	case CategoryTree:
		return "Tree"
	case CategoryAllFiles:
		return "All Files"
	case CategoryLarge:
		return "Large"
	case CategoryOld:
		return "Old"
	case CategoryUnaccessed:
		return "Unaccessed"
	case CategoryJunk:
		return "Junk"
	case CategoryZeroEmpty:
		return "Zero/Empty"
	case CategoryDuplicates:
		return "Duplicates"
	default:
		return "Unknown"
	}
}

type Model struct {
	cfg            config.Config
	state          *state.State
	scanner        services.Scanner
	finder         services.DuplicateFinder
	actions        services.Actions
	progress       services.ProgressProvider
	dupProgress    services.DuplicateProgressProvider
	deleteProgress services.DeleteProgressProvider
	keys           KeyMap
	help           help.Model
	spinner        spinner.Model

	width   int
	height  int
	viewTop int
	tab     Category
	status  string

	scanSeq    int
	scanning   bool
	cancelling bool
	hashing    bool
	deleting   bool
	cancel     context.CancelFunc

	pathMode        bool
	pathInput       string
	pathSuggestions []string

	filterInputMode  string
	filterInputValue string

	confirming bool
	permanent  bool
	summary    *services.DeleteResult

	duplicates  []*domain.FileNode
	dupInfo     string
	hashCurrent int
	hashTotal   int
	unaccessed  []*domain.FileNode

	driveTotal uint64
	driveUsed  uint64
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(cfg config.Config, appState *state.State, scanner services.Scanner, finder services.DuplicateFinder, actions services.Actions) Model {
	indicator := spinner.New()
	indicator.Spinner = spinner.MiniDot
	return Model{
		cfg:            cfg,
		state:          appState,
		scanner:        scanner,
		finder:         finder,
		actions:        actions,
		progress:       progressProvider(scanner),
		dupProgress:    duplicateProgressProvider(finder),
		deleteProgress: deleteProgressProvider(actions),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		spinner:        indicator,
		status:         "Starting scan...",
		width:          100,
		height:         30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	cfg := model.cfg
	cfg.Path = model.state.Path
	cfg.SortMode = model.state.Prefs.SortMode
	cfg.Theme = model.state.Prefs.Theme
	return cfg
}

func (model Model) Init() tea.Cmd {
	return func() tea.Msg { return startScanMsg{} }
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.help.Width = typed.Width
		model.ensureCursorVisible()
		return model, nil
	case spinner.TickMsg:
		if !model.scanning && !model.hashing && !model.deleting {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(typed)
		return model, cmd
	case startScanMsg:
		return model.beginScan(model.state.Path)
	case scanResultMsg:
		return model.handleScanResult(typed)
	case scanProgressMsg:
		return model.handleScanProgress(typed)
	case duplicateResultMsg:
		return model.handleDuplicateResult(typed)
	case duplicateProgressMsg:
		return model.handleDuplicateProgress(typed)
	case deleteResultMsg:
		return model.handleDeleteResult(typed)
	case deleteProgressMsg:
		return model.handleDeleteProgress(typed)
	default:
		return model, nil
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		if model.cancel != nil {
			model.cancel()
			model.cancel = nil
		}
		return model, tea.Quit
	case model.summary != nil:
		model.summary = nil
		return model, nil
	case model.confirming:
		return model.handleConfirmKey(msg)
	case model.pathMode:
		return model.handlePathInput(msg)
	case model.filterInputMode != "":
		return model.handleFilterInput(msg)
	case key.Matches(msg, model.keys.Help):
		model.help.ShowAll = !model.help.ShowAll
		return model, nil
	case key.Matches(msg, model.keys.Cancel):
		if model.scanning && model.cancel != nil {
			model.cancelling = true
			model.status = "Cancelling..."
			model.cancel()
		}
		return model, nil
	case key.Matches(msg, model.keys.Up):
		model.moveCursor(-1)
		return model, nil
	case key.Matches(msg, model.keys.Down):
		model.moveCursor(1)
		return model, nil
	case key.Matches(msg, model.keys.PageUp):
		model.moveCursor(-model.listHeight())
		return model, nil
	case key.Matches(msg, model.keys.PageDown):
		model.moveCursor(model.listHeight())
		return model, nil
	case key.Matches(msg, model.keys.NextTab):
		model = model.switchTab(1)
		return model, nil
	case key.Matches(msg, model.keys.PrevTab):
		model = model.switchTab(-1)
		return model, nil
	case key.Matches(msg, model.keys.Select):
		if node := model.currentNode(); node != nil {
			model.state.ToggleSelection(node.Path)
		}
		return model, nil
	case key.Matches(msg, model.keys.Enter):
		if model.tab != CategoryTree {
			return model, nil
		}
		node := model.state.CurrentNode()
		if node == nil || !node.IsDir {
			return model, nil
		}
		model.state.ToggleExpanded(node.Path)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Expand):
		if model.tab != CategoryTree {
			return model, nil
		}
		node := model.state.CurrentNode()
		if node == nil || !node.IsDir || model.state.IsExpanded(node.Path) {
			return model, nil
		}
		model.state.ToggleExpanded(node.Path)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Collapse):
		if model.tab != CategoryTree {
			return model, nil
		}
		node := model.state.CurrentNode()
		if node == nil {
			return model, nil
		}
		if node.IsDir && model.state.IsExpanded(node.Path) {
			model.state.ToggleExpanded(node.Path)
			model.ensureCursorVisible()
			return model, nil
		}
		model.moveCursorToParent(node)
		return model, nil
	case key.Matches(msg, model.keys.Scan):
		return model.beginScan(model.state.Path)
	case key.Matches(msg, model.keys.SetPath):
		model.pathMode = true
		model.pathInput = model.state.Path
		model.pathSuggestions = nil
		model.status = fmt.Sprintf("Scan path: %s", model.pathInput)
		return model, nil
	case key.Matches(msg, model.keys.Duplicates):
		return model.beginDuplicates()
	case key.Matches(msg, model.keys.Delete):
		if model.scanning || model.hashing || model.deleting {
			model.status = "Busy - wait for the current operation"
			return model, nil
		}
		count, size := model.state.SelectionSummary()
		if count == 0 {
			model.status = "Nothing selected"
			return model, nil
		}
		model.confirming = true
		model.permanent = false
		model.status = fmt.Sprintf("Confirm deletion of %d items (%s)", count, format.Size(size))
		return model, nil
	case key.Matches(msg, model.keys.Sort):
		mode := model.state.ToggleSortMode()
		model.status = fmt.Sprintf("Sort order: %s", string(mode))
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Search):
		model.filterInputMode = "search"
		model.filterInputValue = model.state.SearchQuery
		model.status = fmt.Sprintf("Search: %s", model.filterInputValue)
		return model, nil
	case key.Matches(msg, model.keys.ExtFilter):
		model.filterInputMode = "ext"
		model.filterInputValue = model.state.FilterExt
		model.status = fmt.Sprintf("Extension: %s", model.filterInputValue)
		return model, nil
	case key.Matches(msg, model.keys.SizeFilter):
		model.filterInputMode = "size"
		model.filterInputValue = formatSizeLabel(model.state.MinSizeBytes)
		model.status = fmt.Sprintf("Min size: %s", model.filterInputValue)
		return model, nil
	case key.Matches(msg, model.keys.ClearFilter):
		model.state.ClearFilters()
		model.status = "Filters cleared"
		model.ensureCursorVisible()
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Confirm):
		return model.beginDelete()
	case key.Matches(msg, model.keys.Permanent):
		model.permanent = !model.permanent
		return model, nil
	case key.Matches(msg, model.keys.Cancel):
		model.confirming = false
		model.status = "Delete cancelled"
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) beginScan(path string) (Model, tea.Cmd) {
	if model.hashing || model.deleting {
		model.status = "Busy - wait for the current operation"
		return model, nil
	}
	if model.cancel != nil {
		model.cancel()
		model.cancel = nil
	}
	if abs, err := filepath.Abs(filepath.Clean(path)); err == nil {
		path = abs
	}
	model.scanSeq++
	model.state.Path = path
	model.state.Clear()
	model.duplicates = nil
	model.dupInfo = ""
	model.unaccessed = nil
	model.confirming = false
	model.cancelling = false
	model.viewTop = 0

	total, used, _ := services.DriveUsage(path)
	model.driveTotal = total
	model.driveUsed = used

	ctx, cancel := context.WithCancel(context.Background())
	model.cancel = cancel
	model.scanning = true
	model.status = "Starting scan..."
	request := services.ScanRequest{
		RootPath:        path,
		IncludeSymlinks: !model.cfg.SkipSymlinks,
		Filters:         model.cfg.FilterOptions(),
	}
	return model, tea.Batch(model.scanCmd(ctx, model.scanSeq, request), model.progressCmd(model.scanSeq), model.spinner.Tick)
}

func (model Model) scanCmd(ctx context.Context, seq int, request services.ScanRequest) tea.Cmd {
	return func() tea.Msg {
		outcome, err := model.scanner.Scan(ctx, request)
		return scanResultMsg{seq: seq, outcome: outcome, err: err}
	}
}

func (model Model) progressCmd(seq int) tea.Cmd {
	if model.progress == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			channel := model.progress.Progress()
			if channel == nil {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			progress, ok := <-channel
			if !ok {
				return scanProgressMsg{seq: seq, progress: services.ScanProgress{Completed: true}}
			}
			return scanProgressMsg{seq: seq, progress: progress}
		}
	}
}

func (model Model) handleScanResult(msg scanResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != model.scanSeq {
		return model, nil
	}
	model.scanning = false
	model.cancelling = false
	model.cancel = nil
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			model.status = "Scan cancelled."
			return model, nil
		}
		model.status = fmt.Sprintf("Scan error: %v", msg.err)
		return model, nil
	}
	model.state.SetScan(msg.outcome.Result, msg.outcome.Lists)
	model.viewTop = 0
	model.status = fmt.Sprintf("Scan complete. Total size: %s", format.Size(msg.outcome.Result.TotalSizeBytes))
	model.ensureCursorVisible()
	return model, nil
}

func (model Model) handleScanProgress(msg scanProgressMsg) (tea.Model, tea.Cmd) {
	if msg.seq != model.scanSeq {
		return model, nil
	}
	if msg.progress.Completed {
		if model.scanning {
			return model, model.progressCmd(msg.seq)
		}
		return model, nil
	}
	if model.cancelling {
		return model, model.progressCmd(msg.seq)
	}
	switch {
	case msg.progress.ErrMessage != "":
		model.status = fmt.Sprintf("Scan warning: %s", msg.progress.ErrMessage)
	case msg.progress.Phase != "":
		model.status = msg.progress.Phase
	case msg.progress.Path != "":
		model.status = "Scanning: " + shortenPath(msg.progress.Path, model.state.Path)
	}
	return model, model.progressCmd(msg.seq)
}

func (model Model) beginDuplicates() (Model, tea.Cmd) {
	if model.scanning || model.hashing || model.deleting {
		model.status = "Busy - wait for the current operation"
		return model, nil
	}
	if model.state.Result == nil {
		model.status = "Scan first"
		return model, nil
	}
	model.hashing = true
	model.hashCurrent = 0
	model.hashTotal = 0
	model.tab = CategoryDuplicates
	model.state.Cursor = 0
	model.viewTop = 0
	model.status = "Scanning for duplicates... (Hashing files)"
	request := services.DuplicateRequest{Files: model.state.Lists.AllFiles}
	return model, tea.Batch(model.duplicateCmd(request), model.duplicateProgressCmd(), model.spinner.Tick)
}

func (model Model) duplicateCmd(request services.DuplicateRequest) tea.Cmd {
	return func() tea.Msg {
		outcome, err := model.finder.Find(context.Background(), request)
		return duplicateResultMsg{outcome: outcome, err: err}
	}
}

func (model Model) duplicateProgressCmd() tea.Cmd {
	if model.dupProgress == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			channel := model.dupProgress.DuplicateProgress()
			if channel == nil {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			progress, ok := <-channel
			if !ok {
				return duplicateProgressMsg{progress: services.DuplicateProgress{Completed: true}}
			}
			return duplicateProgressMsg{progress: progress}
		}
	}
}

func (model Model) handleDuplicateResult(msg duplicateResultMsg) (tea.Model, tea.Cmd) {
	model.hashing = false
	if msg.err != nil {
		model.status = fmt.Sprintf("Duplicate scan error: %v", msg.err)
		return model, nil
	}
	model.duplicates = flattenGroups(msg.outcome.Groups)
	model.dupInfo = fmt.Sprintf("Found %d sets of duplicates (%d total files).", len(msg.outcome.Groups), len(model.duplicates))
	if failed := len(msg.outcome.Failures); failed > 0 {
		model.dupInfo += fmt.Sprintf(" %d files could not be read.", failed)
	}
	model.status = model.dupInfo
	model.ensureCursorVisible()
	return model, nil
}

func (model Model) handleDuplicateProgress(msg duplicateProgressMsg) (tea.Model, tea.Cmd) {
	if msg.progress.Completed {
		if model.hashing {
			return model, model.duplicateProgressCmd()
		}
		return model, nil
	}
	model.hashCurrent = msg.progress.Current
	model.hashTotal = msg.progress.Total
	model.status = fmt.Sprintf("Hashing... %d/%d", msg.progress.Current, msg.progress.Total)
	return model, model.duplicateProgressCmd()
}

func (model Model) beginDelete() (Model, tea.Cmd) {
	model.confirming = false
	nodes := model.state.SelectedNodes()
	if len(nodes) == 0 {
		model.status = "Nothing selected"
		return model, nil
	}
	model.deleting = true
	model.status = "Deleting..."
	request := services.DeleteRequest{Nodes: nodes, Permanent: model.permanent}
	return model, tea.Batch(model.deleteCmd(request), model.deleteProgressCmd(), model.spinner.Tick)
}

func (model Model) deleteCmd(request services.DeleteRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := model.actions.Execute(context.Background(), request)
		return deleteResultMsg{result: result, err: err}
	}
}

func (model Model) deleteProgressCmd() tea.Cmd {
	if model.deleteProgress == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			channel := model.deleteProgress.DeleteProgress()
			if channel == nil {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			progress, ok := <-channel
			if !ok {
				return deleteProgressMsg{progress: services.DeleteProgress{Completed: true}}
			}
			return deleteProgressMsg{progress: progress}
		}
	}
}

func (model Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	model.deleting = false
	if msg.err != nil {
		model.status = fmt.Sprintf("Delete error: %v", msg.err)
		return model, nil
	}
	result := msg.result
	model.summary = &result
	// the tree still references deleted entries, so refresh right away
	return model.beginScan(model.state.Path)
}

func (model Model) handleDeleteProgress(msg deleteProgressMsg) (tea.Model, tea.Cmd) {
	if msg.progress.Completed {
		if model.deleting {
			return model, model.deleteProgressCmd()
		}
		return model, nil
	}
	if msg.progress.Path != "" {
		label := "Deleting"
		if msg.progress.IsError {
			label = "Error"
		}
		model.status = fmt.Sprintf("%s: %s", label, msg.progress.Path)
	}
	return model, model.deleteProgressCmd()
}

func (model Model) handlePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model.pathMode = false
		model.pathSuggestions = nil
		model.status = "Path entry cancelled"
		return model, nil
	case tea.KeyEnter:
		model.pathMode = false
		model.pathSuggestions = nil
		path := strings.TrimSpace(model.pathInput)
		if path == "" {
			model.status = "Path required"
			return model, nil
		}
		return model.beginScan(path)
	case tea.KeyTab:
		model.pathInput, model.pathSuggestions = completePath(model.pathInput)
	case tea.KeyBackspace, tea.KeyDelete:
		if len(model.pathInput) > 0 {
			model.pathInput = model.pathInput[:len(model.pathInput)-1]
		}
		model.updatePathSuggestions()
	default:
		if msg.Type == tea.KeyRunes {
			model.pathInput += string(msg.Runes)
			model.updatePathSuggestions()
		}
	}
	model.status = fmt.Sprintf("Scan path: %s", model.pathInput)
	return model, nil
}

func (model Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model.filterInputMode = ""
		model.filterInputValue = ""
		model.status = "Filter cancelled"
		return model, nil
	case tea.KeyEnter:
		mode := model.filterInputMode
		value := strings.TrimSpace(model.filterInputValue)
		model.filterInputMode = ""
		switch mode {
		case "search":
			model.state.SearchQuery = value
		case "ext":
			model.state.FilterExt = value
		case "size":
			model.state.MinSizeBytes = parseSizeInput(value)
		}
		model.ensureCursorVisible()
		model.status = "Filter applied"
		return model, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if len(model.filterInputValue) > 0 {
			model.filterInputValue = model.filterInputValue[:len(model.filterInputValue)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			model.filterInputValue += string(msg.Runes)
		}
	}
	model.status = fmt.Sprintf("%s: %s", filterLabel(model.filterInputMode), model.filterInputValue)
	return model, nil
}

func parseSizeInput(input string) int64 {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return 0
	}
	value := trimmed
	multiplier := int64(1)
	if strings.HasSuffix(trimmed, "kb") {
		value = strings.TrimSuffix(trimmed, "kb")
		multiplier = 1000
	} else if strings.HasSuffix(trimmed, "k") {
		value = strings.TrimSuffix(trimmed, "k")
		multiplier = 1000
	} else if strings.HasSuffix(trimmed, "mb") {
		value = strings.TrimSuffix(trimmed, "mb")
		multiplier = 1000 * 1000
	} else if strings.HasSuffix(trimmed, "m") {
		value = strings.TrimSuffix(trimmed, "m")
		multiplier = 1000 * 1000
	} else if strings.HasSuffix(trimmed, "gb") {
		value = strings.TrimSuffix(trimmed, "gb")
		multiplier = 1000 * 1000 * 1000
	} else if strings.HasSuffix(trimmed, "g") {
		value = strings.TrimSuffix(trimmed, "g")
		multiplier = 1000 * 1000 * 1000
	} else if strings.HasSuffix(trimmed, "tb") {
		value = strings.TrimSuffix(trimmed, "tb")
		multiplier = 1000 * 1000 * 1000 * 1000
	} else if strings.HasSuffix(trimmed, "t") {
		value = strings.TrimSuffix(trimmed, "t")
		multiplier = 1000 * 1000 * 1000 * 1000
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return int64(parsed * float64(multiplier))
}

func filterLabel(mode string) string {
	switch mode {
	case "search":
		return "Search"
	case "ext":
		return "Extension"
	case "size":
		return "Min size"
	default:
		return "Filter"
	}
}

func formatSizeLabel(size int64) string {
	if size <= 0 {
		return ""
	}
	const unit = 1000
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	value := float64(size) / float64(div)
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f%s", value, units[exp])
}

func (model Model) switchTab(delta int) Model {
	next := (int(model.tab) + delta + categoryCount) % categoryCount
	model.tab = Category(next)
	model.state.Cursor = 0
	model.viewTop = 0
	if model.tab == CategoryUnaccessed && model.unaccessed == nil && model.state.Result != nil {
		opts := model.cfg.FilterOptions().Normalized()
		model.unaccessed = services.UnaccessedFiles(model.state.Lists.AllFiles, opts.UnaccessedAfterDays, opts.ATimeFallback)
	}
	return model
}

func (model Model) categoryNodes() []*domain.FileNode {
	switch model.tab {
	case CategoryAllFiles:
		return model.state.Lists.AllFiles
	case CategoryLarge:
		return model.state.Lists.Large
	case CategoryOld:
		return model.state.Lists.Old
	case CategoryUnaccessed:
		return model.unaccessed
	case CategoryJunk:
		return model.state.Lists.Junk
	case CategoryZeroEmpty:
		return model.state.Lists.ZeroEmpty
	case CategoryDuplicates:
		return model.duplicates
	default:
		return nil
	}
}

func (model Model) entryCount() int {
	if model.tab == CategoryTree {
		return len(model.state.VisibleNodes())
	}
	return len(model.categoryNodes())
}

func (model Model) currentNode() *domain.FileNode {
	if model.tab == CategoryTree {
		return model.state.CurrentNode()
	}
	nodes := model.categoryNodes()
	if model.state.Cursor < 0 || model.state.Cursor >= len(nodes) {
		return nil
	}
	return nodes[model.state.Cursor]
}

func (model *Model) moveCursor(delta int) {
	count := model.entryCount()
	if count == 0 {
		model.state.Cursor = 0
		return
	}
	model.state.Cursor = clamp(model.state.Cursor+delta, 0, count-1)
	model.ensureCursorVisible()
}

func (model *Model) moveCursorToParent(node *domain.FileNode) {
	parent := node.Parent
	if parent == nil {
		return
	}
	for index, item := range model.state.VisibleNodes() {
		if item.Node == parent {
			model.state.Cursor = index
			model.ensureCursorVisible()
			return
		}
	}
}

func flattenGroups(groups map[string][]*domain.FileNode) []*domain.FileNode {
	var files []*domain.FileNode
	for _, group := range groups {
		files = append(files, group...)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].SizeBytes != files[j].SizeBytes {
			return files[i].SizeBytes > files[j].SizeBytes
		}
		if files[i].HashSHA256 != files[j].HashSHA256 {
			return files[i].HashSHA256 < files[j].HashSHA256
		}
		return files[i].Path < files[j].Path
	})
	return files
}

func shortenPath(path, root string) string {
	if root == "" {
		return path
	}
	return strings.Replace(path, root, "...", 1)
}

func progressProvider(scanner services.Scanner) services.ProgressProvider {
	provider, _ := scanner.(services.ProgressProvider)
	return provider
}

func duplicateProgressProvider(finder services.DuplicateFinder) services.DuplicateProgressProvider {
	provider, _ := finder.(services.DuplicateProgressProvider)
	return provider
}

func deleteProgressProvider(actions services.Actions) services.DeleteProgressProvider {
	provider, _ := actions.(services.DeleteProgressProvider)
	return provider
}

func (model *Model) ensureCursorVisible() {
	count := model.entryCount()
	if count == 0 {
		model.state.Cursor = 0
		model.viewTop = 0
		return
	}
	if model.state.Cursor >= count {
		model.state.Cursor = count - 1
	}
	if model.state.Cursor < 0 {
		model.state.Cursor = 0
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := count - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	height := model.height - 7
	if height < 3 {
		return 3
	}
	return height
}

func (model *Model) updatePathSuggestions() {
	_, suggestions := completePath(model.pathInput)
	model.pathSuggestions = suggestions
}

func completePath(input string) (string, []string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed, nil
	}
	dir := filepath.Dir(trimmed)
	base := filepath.Base(trimmed)
	if strings.HasSuffix(trimmed, string(filepath.Separator)) {
		dir = trimmed
		base = ""
	}
	if dir == "." {
		dir = ""
	}
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return input, nil
	}
	matches := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, base) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return input, nil
	}
	completed := commonPrefix(matches)
	if dir != "" {
		completed = filepath.Join(dir, completed)
	}
	if len(matches) == 1 && entriesHasDir(entries, matches[0]) {
		completed += string(filepath.Separator)
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if dir != "" {
			paths = append(paths, filepath.Join(dir, match))
		} else {
			paths = append(paths, match)
		}
	}
	return completed, paths
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for !strings.HasPrefix(value, prefix) && prefix != "" {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	return prefix
}

func entriesHasDir(entries []os.DirEntry, name string) bool {
	for _, entry := range entries {
		if entry.Name() == name {
			return entry.IsDir()
		}
	}
	return false
}
