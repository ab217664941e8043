package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"diskcull/internal/domain"
	"diskcull/internal/format"
)

const sizeWidth = 10

type uiStyles struct {
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	warnStyle     lipgloss.Style
	cursorStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	tabActive     lipgloss.Style
	tabInactive   lipgloss.Style
	panelBorder   lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			headerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			tabActive:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")).Underline(true),
			tabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle:   lipgloss.NewStyle().Bold(true),
		mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		tabActive:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Underline(true),
		tabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	header := renderHeader(model, styles)
	tabs := renderTabs(model, styles)
	body := renderBody(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{header, tabs, body, footer}, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	left := styles.headerStyle.Render("DiskCull") + "  " + styles.mutedStyle.Render(breadcrumbs(model.state.Path))
	right := ""
	switch {
	case model.scanning:
		right = model.spinner.View() + " " + styles.statusStyle.Render("SCANNING")
	case model.hashing:
		right = model.spinner.View() + " " + styles.statusStyle.Render("HASHING")
	case model.deleting:
		right = model.spinner.View() + " " + styles.statusStyle.Render("DELETING")
	default:
		right = styles.mutedStyle.Render("IDLE")
	}
	return padLine(left, right, model.width)
}

func renderTabs(model Model, styles uiStyles) string {
	labels := make([]string, 0, categoryCount)
	for category := CategoryTree; category < Category(categoryCount); category++ {
		label := category.Title()
		if count := tabCount(model, category); count >= 0 {
			label = fmt.Sprintf("%s (%d)", label, count)
		}
		if category == model.tab {
			labels = append(labels, styles.tabActive.Render(label))
		} else {
			labels = append(labels, styles.tabInactive.Render(label))
		}
	}
	return " " + strings.Join(labels, "  ")
}

func tabCount(model Model, category Category) int {
	if model.state.Result == nil {
		return -1
	}
	switch category {
	case CategoryAllFiles:
		return len(model.state.Lists.AllFiles)
	case CategoryLarge:
		return len(model.state.Lists.Large)
	case CategoryOld:
		return len(model.state.Lists.Old)
	case CategoryUnaccessed:
		if model.unaccessed == nil {
			return -1
		}
		return len(model.unaccessed)
	case CategoryJunk:
		return len(model.state.Lists.Junk)
	case CategoryZeroEmpty:
		return len(model.state.Lists.ZeroEmpty)
	case CategoryDuplicates:
		if model.dupInfo == "" {
			return -1
		}
		return len(model.duplicates)
	default:
		return -1
	}
}

func renderBody(model Model, styles uiStyles) string {
	bodyHeight := model.listHeight()
	leftWidth, rightWidth, showRight := splitPanels(model.width)
	var left string
	if model.tab == CategoryTree {
		left = renderTreePanel(model, styles, bodyHeight, leftWidth)
	} else {
		left = renderListPanel(model, styles, bodyHeight, leftWidth)
	}
	if !showRight {
		return left
	}
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("│")
	right := renderDetailPanel(model, styles, rightWidth, bodyHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
}

func renderTreePanel(model Model, styles uiStyles, height, width int) string {
	if width < 20 {
		width = 20
	}
	contentWidth := maxInt(width-2, 10)
	visible := model.state.VisibleNodes()
	if len(visible) == 0 {
		message := "Not scanned - press s"
		if model.scanning {
			message = "Scanning..."
		}
		lines := []string{message}
		for len(lines) < height {
			lines = append(lines, "")
		}
		return styles.panelBorder.Width(contentWidth).Render(strings.Join(lines, "\n"))
	}
	start := clamp(model.viewTop, 0, maxInt(len(visible)-1, 0))
	end := start + height
	if end > len(visible) {
		end = len(visible)
	}
	lines := make([]string, 0, height)
	for index := start; index < end; index++ {
		item := visible[index]
		lines = append(lines, renderNodeLine(model, styles, item.Node, item.Depth, index == model.state.Cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return styles.panelBorder.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

func renderListPanel(model Model, styles uiStyles, height, width int) string {
	if width < 20 {
		width = 20
	}
	contentWidth := maxInt(width-2, 10)
	nodes := model.categoryNodes()
	lines := make([]string, 0, height)
	if model.tab == CategoryDuplicates && model.dupInfo != "" {
		lines = append(lines, styles.mutedStyle.Render(model.dupInfo))
	}
	if len(nodes) == 0 {
		message := "Nothing here."
		switch {
		case model.state.Result == nil:
			message = "Not scanned - press s"
		case model.tab == CategoryDuplicates && model.dupInfo == "":
			message = "Press f to scan for duplicates"
		}
		lines = append(lines, message)
	}
	listHeight := height - len(lines)
	if listHeight < 1 {
		listHeight = 1
	}
	start := clamp(model.viewTop, 0, maxInt(len(nodes)-1, 0))
	// the info line above eats a row, so keep the cursor inside the window
	if model.state.Cursor >= start+listHeight {
		start = model.state.Cursor - listHeight + 1
	}
	end := start + listHeight
	if end > len(nodes) {
		end = len(nodes)
	}
	for index := start; index < end; index++ {
		lines = append(lines, renderNodeLine(model, styles, nodes[index], 0, index == model.state.Cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return styles.panelBorder.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

func renderNodeLine(model Model, styles uiStyles, node *domain.FileNode, depth int, cursor bool) string {
	indent := strings.Repeat("  ", depth)
	marker := "[ ]"
	if node.Selected {
		marker = styles.selectedStyle.Render("[x]")
	}
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	size := fmt.Sprintf("%*s", sizeWidth, format.Size(node.SizeBytes))
	line := fmt.Sprintf("%s %s %s%s %s", size, marker, indent, fileIcon(model, node), name)
	if node.ScanError != "" {
		line += " " + styles.warnStyle.Render("⚠")
	}
	if cursor {
		line = styles.cursorStyle.Render(line)
	}
	return line
}

func renderDetailPanel(model Model, styles uiStyles, width, height int) string {
	contentWidth := maxInt(width-2, 10)
	if model.summary != nil {
		return renderSummaryPanel(model, styles, contentWidth, height)
	}
	if model.confirming {
		return renderConfirmPanel(model, styles, contentWidth, height)
	}
	if model.pathMode {
		return renderPathPanel(model, styles, contentWidth, height)
	}
	node := model.currentNode()
	if node == nil {
		return styles.panelBorder.Width(contentWidth).Render("No selection")
	}
	lines := []string{
		styles.headerStyle.Render("Path"),
		node.Path,
		"",
		styles.headerStyle.Render("Size"),
		format.Size(node.SizeBytes),
	}
	if node.IsDir {
		lines = append(lines, fmt.Sprintf("Entries: %s", humanize.Comma(int64(len(node.Children)))))
	}
	if !node.ModTime.IsZero() {
		lines = append(lines, "",
			styles.headerStyle.Render("Modified"),
			node.ModTime.Format(time.RFC822),
			humanize.Time(node.ModTime))
	}
	if !node.IsDir && !node.AccessTime.IsZero() {
		lines = append(lines, "",
			styles.headerStyle.Render("Accessed"),
			node.AccessTime.Format(time.RFC822),
			fmt.Sprintf("%d days ago", format.AgeDays(node.AccessTime)))
	}
	if node.Ext != "" {
		lines = append(lines, "", styles.headerStyle.Render("Extension"), node.Ext)
	}
	if node.HashSHA256 != "" {
		lines = append(lines, "", styles.headerStyle.Render("SHA-256"), node.HashSHA256)
	}
	if node.ScanError != "" {
		lines = append(lines, "", styles.warnStyle.Render(node.ScanError))
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderConfirmPanel(model Model, styles uiStyles, contentWidth, height int) string {
	count, size := model.state.SelectionSummary()
	mode := "Send to Trash"
	if model.permanent {
		mode = styles.warnStyle.Render("Permanently delete (skip Recycle Bin)")
	}
	lines := []string{
		styles.headerStyle.Render("Confirm Deletion"),
		"",
		fmt.Sprintf("%s items selected (%s)", humanize.Comma(int64(count)), format.Size(size)),
		"",
		"Mode: " + mode,
		"",
		styles.mutedStyle.Render("y confirm   p toggle permanent   esc cancel"),
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderSummaryPanel(model Model, styles uiStyles, contentWidth, height int) string {
	result := model.summary
	lines := []string{
		styles.headerStyle.Render("Cleanup Complete"),
		"",
		fmt.Sprintf("Files Deleted    : %s", humanize.Comma(int64(result.FilesDeleted))),
		fmt.Sprintf("Folders Deleted  : %s", humanize.Comma(int64(result.DirsDeleted))),
		fmt.Sprintf("Total Space Freed: %s", format.Size(result.TotalSizeFreed)),
	}
	if model.driveTotal > 0 {
		percent := format.Percent(result.TotalSizeFreed, int64(model.driveTotal))
		lines = append(lines, fmt.Sprintf("(%.2f%% of drive %s)", percent, model.state.Path))
	}
	if result.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped: %d already gone", result.Skipped))
	}
	if len(result.Errors) > 0 {
		lines = append(lines, "", styles.warnStyle.Render("Errors encountered:"))
		shown := result.Errors
		if len(shown) > 5 {
			shown = shown[:5]
		}
		lines = append(lines, shown...)
		if rest := len(result.Errors) - len(shown); rest > 0 {
			lines = append(lines, fmt.Sprintf("...and %d more.", rest))
		}
	}
	lines = append(lines, "", styles.mutedStyle.Render("Press any key to dismiss"))
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderPathPanel(model Model, styles uiStyles, contentWidth, height int) string {
	lines := []string{
		styles.headerStyle.Render("Scan Path"),
		model.pathInput,
	}
	if len(model.pathSuggestions) > 0 {
		lines = append(lines, "", styles.headerStyle.Render("Suggestions"))
		limit := 8
		if len(model.pathSuggestions) < limit {
			limit = len(model.pathSuggestions)
		}
		lines = append(lines, model.pathSuggestions[:limit]...)
		if len(model.pathSuggestions) > limit {
			lines = append(lines, "...")
		}
	}
	lines = append(lines, "", styles.mutedStyle.Render("enter scan   tab complete   esc cancel"))
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderFooter(model Model, styles uiStyles) string {
	statusLine := trimStatus(model.status, model.width)
	if model.hashing && model.hashTotal > 0 {
		statusLine = fmt.Sprintf("%s  %s", statusLine, progressBar(model.hashCurrent, model.hashTotal, 18))
	}
	statusStyle := styles.mutedStyle
	if strings.Contains(strings.ToLower(model.status), "error") || strings.Contains(strings.ToLower(model.status), "warning") {
		statusStyle = styles.warnStyle
	}
	statusLine = statusStyle.Render(statusLine)

	selectedCount, selectedSize := model.state.SelectionSummary()
	selectionInfo := fmt.Sprintf("Selected: %d items (%s)", selectedCount, format.Size(selectedSize))
	sortInfo := fmt.Sprintf("Sort: %s", strings.ToUpper(string(model.state.Prefs.SortMode)))
	left := selectionInfo + "  " + sortInfo + driveSummary(model) + filterSummary(model)
	right := "Total: --"
	if model.state.Result != nil {
		right = fmt.Sprintf("Total: %s", format.Size(model.state.Result.TotalSizeBytes))
	}
	infoLine := styles.mutedStyle.Render(padLine(left, right, model.width))

	return strings.Join([]string{statusLine, infoLine, model.help.View(model.keys)}, "\n")
}

func breadcrumbs(path string) string {
	path = filepath.Clean(path)
	if path == "." {
		return "."
	}
	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) == 0 {
		return path
	}
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}
	return strings.Join(parts, " › ")
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func splitPanels(width int) (int, int, bool) {
	if width < 80 {
		return width, 0, false
	}
	left := int(float64(width) * 0.6)
	if left < 40 {
		left = 40
	}
	right := width - left - 1
	if right < 30 {
		return width, 0, false
	}
	return left, right, true
}

func fileIcon(model Model, node *domain.FileNode) string {
	if node.IsDir {
		if model.tab == CategoryTree && model.state.IsExpanded(node.Path) {
			return "📂"
		}
		return "📁"
	}
	return "📄"
}

func progressBar(current, total, width int) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s]", strings.Repeat("█", filled), strings.Repeat("░", width-filled))
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 4
	if max <= 0 || len(message) <= max {
		return message
	}
	return message[:max] + "..."
}

func driveSummary(model Model) string {
	if model.driveTotal == 0 {
		return ""
	}
	return fmt.Sprintf("  Drive: %s / %s", format.Size(int64(model.driveUsed)), format.Size(int64(model.driveTotal)))
}

func filterSummary(model Model) string {
	parts := []string{}
	if model.state.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("Search:%s", model.state.SearchQuery))
	}
	if model.state.FilterExt != "" {
		parts = append(parts, fmt.Sprintf("Ext:%s", model.state.FilterExt))
	}
	if model.state.MinSizeBytes > 0 {
		parts = append(parts, fmt.Sprintf("Min:%s", format.Size(model.state.MinSizeBytes)))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  Filters[" + strings.Join(parts, ", ") + "]"
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
