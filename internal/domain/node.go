package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type FileNode struct {
	Path       string
	Name       string
	IsDir      bool
	SizeBytes  int64
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
	Ext        string
	Parent     *FileNode
	Children   []*FileNode
	Selected   bool
	HashSHA256 string
	ScanError  string
}

func (node *FileNode) AddChild(child *FileNode) {
	child.Parent = node
	node.Children = append(node.Children, child)
}

func ExtFor(name string, isDir bool) string {
	if isDir {
		return ""
	}
	return strings.ToLower(filepath.Ext(name))
}

type ScanResult struct {
	Root           *FileNode
	AllNodes       map[string]*FileNode
	AllFiles       []*FileNode
	AllDirs        []*FileNode
	TotalSizeBytes int64
	TotalFiles     int
	TotalDirs      int
	ScanErrors     []string
}

func NewScanResult(root *FileNode) *ScanResult {
	result := &ScanResult{
		Root:     root,
		AllNodes: make(map[string]*FileNode),
	}
	result.Add(root)
	return result
}

func (result *ScanResult) Add(node *FileNode) {
	result.AllNodes[node.Path] = node
	if node.IsDir {
		result.AllDirs = append(result.AllDirs, node)
		result.TotalDirs++
	} else {
		result.AllFiles = append(result.AllFiles, node)
		result.TotalFiles++
	}
}

// Index records a node without counting it toward totals. Used for entries
// whose own stat failed: they stay visible in the tree but never feed the
// size rollup or the filters.
func (result *ScanResult) Index(node *FileNode) {
	result.AllNodes[node.Path] = node
}
