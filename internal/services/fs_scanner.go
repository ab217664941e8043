package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"diskcull/internal/domain"
)

type FSScanner struct {
	mu       sync.RWMutex
	progress chan ScanProgress
}

func NewFSScanner() *FSScanner {
	return &FSScanner{}
}

func (scanner *FSScanner) Progress() <-chan ScanProgress {
	scanner.mu.RLock()
	defer scanner.mu.RUnlock()
	return scanner.progress
}

func (scanner *FSScanner) setProgress(progress chan ScanProgress) {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	scanner.progress = progress
}

func (scanner *FSScanner) Scan(ctx context.Context, req ScanRequest) (outcome ScanOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = ScanOutcome{}
			err = fmt.Errorf("an unexpected error occurred: %v", r)
		}
	}()

	start := time.Now()
	root := cleanPath(req.RootPath)

	info, statErr := os.Stat(root)
	if statErr != nil {
		return ScanOutcome{}, fmt.Errorf("cannot access root path: %w", statErr)
	}
	if !info.IsDir() {
		return ScanOutcome{}, fmt.Errorf("not a valid directory: %s", root)
	}

	rootNode := &domain.FileNode{
		Path:    root,
		Name:    filepath.Base(root),
		IsDir:   true,
		ModTime: info.ModTime(),
	}
	rootNode.AccessTime, rootNode.ChangeTime = statTimes(info)
	if rootNode.Name == "." || rootNode.Name == string(filepath.Separator) {
		rootNode.Name = root
	}
	result := domain.NewScanResult(rootNode)

	progress := make(chan ScanProgress, 64)
	scanner.setProgress(progress)
	defer close(progress)

	if walkErr := scanner.walk(ctx, progress, rootNode, result, req.IncludeSymlinks); walkErr != nil {
		return ScanOutcome{}, walkErr
	}

	progressNonBlocking(progress, ScanProgress{Phase: "Calculating folder sizes..."})
	result.TotalSizeBytes = rollupSizes(rootNode)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ScanOutcome{}, ctxErr
	}

	progressNonBlocking(progress, ScanProgress{Phase: "Filtering results..."})
	lists := classify(result, req.Filters.Normalized())

	return ScanOutcome{Result: result, Lists: lists, Duration: time.Since(start)}, nil
}

func (scanner *FSScanner) walk(ctx context.Context, progress chan ScanProgress, dir *domain.FileNode, result *domain.ScanResult, includeSymlinks bool) error {
	progressNonBlocking(progress, ScanProgress{Path: dir.Path})

	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		if isPermissionErr(err) {
			dir.ScanError = fmt.Sprintf("cannot scan directory: %s (permission denied)", dir.Path)
		} else {
			dir.ScanError = fmt.Sprintf("error scanning directory: %s (%v)", dir.Path, err)
		}
		result.ScanErrors = append(result.ScanErrors, dir.ScanError)
		return nil
	}

	for _, entry := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		path := filepath.Join(dir.Path, entry.Name())

		// Symlinks are never followed; when included they appear as
		// plain files sized by the link itself.
		if entry.Type()&fs.ModeSymlink != 0 && !includeSymlinks {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			addErrorNode(progress, dir, result, entry, path, infoErr)
			continue
		}

		node := &domain.FileNode{
			Path:    path,
			Name:    entry.Name(),
			IsDir:   entry.IsDir(),
			ModTime: info.ModTime(),
			Ext:     domain.ExtFor(entry.Name(), entry.IsDir()),
		}
		node.AccessTime, node.ChangeTime = statTimes(info)
		if !node.IsDir {
			node.SizeBytes = info.Size()
		}
		dir.AddChild(node)
		result.Add(node)

		if node.IsDir {
			if walkErr := scanner.walk(ctx, progress, node, result, includeSymlinks); walkErr != nil {
				return walkErr
			}
		}
	}

	return nil
}

func addErrorNode(progress chan ScanProgress, dir *domain.FileNode, result *domain.ScanResult, entry fs.DirEntry, path string, cause error) {
	node := &domain.FileNode{
		Path:      path,
		Name:      entry.Name(),
		IsDir:     entry.IsDir(),
		ScanError: fmt.Sprintf("cannot access: %s (%s)", path, errKind(cause)),
	}
	dir.AddChild(node)
	result.Index(node)
	result.ScanErrors = append(result.ScanErrors, node.ScanError)
	progressNonBlocking(progress, ScanProgress{Path: path, ErrMessage: node.ScanError})
}

func rollupSizes(node *domain.FileNode) int64 {
	if !node.IsDir {
		return node.SizeBytes
	}
	var total int64
	for _, child := range node.Children {
		total += rollupSizes(child)
	}
	node.SizeBytes = total
	return total
}

func classify(result *domain.ScanResult, opts domain.FilterOptions) domain.CategoryLists {
	allFiles := append([]*domain.FileNode{}, result.AllFiles...)
	sort.SliceStable(allFiles, func(i, j int) bool {
		return allFiles[i].Path < allFiles[j].Path
	})

	zeroEmpty := ZeroByteFiles(result.AllFiles)
	zeroEmpty = append(zeroEmpty, EmptyDirs(result.AllDirs)...)

	return domain.CategoryLists{
		AllFiles:  allFiles,
		Large:     LargeFiles(result.AllFiles, opts.LargeMinMB),
		Old:       OldFiles(result.AllFiles, opts.OldAfterDays),
		Junk:      JunkEntries(result, opts),
		ZeroEmpty: zeroEmpty,
	}
}
