package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"diskcull/internal/domain"
)

// Mock workers back the UI in demo mode and in tests. A zero Delay
// completes immediately.

type MockScanner struct {
	Delay time.Duration
}

func NewMockScanner() *MockScanner {
	return &MockScanner{Delay: 350 * time.Millisecond}
}

func (scanner *MockScanner) Scan(ctx context.Context, req ScanRequest) (ScanOutcome, error) {
	start := time.Now()
	if scanner.Delay > 0 {
		select {
		case <-ctx.Done():
			return ScanOutcome{}, ctx.Err()
		case <-time.After(scanner.Delay):
		}
	}

	root := cleanPath(req.RootPath)
	now := time.Now()
	rootNode := &domain.FileNode{Path: root, Name: filepath.Base(root), IsDir: true, ModTime: now}
	if rootNode.Name == "." || rootNode.Name == string(filepath.Separator) {
		rootNode.Name = root
	}
	result := domain.NewScanResult(rootNode)

	docs := &domain.FileNode{Path: filepath.Join(root, "docs"), Name: "docs", IsDir: true, ModTime: now}
	report := &domain.FileNode{
		Path:       filepath.Join(root, "docs", "report.pdf"),
		Name:       "report.pdf",
		SizeBytes:  120 * 1000 * 1000,
		ModTime:    now.Add(-400 * 24 * time.Hour),
		AccessTime: now.Add(-400 * 24 * time.Hour),
		Ext:        ".pdf",
	}
	scratch := &domain.FileNode{
		Path:       filepath.Join(root, "scratch.tmp"),
		Name:       "scratch.tmp",
		SizeBytes:  2048,
		ModTime:    now,
		AccessTime: now,
		Ext:        ".tmp",
	}
	leftover := &domain.FileNode{Path: filepath.Join(root, "leftover"), Name: "leftover", IsDir: true, ModTime: now}

	rootNode.AddChild(docs)
	result.Add(docs)
	docs.AddChild(report)
	result.Add(report)
	rootNode.AddChild(scratch)
	result.Add(scratch)
	rootNode.AddChild(leftover)
	result.Add(leftover)

	result.TotalSizeBytes = rollupSizes(rootNode)
	lists := classify(result, req.Filters.Normalized())

	return ScanOutcome{Result: result, Lists: lists, Duration: time.Since(start)}, nil
}

type MockDuplicates struct {
	Delay time.Duration
}

func NewMockDuplicates() *MockDuplicates {
	return &MockDuplicates{Delay: 450 * time.Millisecond}
}

func (finder *MockDuplicates) Find(ctx context.Context, req DuplicateRequest) (DuplicateOutcome, error) {
	start := time.Now()
	if finder.Delay > 0 {
		select {
		case <-ctx.Done():
			return DuplicateOutcome{}, ctx.Err()
		case <-time.After(finder.Delay):
		}
	}

	// Same size passes for same content here; good enough for a demo.
	outcome := DuplicateOutcome{Groups: make(map[string][]*domain.FileNode)}
	bySize := make(map[int64][]*domain.FileNode)
	for _, f := range req.Files {
		if f.SizeBytes == 0 {
			continue
		}
		bySize[f.SizeBytes] = append(bySize[f.SizeBytes], f)
	}
	for size, group := range bySize {
		if len(group) < 2 {
			continue
		}
		digest := fmt.Sprintf("mock-%d", size)
		for _, f := range group {
			f.HashSHA256 = digest
		}
		outcome.Groups[digest] = group
		outcome.Hashed += len(group)
	}
	outcome.Duration = time.Since(start)
	return outcome, nil
}

type MockActions struct {
	Delay time.Duration
}

func NewMockActions() *MockActions {
	return &MockActions{Delay: 450 * time.Millisecond}
}

func (actions *MockActions) Execute(ctx context.Context, req DeleteRequest) (DeleteResult, error) {
	start := time.Now()
	if len(req.Nodes) == 0 {
		return DeleteResult{}, fmt.Errorf("no nodes provided")
	}
	if actions.Delay > 0 {
		select {
		case <-ctx.Done():
			return DeleteResult{Message: "delete cancelled", Duration: time.Since(start)}, nil
		case <-time.After(actions.Delay):
		}
	}

	result := DeleteResult{}
	for _, node := range topLevelNodes(req.Nodes) {
		if node.IsDir {
			result.DirsDeleted++
		} else {
			result.FilesDeleted++
		}
		result.TotalSizeFreed += node.SizeBytes
	}
	result.Message = "delete complete"
	result.Duration = time.Since(start)
	return result, nil
}
