package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"diskcull/internal/domain"
)

type FSActions struct {
	mu       sync.RWMutex
	progress chan DeleteProgress
}

func NewFSActions() *FSActions {
	return &FSActions{}
}

func (actions *FSActions) DeleteProgress() <-chan DeleteProgress {
	actions.mu.RLock()
	defer actions.mu.RUnlock()
	return actions.progress
}

func (actions *FSActions) setProgress(progress chan DeleteProgress) {
	actions.mu.Lock()
	defer actions.mu.Unlock()
	actions.progress = progress
}

func (actions *FSActions) Execute(ctx context.Context, req DeleteRequest) (DeleteResult, error) {
	start := time.Now()
	if len(req.Nodes) == 0 {
		return DeleteResult{}, fmt.Errorf("no nodes provided")
	}

	progress := make(chan DeleteProgress, 64)
	actions.setProgress(progress)
	defer close(progress)

	result := DeleteResult{}
	for _, node := range topLevelNodes(req.Nodes) {
		if ctx.Err() != nil {
			result.Message = "delete cancelled"
			result.Duration = time.Since(start)
			return result, nil
		}
		deleteNode(progress, node, req.Permanent, &result)
	}

	result.Message = "delete complete"
	result.Duration = time.Since(start)
	return result, nil
}

// topLevelNodes drops any node whose ancestor is also in the request,
// so a selected folder and its selected contents delete exactly once.
func topLevelNodes(nodes []*domain.FileNode) []*domain.FileNode {
	selected := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		selected[node.Path] = struct{}{}
	}

	var top []*domain.FileNode
	for _, node := range nodes {
		covered := false
		for parent := node.Parent; parent != nil; parent = parent.Parent {
			if _, ok := selected[parent.Path]; ok {
				covered = true
				break
			}
		}
		if !covered {
			top = append(top, node)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return !top[i].IsDir && top[j].IsDir
	})
	return top
}

func deleteNode(progress chan<- DeleteProgress, node *domain.FileNode, permanent bool, result *DeleteResult) {
	if _, err := os.Stat(node.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Skipped++
			return
		}
	}

	verb := fmt.Sprintf("Sending to Trash %s...", node.Path)
	if permanent {
		verb = fmt.Sprintf("Permanently deleting %s...", node.Path)
	}
	deleteProgressNonBlocking(progress, DeleteProgress{Path: node.Path, Message: verb})

	if err := removeNode(node, permanent); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to delete %s: %v", node.Path, err))
		deleteProgressNonBlocking(progress, DeleteProgress{
			Path:    node.Path,
			Message: fmt.Sprintf("Error deleting %s: %v", node.Path, err),
			IsError: true,
		})
		return
	}

	if node.IsDir {
		result.DirsDeleted++
	} else {
		result.FilesDeleted++
	}
	result.TotalSizeFreed += node.SizeBytes
	deleteProgressNonBlocking(progress, DeleteProgress{Path: node.Path, Message: fmt.Sprintf("Deleted %s", node.Path)})
}

func removeNode(node *domain.FileNode, permanent bool) error {
	if !permanent {
		return moveToTrash(node.Path)
	}
	if node.IsDir {
		return os.RemoveAll(node.Path)
	}
	return os.Remove(node.Path)
}
