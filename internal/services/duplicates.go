package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"diskcull/internal/domain"
)

type FSDuplicates struct {
	mu       sync.RWMutex
	progress chan DuplicateProgress

	cachePath    string
	cacheEntries map[string]hashCacheEntry
	cacheLoaded  bool
	cacheDirty   bool
}

func NewFSDuplicates() *FSDuplicates {
	path, _ := hashCachePath()
	return &FSDuplicates{cachePath: path}
}

func (finder *FSDuplicates) DuplicateProgress() <-chan DuplicateProgress {
	finder.mu.RLock()
	defer finder.mu.RUnlock()
	return finder.progress
}

func (finder *FSDuplicates) setProgress(progress chan DuplicateProgress) {
	finder.mu.Lock()
	defer finder.mu.Unlock()
	finder.progress = progress
}

func (finder *FSDuplicates) Find(ctx context.Context, req DuplicateRequest) (DuplicateOutcome, error) {
	start := time.Now()

	// Size is a cheap pre-filter: only files sharing a size can share
	// content, and empty files are never reported.
	bySize := make(map[int64][]*domain.FileNode)
	for _, f := range req.Files {
		if f.SizeBytes == 0 {
			continue
		}
		bySize[f.SizeBytes] = append(bySize[f.SizeBytes], f)
	}

	var candidates []*domain.FileNode
	for _, group := range bySize {
		if len(group) > 1 {
			candidates = append(candidates, group...)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Path < candidates[j].Path
	})

	_ = finder.loadHashCache()

	progress := make(chan DuplicateProgress, 64)
	finder.setProgress(progress)
	defer close(progress)

	outcome := DuplicateOutcome{Groups: make(map[string][]*domain.FileNode)}
	byHash := make(map[string][]*domain.FileNode)
	total := len(candidates)
	for i, f := range candidates {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return DuplicateOutcome{}, ctxErr
		}
		duplicateProgressNonBlocking(progress, DuplicateProgress{Current: i + 1, Total: total})

		digest := f.HashSHA256
		if digest == "" {
			digest = finder.cachedDigest(f)
		}
		if digest == "" {
			var hashErr error
			digest, hashErr = hashFile(f.Path)
			if hashErr != nil {
				outcome.Failures = append(outcome.Failures, fmt.Sprintf("%s: %v", f.Path, hashErr))
				continue
			}
			finder.rememberDigest(f, digest)
		}
		f.HashSHA256 = digest
		outcome.Hashed++
		byHash[digest] = append(byHash[digest], f)
	}

	for digest, group := range byHash {
		if len(group) > 1 {
			outcome.Groups[digest] = group
		}
	}

	finder.saveHashCache()
	outcome.Duration = time.Since(start)
	return outcome, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, 64*1024)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
