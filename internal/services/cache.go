package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"diskcull/internal/domain"
)

const hashCacheVersion = 1
const maxHashCacheBytes = 50 * 1024 * 1024

// Digests persist across runs keyed by path; an entry is valid only
// while the file's size and mtime still match the scanned metadata.

type hashCacheFile struct {
	Version int                       `json:"version"`
	Entries map[string]hashCacheEntry `json:"entries"`
}

type hashCacheEntry struct {
	SizeBytes int64  `json:"sizeBytes"`
	ModTime   int64  `json:"modTime"`
	Digest    string `json:"digest"`
}

func hashCachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "diskcull", "hashes.json"), nil
}

func (finder *FSDuplicates) loadHashCache() error {
	finder.mu.Lock()
	defer finder.mu.Unlock()
	if finder.cacheLoaded || finder.cachePath == "" {
		finder.cacheLoaded = true
		return nil
	}
	info, err := os.Stat(finder.cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			finder.cacheLoaded = true
			return nil
		}
		return err
	}
	if info.Size() > maxHashCacheBytes {
		return fmt.Errorf("hash cache too large")
	}
	data, err := os.ReadFile(finder.cachePath)
	if err != nil {
		return err
	}
	var cached hashCacheFile
	if err := json.Unmarshal(data, &cached); err != nil {
		return err
	}
	if cached.Version != hashCacheVersion {
		return nil
	}
	finder.cacheEntries = cached.Entries
	finder.cacheLoaded = true
	return nil
}

// Validation uses the node's scan-time stat fields, not a fresh stat.
func (finder *FSDuplicates) cachedDigest(node *domain.FileNode) string {
	entry, ok := finder.cacheEntries[node.Path]
	if !ok {
		return ""
	}
	if entry.SizeBytes != node.SizeBytes || entry.ModTime != node.ModTime.UnixNano() {
		return ""
	}
	return entry.Digest
}

func (finder *FSDuplicates) rememberDigest(node *domain.FileNode, digest string) {
	if finder.cacheEntries == nil {
		finder.cacheEntries = make(map[string]hashCacheEntry)
	}
	finder.cacheEntries[node.Path] = hashCacheEntry{
		SizeBytes: node.SizeBytes,
		ModTime:   node.ModTime.UnixNano(),
		Digest:    digest,
	}
	finder.cacheDirty = true
}

func (finder *FSDuplicates) saveHashCache() {
	if !finder.cacheDirty || finder.cachePath == "" {
		return
	}
	file := hashCacheFile{Version: hashCacheVersion, Entries: finder.cacheEntries}
	data, err := json.Marshal(file)
	if err != nil || len(data) > maxHashCacheBytes {
		return
	}
	_ = os.MkdirAll(filepath.Dir(finder.cachePath), 0o755)
	_ = os.WriteFile(finder.cachePath, data, 0o600)
	finder.cacheDirty = false
}
