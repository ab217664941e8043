package services

import (
	"sort"
	"strings"
	"time"

	"diskcull/internal/domain"
)

func LargeFiles(files []*domain.FileNode, minMB int64) []*domain.FileNode {
	minBytes := minMB * 1000 * 1000
	var out []*domain.FileNode
	for _, f := range files {
		if f.SizeBytes > minBytes {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SizeBytes > out[j].SizeBytes
	})
	return out
}

func OldFiles(files []*domain.FileNode, maxDays int) []*domain.FileNode {
	cutoff := time.Now().Add(-time.Duration(maxDays) * 24 * time.Hour)
	var out []*domain.FileNode
	for _, f := range files {
		if f.ModTime.Before(cutoff) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModTime.Before(out[j].ModTime)
	})
	return out
}

func UnaccessedFiles(files []*domain.FileNode, maxDays int, fallbackToModTime bool) []*domain.FileNode {
	cutoff := time.Now().Add(-time.Duration(maxDays) * 24 * time.Hour)
	var out []*domain.FileNode
	for _, f := range files {
		accessed := f.AccessTime
		if fallbackToModTime && f.AccessTime.Before(f.ModTime) {
			accessed = f.ModTime
		}
		if accessed.Before(cutoff) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AccessTime.Before(out[j].AccessTime)
	})
	return out
}

func JunkEntries(result *domain.ScanResult, opts domain.FilterOptions) []*domain.FileNode {
	exts := toSet(opts.JunkExtensions)
	filenames := toSet(opts.JunkFilenames)
	dirnames := toSet(opts.JunkDirnames)

	var junk []*domain.FileNode
	for _, node := range result.AllNodes {
		if node.IsDir {
			if _, ok := dirnames[strings.ToLower(node.Name)]; ok {
				junk = append(junk, node)
			}
			continue
		}
		if _, ok := exts[node.Ext]; ok {
			junk = append(junk, node)
			continue
		}
		if _, ok := filenames[strings.ToLower(node.Name)]; ok {
			junk = append(junk, node)
		}
	}
	sort.Slice(junk, func(i, j int) bool {
		if junk[i].SizeBytes != junk[j].SizeBytes {
			return junk[i].SizeBytes > junk[j].SizeBytes
		}
		return junk[i].Path < junk[j].Path
	})
	return junk
}

func ZeroByteFiles(files []*domain.FileNode) []*domain.FileNode {
	var out []*domain.FileNode
	for _, f := range files {
		if f.SizeBytes == 0 {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

func EmptyDirs(dirs []*domain.FileNode) []*domain.FileNode {
	var out []*domain.FileNode
	for _, d := range dirs {
		if len(d.Children) == 0 {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
