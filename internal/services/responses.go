package services

import (
	"time"

	"diskcull/internal/domain"
)

type ScanOutcome struct {
	Result   *domain.ScanResult
	Lists    domain.CategoryLists
	Duration time.Duration
}

type DuplicateOutcome struct {
	Groups   map[string][]*domain.FileNode
	Hashed   int
	Failures []string
	Duration time.Duration
}

type DeleteResult struct {
	FilesDeleted   int
	DirsDeleted    int
	TotalSizeFreed int64
	Skipped        int
	Errors         []string
	Message        string
	Duration       time.Duration
}
