package services

import "diskcull/internal/domain"

type ScanRequest struct {
	RootPath        string
	IncludeSymlinks bool
	Filters         domain.FilterOptions
}

type DuplicateRequest struct {
	Files []*domain.FileNode
}

type DeleteRequest struct {
	Nodes     []*domain.FileNode
	Permanent bool
}
