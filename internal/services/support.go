package services

import (
	"errors"
	"os"
	"path/filepath"
)

type ScanProgress struct {
	Path       string
	Phase      string
	ErrMessage string
	Completed  bool
}

type DuplicateProgress struct {
	Current   int
	Total     int
	Completed bool
}

type DeleteProgress struct {
	Path      string
	Message   string
	IsError   bool
	Completed bool
}

type ProgressProvider interface {
	Progress() <-chan ScanProgress
}

type DuplicateProgressProvider interface {
	DuplicateProgress() <-chan DuplicateProgress
}

type DeleteProgressProvider interface {
	DeleteProgress() <-chan DeleteProgress
}

func progressNonBlocking(ch chan<- ScanProgress, msg ScanProgress) {
	select {
	case ch <- msg:
	default:
	}
}

func duplicateProgressNonBlocking(ch chan<- DuplicateProgress, msg DuplicateProgress) {
	select {
	case ch <- msg:
	default:
	}
}

func deleteProgressNonBlocking(ch chan<- DeleteProgress, msg DeleteProgress) {
	select {
	case ch <- msg:
	default:
	}
}

func cleanPath(path string) string {
	if path == "" {
		return path
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}

func isPermissionErr(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

func errKind(err error) string {
	switch {
	case errors.Is(err, os.ErrPermission):
		return "Permission Denied"
	case errors.Is(err, os.ErrNotExist):
		return "Not Found"
	default:
		return "I/O Error"
	}
}
