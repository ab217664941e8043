package ui

import "diskcull/internal/services"

type startScanMsg struct{}

type scanResultMsg struct {
	seq     int
	outcome services.ScanOutcome
	err     error
}

type scanProgressMsg struct {
	seq      int
	progress services.ScanProgress
}

type duplicateResultMsg struct {
	outcome services.DuplicateOutcome
	err     error
}

type duplicateProgressMsg struct {
	progress services.DuplicateProgress
}

type deleteResultMsg struct {
	result services.DeleteResult
	err    error
}

type deleteProgressMsg struct {
	progress services.DeleteProgress
}
