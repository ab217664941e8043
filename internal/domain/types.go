package domain

type SortMode string

const (
	SortBySize SortMode = "size"
	SortByName SortMode = "name"
	SortByMod  SortMode = "mod"
)

type FilterOptions struct {
	LargeMinMB          int64
	OldAfterDays        int
	UnaccessedAfterDays int
	ATimeFallback       bool
	JunkExtensions      []string
	JunkFilenames       []string
	JunkDirnames        []string
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		LargeMinMB:          100,
		OldAfterDays:        365,
		UnaccessedAfterDays: 365,
		ATimeFallback:       true,
		JunkExtensions: []string{
			".tmp", ".temp", ".log", ".cache", ".bak", ".old", ".thumbcache",
			".swp", ".swo", ".swn",
		},
		JunkFilenames: []string{"thumbs.db", "desktop.ini", ".ds_store"},
		JunkDirnames: []string{
			"__pycache__", "node_modules", ".pytest_cache", ".cache", "pip_cache",
		},
	}
}

// Normalized fills unset thresholds and empty junk sets from the defaults.
func (options FilterOptions) Normalized() FilterOptions {
	defaults := DefaultFilterOptions()
	if options.LargeMinMB <= 0 {
		options.LargeMinMB = defaults.LargeMinMB
	}
	if options.OldAfterDays <= 0 {
		options.OldAfterDays = defaults.OldAfterDays
	}
	if options.UnaccessedAfterDays <= 0 {
		options.UnaccessedAfterDays = defaults.UnaccessedAfterDays
	}
	if options.JunkExtensions == nil {
		options.JunkExtensions = defaults.JunkExtensions
	}
	if options.JunkFilenames == nil {
		options.JunkFilenames = defaults.JunkFilenames
	}
	if options.JunkDirnames == nil {
		options.JunkDirnames = defaults.JunkDirnames
	}
	return options
}

type CategoryLists struct {
	AllFiles  []*FileNode
	Large     []*FileNode
	Old       []*FileNode
	Junk      []*FileNode
	ZeroEmpty []*FileNode
}
