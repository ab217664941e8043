package config

import "diskcull/internal/domain"

type Config struct {
	Path           string          `json:"path"`
	SkipSymlinks   bool            `json:"skipSymlinks"`
	LargeFileMB    int64           `json:"largeFileMb"`
	OldFileDays    int             `json:"oldFileDays"`
	UnaccessedDays int             `json:"unaccessedDays"`
	ATimeFallback  bool            `json:"atimeFallback"`
	JunkExtensions []string        `json:"junkExtensions"`
	JunkFilenames  []string        `json:"junkFilenames"`
	JunkDirnames   []string        `json:"junkDirnames"`
	SortMode       domain.SortMode `json:"sortMode"`
	Theme          string          `json:"theme"`
	Demo           bool            `json:"-"`
}

type fileConfig struct {
	Path           *string  `json:"path"`
	SkipSymlinks   *bool    `json:"skipSymlinks"`
	LargeFileMB    *int64   `json:"largeFileMb"`
	OldFileDays    *int     `json:"oldFileDays"`
	UnaccessedDays *int     `json:"unaccessedDays"`
	ATimeFallback  *bool    `json:"atimeFallback"`
	JunkExtensions []string `json:"junkExtensions"`
	JunkFilenames  []string `json:"junkFilenames"`
	JunkDirnames   []string `json:"junkDirnames"`
	SortMode       *string  `json:"sortMode"`
	Theme          *string  `json:"theme"`
}

func (config Config) FilterOptions() domain.FilterOptions {
	return domain.FilterOptions{
		LargeMinMB:          config.LargeFileMB,
		OldAfterDays:        config.OldFileDays,
		UnaccessedAfterDays: config.UnaccessedDays,
		ATimeFallback:       config.ATimeFallback,
		JunkExtensions:      config.JunkExtensions,
		JunkFilenames:       config.JunkFilenames,
		JunkDirnames:        config.JunkDirnames,
	}
}
