package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"diskcull/internal/domain"
)

const (
	configDirName  = "diskcull"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	filters := domain.DefaultFilterOptions()
	return Config{
		Path:           ".",
		SkipSymlinks:   true,
		LargeFileMB:    filters.LargeMinMB,
		OldFileDays:    filters.OldAfterDays,
		UnaccessedDays: filters.UnaccessedAfterDays,
		ATimeFallback:  filters.ATimeFallback,
		JunkExtensions: filters.JunkExtensions,
		JunkFilenames:  filters.JunkFilenames,
		JunkDirnames:   filters.JunkDirnames,
		SortMode:       domain.SortBySize,
		Theme:          "dark",
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.Path != nil {
		merged.Path = *stored.Path
	}
	if stored.SkipSymlinks != nil {
		merged.SkipSymlinks = *stored.SkipSymlinks
	}
	if stored.LargeFileMB != nil {
		merged.LargeFileMB = *stored.LargeFileMB
	}
	if stored.OldFileDays != nil {
		merged.OldFileDays = *stored.OldFileDays
	}
	if stored.UnaccessedDays != nil {
		merged.UnaccessedDays = *stored.UnaccessedDays
	}
	if stored.ATimeFallback != nil {
		merged.ATimeFallback = *stored.ATimeFallback
	}
	if stored.JunkExtensions != nil {
		merged.JunkExtensions = stored.JunkExtensions
	}
	if stored.JunkFilenames != nil {
		merged.JunkFilenames = stored.JunkFilenames
	}
	if stored.JunkDirnames != nil {
		merged.JunkDirnames = stored.JunkDirnames
	}
	if stored.SortMode != nil {
		merged.SortMode = domainSortMode(*stored.SortMode, base.SortMode)
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	return merged
}

func domainSortMode(value string, fallback domain.SortMode) domain.SortMode {
	switch domain.SortMode(value) {
	case domain.SortByName, domain.SortByMod, domain.SortBySize:
		return domain.SortMode(value)
	default:
		return fallback
	}
}
