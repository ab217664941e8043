package config

import "flag"

func ParseFlags(base Config) Config {
	path := flag.String("path", base.Path, "Initial path to scan")
	skipSymlinks := flag.Bool("skip-symlinks", base.SkipSymlinks, "Skip symbolic links while scanning")
	largeMB := flag.Int64("large-mb", base.LargeFileMB, "Large file threshold in MB")
	oldDays := flag.Int("old-days", base.OldFileDays, "Age in days before a file counts as old")
	unaccessedDays := flag.Int("unaccessed-days", base.UnaccessedDays, "Days without access before a file counts as unaccessed")
	sortMode := flag.String("sort", string(base.SortMode), "Sort mode: size, name or mod")
	theme := flag.String("theme", base.Theme, "Color theme: dark or light")
	demo := flag.Bool("demo", false, "Browse a canned tree without touching the disk")
	flag.Parse()

	base.Path = *path
	base.SkipSymlinks = *skipSymlinks
	base.LargeFileMB = *largeMB
	base.OldFileDays = *oldDays
	base.UnaccessedDays = *unaccessedDays
	base.SortMode = domainSortMode(*sortMode, base.SortMode)
	base.Theme = *theme
	base.Demo = *demo

	if flag.NArg() > 0 {
		base.Path = flag.Arg(0)
	}
	return base
}
