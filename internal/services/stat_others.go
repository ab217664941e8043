//go:build !linux

package services

import (
	"io/fs"
	"time"
)

// Access and change times are not portably exposed outside linux, so both
// fall back to the modification time there.
func statTimes(info fs.FileInfo) (atime, ctime time.Time) {
	return info.ModTime(), info.ModTime()
}
