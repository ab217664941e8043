//go:build linux

package services

import (
	"io/fs"
	"syscall"
	"time"
)

func statTimes(info fs.FileInfo) (atime, ctime time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	return time.Unix(stat.Atim.Unix()), time.Unix(stat.Ctim.Unix())
}
