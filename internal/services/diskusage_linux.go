//go:build linux

package services

import "syscall"

func DriveUsage(path string) (total, used, free uint64) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, 0
	}
	blockSize := uint64(stat.Bsize)
	total = stat.Blocks * blockSize
	used = (stat.Blocks - stat.Bfree) * blockSize
	free = stat.Bavail * blockSize
	return total, used, free
}
