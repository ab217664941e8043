package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

func moveToTrash(path string) error {
	filesDir, infoDir, err := trashDirs()
	if err != nil {
		return err
	}

	// The .trashinfo file is written first with O_EXCL, which reserves
	// the name inside files/ before anything moves.
	name, infoPath, err := writeTrashInfo(infoDir, filepath.Base(path), path)
	if err != nil {
		return err
	}

	target := filepath.Join(filesDir, name)
	if err := os.Rename(path, target); err != nil {
		if errors.Is(err, syscall.EXDEV) {
			if copyErr := copyAcrossDevices(path, target); copyErr != nil {
				_ = os.Remove(infoPath)
				return copyErr
			}
			return nil
		}
		_ = os.Remove(infoPath)
		return err
	}
	return nil
}

func trashDirs() (string, string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	filesDir := filepath.Join(dataHome, "Trash", "files")
	infoDir := filepath.Join(dataHome, "Trash", "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return "", "", err
	}
	return filesDir, infoDir, nil
}

func writeTrashInfo(infoDir, base, original string) (string, string, error) {
	name := base
	for attempt := 2; ; attempt++ {
		infoPath := filepath.Join(infoDir, name+".trashinfo")
		file, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			_, writeErr := fmt.Fprintf(file, "[Trash Info]\nPath=%s\nDeletionDate=%s\n",
				original, time.Now().Format("2006-01-02T15:04:05"))
			closeErr := file.Close()
			if writeErr != nil {
				_ = os.Remove(infoPath)
				return "", "", writeErr
			}
			if closeErr != nil {
				_ = os.Remove(infoPath)
				return "", "", closeErr
			}
			return name, infoPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		if attempt > 10000 {
			return "", "", fmt.Errorf("too many trash entries named %s", base)
		}
		name = fmt.Sprintf("%s.%d", base, attempt)
	}
}

func copyAcrossDevices(source, target string) error {
	info, err := os.Lstat(source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := copyTree(source, target, info.Mode()); err != nil {
			return err
		}
		return os.RemoveAll(source)
	}
	if err := copyRegular(source, target, info); err != nil {
		return err
	}
	return os.Remove(source)
}

func copyTree(source, target string, mode os.FileMode) error {
	if err := os.MkdirAll(target, mode.Perm()); err != nil {
		return err
	}
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		outPath := filepath.Join(target, rel)
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return os.MkdirAll(outPath, info.Mode().Perm())
		}
		return copyRegular(path, outPath, info)
	})
}

func copyRegular(source, target string, info os.FileInfo) error {
	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(output, input); err != nil {
		_ = output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return err
	}
	_ = os.Chtimes(target, time.Now(), info.ModTime())
	return nil
}
