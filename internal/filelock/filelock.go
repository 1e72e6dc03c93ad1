// Package filelock provides file locking and atomic write operations so that
// exported result files are never observed half written.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
// Returns an error if the lock cannot be acquired.
func (fl *FileLock) Lock() error {
	err := fl.flock.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
// Returns an error if the unlock operation fails.
func (fl *FileLock) Unlock() error {
	err := fl.flock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}

// AtomicBuild lets build produce the file at a temporary path in the target's
// directory, then renames it over path. It serves writers that need a path
// rather than a byte slice, such as a database driver.
//
// The temp file exists and is empty when build is called. It is removed if
// build or any later step fails.
func AtomicBuild(path string, build func(tempPath string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory keeps the rename on one filesystem
	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tempPath)
		}
	}()

	if err := build(tempPath); err != nil {
		return err
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	renamed = true

	return nil
}

// LockAndWrite acquires a lock, performs an atomic write, and releases the lock.
//
// The lock path is derived by appending ".lock" to the target path
// (writing "results.xlsx" uses "results.xlsx.lock"). The lock file is removed
// once the write finishes, successfully or not.
func LockAndWrite(path string, data []byte) error {
	return LockAndBuild(path, func(tempPath string) error {
		return writeSynced(tempPath, data)
	})
}

// LockAndBuild is LockAndWrite for AtomicBuild callers.
func LockAndBuild(path string, build func(tempPath string) error) error {
	lockPath := path + ".lock"
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	lock := NewFileLock(lockPath)

	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() {
		lock.Unlock()
		os.Remove(lockPath)
	}()

	return AtomicBuild(path, build)
}
