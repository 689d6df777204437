// Package ioutils provides file system utilities for the photo organizer.
package ioutils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// RenameFunc renames a file. os.Rename is the production implementation;
// tests substitute failures.
type RenameFunc func(oldpath, newpath string) error

// CopyFile copies a file from source to destination.
//
// The destination is created exclusively: if anything already exists at
// dst the copy fails with an error wrapping fs.ErrExist and dst is left
// untouched. Permission bits and the modification time of src are
// carried over. A partially written destination is removed on failure.
//
// Example:
//
//	err := CopyFile("/card/DCIM/IMG_1.jpg", "/library/2025/06/15/IMG_1.jpg")
func CopyFile(src, dst string) (err error) {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := destFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err = destFile.Sync(); err != nil {
		return err
	}

	// Best effort: a library on a file system without mtime support is
	// still a valid copy.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}

// MoveFile moves src to dst using rename.
//
// If rename fails because src and dst live on different devices, the file
// is copied to dst and src is removed afterwards. Any other rename error
// is returned unchanged.
func MoveFile(src, dst string, rename RenameFunc) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !IsCrossDevice(err) {
		return err
	}

	if err := CopyFile(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after cross-device copy: %w", err)
	}
	return nil
}

// IsCrossDevice reports whether err is a rename failure caused by the
// paths being on different file systems.
func IsCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether anything (file, directory or dangling symlink)
// occupies path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
