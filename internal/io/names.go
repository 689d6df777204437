package ioutils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExistsFunc reports whether a path is taken.
type ExistsFunc func(path string) (bool, error)

// NextAvailableName returns the first free variant of path, formed by
// inserting "(n)" before the extension with n counting up from 1.
//
//	photos/IMG_1.jpg        -> photos/IMG_1(1).jpg
//	photos/photo.backup.jpg -> photos/photo.backup(1).jpg
//	photos/raw              -> photos/raw(1)
//	photos/.hidden          -> photos/.hidden(1)
//
// path itself is not checked; callers reach for this once they know it
// is taken.
func NextAvailableName(path string, exists ExistsFunc) (string, error) {
	for n := 1; ; n++ {
		candidate := SuffixedName(path, n)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// SuffixedName returns path with "(n)" inserted before its extension.
func SuffixedName(path string, n int) string {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	if ext == name {
		// ".hidden" is a stem, not an extension.
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)
	return dir + fmt.Sprintf("%s(%d)%s", stem, n, ext)
}

// Canonical resolves path to an absolute path with every symlink
// evaluated. The path must exist.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// SameFile reports whether a and b canonicalize to the same path. If
// either cannot be resolved (typically because it does not exist yet),
// they are not the same file.
func SameFile(a, b string) bool {
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}
	return ca == cb
}
