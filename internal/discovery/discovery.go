// Package discovery lists the files under a source directory.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/saracen/walker"
)

// Discover walks root recursively and returns every regular file below it,
// sorted lexically. Directories, symlinks and other special files are left
// out.
//
// A symlinked root is followed; links below it are not.
//
// Entries that cannot be read are skipped and reported through onError
// (which may be nil); the walk carries on. The returned error is non-nil
// only when root itself cannot be walked.
func Discover(root string, onError func(path string, err error)) ([]string, error) {
	root, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		files []string
	)

	walkFn := func(pathname string, fi os.FileInfo) error {
		if !fi.Mode().IsRegular() {
			return nil
		}
		mu.Lock()
		files = append(files, pathname)
		mu.Unlock()
		return nil
	}

	errorFn := func(pathname string, err error) error {
		if onError != nil {
			mu.Lock()
			onError(pathname, err)
			mu.Unlock()
		}
		return nil
	}

	if err := walker.Walk(root, walkFn, walker.WithErrorCallback(errorFn)); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// resolveRoot returns the link target when root is a symlink, and root
// unchanged otherwise.
func resolveRoot(root string) (string, error) {
	fi, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return root, nil
	}
	return filepath.EvalSymlinks(root)
}
