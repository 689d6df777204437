package ioutils

import (
	"os"
	"path/filepath"
)

// writeProbeName is the marker created by IsDirWritable.
const writeProbeName = ".writability_test"

// IsDirWritable reports whether a new file can be created in dir. It
// creates and immediately removes a marker file.
func IsDirWritable(dir string) bool {
	probe := filepath.Join(dir, writeProbeName)
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
