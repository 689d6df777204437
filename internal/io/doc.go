// Package ioutils provides the file system primitives used to place photos
// in the library.
//
// This package contains functions for:
//   - Copying files without ever overwriting an existing one
//   - Moving files, with a copy-then-delete fallback across devices
//   - Creating directories
//   - Finding the next free "name(n).ext" for a taken destination
//   - Deciding whether two paths are the same file after resolving symlinks
//   - Probing a directory for writability
//
// # File Operations
//
//	// Copy a file; fails if the destination exists
//	err := ioutils.CopyFile("/src/IMG_1.jpg", "/library/2025/06/IMG_1.jpg")
//
//	// Move a file, copying across file systems when needed
//	err := ioutils.MoveFile("/src/IMG_1.jpg", "/library/2025/06/IMG_1.jpg", os.Rename)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/library/2025/06")
//
// # Collision Names
//
//	free, err := ioutils.NextAvailableName("/library/2025/06/IMG_1.jpg", ioutils.Exists)
//	// "/library/2025/06/IMG_1(1).jpg", or (2), (3)... if those are taken
package ioutils
