// internal/importer/errors.go
package importer

import "errors"

var (
	// ErrSourceUnavailable indicates the source path is missing or unreadable.
	ErrSourceUnavailable = errors.New("source path unavailable")

	// ErrDestUnavailable indicates the destination directory could not be
	// created (permission denied, or a non-directory entry occupies the path).
	ErrDestUnavailable = errors.New("destination unavailable")

	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrLinkFailed indicates the hardlink syscall failed.
	ErrLinkFailed = errors.New("failed to create hardlink")

	// ErrPathTraversal indicates a generated path would escape the library root.
	ErrPathTraversal = errors.New("path traversal detected")
)
