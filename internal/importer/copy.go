// internal/importer/copy.go
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// ensureDir creates the destination directory. Failures wrap
// ErrDestUnavailable so the executor can resolve them as skips rather than
// failed imports.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrDestUnavailable, err)
	}
	return nil
}

// copyFile copies src to dst. The destination directory must already exist
// (see ensureDir). An existing dst is replaced. Partial files are removed
// on error.
func copyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	size, err := io.Copy(dstFile, srcFile)
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}

	return size, nil
}

// linkFile hardlinks src to dst. The destination directory must already
// exist (see ensureDir). An existing dst is removed first so re-imports of
// a replaced file succeed. Returns ErrLinkFailed wrapping the syscall
// error; callers fall back to copy on cross-device failures.
func linkFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("%w: remove stale destination: %v", ErrLinkFailed, err)
		}
	}

	if err := os.Link(src, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrLinkFailed, err)
	}
	return nil
}

// isCrossDevice reports whether err is a cross-device link failure (EXDEV).
// The planner decides by device id, but bind mounts can share a device id
// while still refusing hardlinks.
func isCrossDevice(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.EXDEV
}
