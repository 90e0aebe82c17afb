// internal/importer/scan.go
package importer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// videoExtensions is the whitelist of importable container formats.
var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".mov": true,
	".wmv": true, ".m4v": true, ".mpg": true, ".mpeg": true,
	".ts": true, ".webm": true, ".flv": true,
}

// sampleIndicators mark promotional files that are never imported.
var sampleIndicators = []string{"sample", "trailer", "preview", "proof", "extra"}

// SourceFile is a video file discovered under the import source.
type SourceFile struct {
	Path   string
	Size   int64
	Device uint64 // filesystem device id, 0 when unavailable
}

// IsVideoFile reports whether the path has a whitelisted video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// isSample reports whether a filename looks like a sample or trailer.
func isSample(name string) bool {
	lower := strings.ToLower(name)
	for _, ind := range sampleIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// ScanSource walks root and returns importable video files. A single file
// path is accepted as well as a directory. Sample files and files below
// minSize are skipped. Returns ErrSourceUnavailable when root does not
// exist or cannot be read.
func ScanSource(root string, minSize int64) ([]SourceFile, error) {
	rootInfo, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, root, err)
	}

	if !rootInfo.IsDir() {
		if !IsVideoFile(root) || isSample(rootInfo.Name()) || rootInfo.Size() < minSize {
			return nil, nil
		}
		return []SourceFile{{Path: root, Size: rootInfo.Size(), Device: deviceID(rootInfo)}}, nil
	}

	var files []SourceFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // unreadable subtree, keep walking
		}
		if d.IsDir() {
			return nil
		}
		if !IsVideoFile(path) || isSample(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() < minSize {
			return nil
		}
		files = append(files, SourceFile{Path: path, Size: info.Size(), Device: deviceID(info)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, root, err)
	}

	return files, nil
}

// rootDevice resolves the device id for dir, walking up to the nearest
// existing ancestor when dir itself has not been created yet.
func rootDevice(dir string) uint64 {
	for {
		info, err := os.Stat(dir)
		if err == nil {
			return deviceID(info)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return 0
		}
		dir = parent
	}
}
