// internal/importer/path.go
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vmunix/curator/pkg/release"
)

// BuildDestination derives the library-relative directory and filename for a
// parsed release: "Title (Year)/Title (Year) Quality.ext". The source
// extension is preserved byte for byte. When the parsed title sanitizes to
// nothing, the source filename stem is used instead and the entry is flagged
// for review.
func BuildDestination(meta *release.Info, quality, srcPath string) (dir, name string, needsReview bool) {
	title := SanitizeFilename(meta.Title)
	if title == "" {
		base := filepath.Base(srcPath)
		title = SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base)))
		needsReview = true
	}

	dir = title
	if meta.Year > 0 {
		dir = fmt.Sprintf("%s (%d)", title, meta.Year)
	}

	stem := dir
	if quality != "" {
		stem += " " + quality
	}
	name = stem + filepath.Ext(srcPath)

	return dir, name, needsReview
}
