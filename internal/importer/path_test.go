package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/curator/pkg/release"
)

func TestBuildDestination(t *testing.T) {
	tests := []struct {
		name     string
		meta     release.Info
		quality  string
		src      string
		wantDir  string
		wantName string
		review   bool
	}{
		{
			name:     "title year quality",
			meta:     release.Info{Title: "Fight Club", Year: 1999},
			quality:  "Bluray-1080p",
			src:      "/downloads/Fight.Club.1999.1080p.BluRay.x264-SPARKS.mkv",
			wantDir:  "Fight Club (1999)",
			wantName: "Fight Club (1999) Bluray-1080p.mkv",
		},
		{
			name:     "no year",
			meta:     release.Info{Title: "Some Documentary"},
			quality:  "WEBDL-1080p",
			src:      "/downloads/doc.mkv",
			wantDir:  "Some Documentary",
			wantName: "Some Documentary WEBDL-1080p.mkv",
		},
		{
			name:     "no quality",
			meta:     release.Info{Title: "Old Film", Year: 1950},
			quality:  "",
			src:      "/downloads/old.avi",
			wantDir:  "Old Film (1950)",
			wantName: "Old Film (1950).avi",
		},
		{
			name:     "empty title falls back to stem",
			meta:     release.Info{Year: 2001},
			quality:  "Bluray-1080p",
			src:      "/downloads/2001.A.Space.Odyssey.1968.mkv",
			wantDir:  "2001.A.Space.Odyssey.1968 (2001)",
			wantName: "2001.A.Space.Odyssey.1968 (2001) Bluray-1080p.mkv",
			review:   true,
		},
		{
			name:     "illegal characters stripped",
			meta:     release.Info{Title: `What/If: Part "One"?`, Year: 2020},
			quality:  "HDTV-720p",
			src:      "/downloads/x.mkv",
			wantDir:  "What If Part One (2020)",
			wantName: "What If Part One (2020) HDTV-720p.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, name, review := BuildDestination(&tt.meta, tt.quality, tt.src)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.review, review)
		})
	}
}
