// Package release parses scene release names into structured metadata.
package release

// Resolution represents the video resolution of a release.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution720p
	Resolution1080p
	Resolution2160p
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// Source represents the media source type of a release.
type Source int

const (
	SourceUnknown Source = iota
	SourceBluRay
	SourceWEBDL
	SourceWEBRip
	SourceHDTV
	SourceDVD
)

func (s Source) String() string {
	switch s {
	case SourceBluRay:
		return "bluray"
	case SourceWEBDL:
		return "webdl"
	case SourceWEBRip:
		return "webrip"
	case SourceHDTV:
		return "hdtv"
	case SourceDVD:
		return "dvd"
	default:
		return unknownStr
	}
}

// Label returns the canonical display form of the source as it appears in
// quality labels ("Bluray-1080p", "WEBDL-720p").
func (s Source) Label() string {
	switch s {
	case SourceBluRay:
		return "Bluray"
	case SourceWEBDL:
		return "WEBDL"
	case SourceWEBRip:
		return "WEBRip"
	case SourceHDTV:
		return "HDTV"
	case SourceDVD:
		return "DVD"
	default:
		return ""
	}
}

// Codec represents the video codec used in a release.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecX264
	CodecX265
	CodecXviD
)

func (c Codec) String() string {
	switch c {
	case CodecX264:
		return "x264"
	case CodecX265:
		return "x265"
	case CodecXviD:
		return "xvid"
	default:
		return unknownStr
	}
}

// Info contains parsed release information.
// All fields hold their zero value when the corresponding token is absent;
// Parse never fails.
type Info struct {
	Title      string
	Year       int
	Resolution Resolution
	Source     Source
	Codec      Codec
	IsUHD      bool // explicit UHD/4K marker was present
	Group      string

	// Normalized title for matching
	CleanTitle string
}
