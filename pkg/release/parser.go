package release

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// videoExtensions are the container extensions stripped before tokenizing.
// Anything else is treated as part of the release name.
var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".mov": true,
	".wmv": true, ".m4v": true, ".mpg": true, ".mpeg": true,
	".ts": true, ".webm": true, ".flv": true,
}

// groupSuffix captures a trailing release group, optionally followed by a
// bracketed tracker tag: "x264-SPARKS", "x265-TERMiNAL[rartv]".
var groupSuffix = regexp.MustCompile(`-([A-Za-z0-9]{2,})(?:\[[^\]]*\])?$`)

var resolutionTokens = map[string]Resolution{
	"480p":  Resolution480p,
	"720p":  Resolution720p,
	"1080p": Resolution1080p,
	"2160p": Resolution2160p,
	"4k":    Resolution2160p,
	"uhd":   Resolution2160p,
}

var sourceTokens = map[string]Source{
	"bluray":  SourceBluRay,
	"blu-ray": SourceBluRay,
	"bdrip":   SourceBluRay,
	"brrip":   SourceBluRay,
	"remux":   SourceBluRay,
	"web-dl":  SourceWEBDL,
	"webdl":   SourceWEBDL,
	"web":     SourceWEBDL,
	"webrip":  SourceWEBRip,
	"web-rip": SourceWEBRip,
	"hdtv":    SourceHDTV,
	"dvdrip":  SourceDVD,
	"dvd":     SourceDVD,
}

var codecTokens = map[string]Codec{
	"x264":  CodecX264,
	"h264":  CodecX264,
	"h.264": CodecX264,
	"avc":   CodecX264,
	"x265":  CodecX265,
	"h265":  CodecX265,
	"h.265": CodecX265,
	"hevc":  CodecX265,
	"xvid":  CodecXviD,
	"divx":  CodecXviD,
}

// Parse extracts release metadata from a filename or release name.
// It never fails: unrecognized input yields zero values and the raw name
// as the title. Separators (dots, underscores) are normalized to spaces,
// the first plausible 4-digit year wins, and quality vocabulary matching
// is case-insensitive.
func Parse(name string) *Info {
	stem := filepath.Base(name)
	if ext := strings.ToLower(filepath.Ext(stem)); videoExtensions[ext] {
		stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	}

	info := &Info{}
	stem = extractGroup(stem, info)

	normalized := strings.NewReplacer(".", " ", "_", " ").Replace(stem)
	tokens := strings.Fields(normalized)

	yearIdx := -1
	firstQualityIdx := -1
	maxYear := time.Now().Year() + 1

	for i, tok := range tokens {
		bare := strings.Trim(tok, "()[]{}")
		lower := strings.ToLower(bare)

		if yearIdx < 0 {
			if y, ok := parseYear(bare, maxYear); ok {
				info.Year = y
				yearIdx = i
				continue
			}
		}

		quality := false
		for _, part := range tokenParts(lower) {
			if res, ok := resolutionTokens[part]; ok {
				quality = true
				if info.Resolution == ResolutionUnknown {
					info.Resolution = res
				}
				if part == "uhd" {
					info.IsUHD = true
				}
			}
			if src, ok := sourceTokens[part]; ok {
				quality = true
				if info.Source == SourceUnknown {
					info.Source = src
				}
			}
			if codec, ok := codecTokens[part]; ok {
				quality = true
				if info.Codec == CodecUnknown {
					info.Codec = codec
				}
			}
		}
		if quality && firstQualityIdx < 0 {
			firstQualityIdx = i
		}
	}

	// Title is everything before the year; without a year, everything
	// before the first quality token; with neither, the whole name.
	end := len(tokens)
	if yearIdx >= 0 {
		end = yearIdx
	} else if firstQualityIdx >= 0 {
		end = firstQualityIdx
	}
	info.Title = strings.Join(tokens[:end], " ")
	info.CleanTitle = CleanTitle(info.Title)

	return info
}

// extractGroup strips and records a trailing "-GROUP" suffix. The suffix is
// rejected when it would swallow part of a quality token ("WEB-DL",
// "Bluray-1080p"), and when the name carries no quality vocabulary at all:
// release groups follow quality markers, so a plain hyphenated title
// ("Spider-Man") keeps its suffix.
func extractGroup(stem string, info *Info) string {
	fields := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '.' || r == '_' || r == ' '
	})
	if len(fields) == 0 {
		return stem
	}
	last := fields[len(fields)-1]

	m := groupSuffix.FindStringSubmatch(last)
	if m == nil {
		return stem
	}
	if isVocabToken(strings.ToLower(last)) || isVocabToken(strings.ToLower(m[1])) {
		return stem
	}

	fields[len(fields)-1] = strings.TrimSuffix(last, m[0])
	if !hasVocabToken(fields) {
		return stem
	}

	info.Group = m[1]
	return strings.TrimSuffix(stem, m[0])
}

// hasVocabToken reports whether any field matches the quality, source, or
// codec vocabularies, including hyphen-fused forms.
func hasVocabToken(fields []string) bool {
	for _, f := range fields {
		for _, part := range tokenParts(strings.ToLower(f)) {
			if isVocabToken(part) {
				return true
			}
		}
	}
	return false
}

func isVocabToken(tok string) bool {
	if _, ok := resolutionTokens[tok]; ok {
		return true
	}
	if _, ok := sourceTokens[tok]; ok {
		return true
	}
	if _, ok := codecTokens[tok]; ok {
		return true
	}
	return false
}

// tokenParts returns the token itself plus its hyphen-split parts, so fused
// tokens like "Bluray-1080p" match both vocabularies.
func tokenParts(tok string) []string {
	parts := []string{tok}
	if strings.Contains(tok, "-") {
		parts = append(parts, strings.Split(tok, "-")...)
	}
	return parts
}

// parseYear reports whether tok is a plausible release year: exactly four
// digits, starting 19 or 20, within [1900, current year + 1].
func parseYear(tok string, maxYear int) (int, bool) {
	if len(tok) != 4 {
		return 0, false
	}
	if !strings.HasPrefix(tok, "19") && !strings.HasPrefix(tok, "20") {
		return 0, false
	}
	year := 0
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	if year < 1900 || year > maxYear {
		return 0, false
	}
	return year, true
}
