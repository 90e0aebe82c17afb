package release

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// MatchConfidence represents the confidence level of a fuzzy match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of matching a name against candidates.
type MatchResult struct {
	Name       string          // The matched candidate
	Score      float64         // Jaro-Winkler similarity score (0.0-1.0)
	Confidence MatchConfidence // Confidence level based on score
}

// MatchTitle finds the best candidate for a parsed title. Both sides are
// normalized with CleanTitle before comparison, so accents, articles, and
// punctuation don't affect the score. Jaro-Winkler favors prefix matches,
// which suits media titles.
func MatchTitle(parsed string, candidates []string) MatchResult {
	normalized := CleanTitle(parsed)
	return bestMatch(normalized, candidates, CleanTitle)
}

// MatchGroup finds the best candidate for a release group name. Groups are
// compared case-folded without further normalization; "SPARKs" and "sparks"
// fold onto "SPARKS".
func MatchGroup(name string, candidates []string) MatchResult {
	fold := func(s string) string { return strings.ToUpper(s) }
	return bestMatch(fold(name), candidates, fold)
}

func bestMatch(normalized string, candidates []string, fold func(string) string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if normalized == "" {
		return best
	}

	for _, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(normalized, fold(candidate)))
		if score > best.Score {
			best.Name = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Name = ""
	}

	return best
}
