package match

import (
	"strings"
	"unicode"
)

// MinSimilarity is the lowest normalized similarity Closest accepts.
const MinSimilarity = 0.5

// Normalize folds case and drops '_', '-' and spaces, so "Re-Cord" and
// "record" compare equal.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// Closest returns the candidate most similar to name after normalization.
// Ties keep the earlier candidate. It reports false when no candidate
// reaches MinSimilarity.
func Closest(name string, candidates []string) (string, bool) {
	norm := Normalize(name)

	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
