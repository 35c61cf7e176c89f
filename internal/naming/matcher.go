package naming

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Candidate is a pre-split comparison target
type Candidate struct {
	Text  string
	runes []string
}

// NewCandidate splits text into per-character tokens once so it can be compared repeatedly
func NewCandidate(text string) Candidate {
	return Candidate{Text: text, runes: splitRunes(text)}
}

// Similarity returns the difflib ratio 2*M/T between two strings
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// Closest returns the index of the candidate most similar to query with a ratio of at least cutoff.
// Cheaper upper bounds are checked before the full ratio. Ties keep the earliest candidate.
func Closest(query string, candidates []Candidate, cutoff float64) (int, float64, bool) {
	if len(candidates) == 0 {
		return -1, 0, false
	}

	m := difflib.NewMatcher(nil, splitRunes(query))
	best, bestScore := -1, 0.0

	for i, c := range candidates {
		m.SetSeq1(c.runes)
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	return best, bestScore, best >= 0
}

func splitRunes(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "")
}
