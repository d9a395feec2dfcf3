package match

import (
	"github.com/agnivade/levenshtein"

	"github.com/plurality-game/plurality/internal/domain"
)

// hintSimilarityThreshold is the minimum Levenshtein similarity for a
// rejected guess to earn a "did you mean" hint. Hints never influence the
// accept/reject decision; they are presentation sugar on incorrect guesses.
const hintSimilarityThreshold = 0.75

// Closest returns the candidate answer most similar to the rejected guess,
// or "" when nothing is close enough. Similarity is 1 - distance/maxLen over
// the normalized strings.
func Closest(guess string, candidates []domain.VoteTally) string {
	g := Normalize(guess)
	if g == "" {
		return ""
	}

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := similarity(g, Normalize(c.AnswerID))
		if score >= hintSimilarityThreshold && score < 1.0 && score > bestScore {
			best = c.AnswerID
			bestScore = score
		}
	}
	return best
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
