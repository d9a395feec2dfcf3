// Package match decides whether a free-text guess names an aggregated
// survey answer. Matching is deterministic and tolerant of minor phrasing
// variation: an exact normalized comparison first, then a token-level
// fallback so "apple" can match a canonical answer like "an apple".
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/plurality-game/plurality/internal/domain"
)

// foldCaser is a package-level Unicode case folder.
// This avoids creating a new caser for each normalization.
var foldCaser = cases.Fold()

// stopWords are dropped from candidate tokens during the fallback match so
// that articles in a canonical answer don't block a single-word guess.
var stopWords = map[string]struct{}{
	"a":   {},
	"the": {},
	"in":  {},
}

// Normalize trims surrounding whitespace and applies Unicode case folding.
// Aggregation and matching both compare through this, so a tally's AnswerID
// is always in normalized form.
func Normalize(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// tokenize splits a normalized candidate on whitespace, commas and slashes.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/'
	})
}

// Matches reports whether a normalized guess names the candidate text.
// Primary rule: normalized equality. Fallback: the guess equals one of the
// candidate's tokens after stop-word removal.
func Matches(normalizedGuess, candidate string) bool {
	c := Normalize(candidate)
	if normalizedGuess == c {
		return true
	}
	for _, tok := range tokenize(c) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if tok == normalizedGuess {
			return true
		}
	}
	return false
}

// Match resolves a raw guess against candidates, returning the first one
// satisfying the primary-or-fallback rule, or nil when none does. It does not
// rank among multiple satisfying candidates; callers wanting deterministic
// resolution of overlapping tokens must sort candidates (by votes descending)
// before calling. Returns domain.ErrEmptyGuess when the guess is empty after
// trimming, without consulting candidates.
func Match(guess string, candidates []domain.VoteTally) (*domain.VoteTally, error) {
	g := Normalize(guess)
	if g == "" {
		return nil, domain.ErrEmptyGuess
	}
	for i := range candidates {
		if Matches(g, candidates[i].AnswerID) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
