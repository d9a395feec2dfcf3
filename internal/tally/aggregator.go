// Package tally turns raw survey responses into ranked, deduplicated
// vote-count tallies. Aggregation is recomputed on demand from the response
// set; it holds no state of its own.
package tally

import (
	"sort"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/match"
)

// Aggregate groups responses by normalized text and counts occurrences per
// group. Responses that normalize to the empty string are skipped. The
// returned tallies are in first-seen order with dense ranks assigned by
// descending vote count: ties share a rank and the next rank continues
// sequentially after the tie group (counts [10,10,7] rank [1,1,2]).
func Aggregate(responses []domain.SurveyResponse) domain.TallySet {
	counts := make(map[string]int, len(responses))
	var order []string

	for _, r := range responses {
		text := match.Normalize(r.Text)
		if text == "" {
			continue
		}
		if _, seen := counts[text]; !seen {
			order = append(order, text)
		}
		counts[text]++
	}

	set := domain.TallySet{}
	if len(order) == 0 {
		return set
	}

	set.Tallies = make([]domain.VoteTally, 0, len(order))
	for _, text := range order {
		set.Tallies = append(set.Tallies, domain.VoteTally{
			AnswerID: text,
			Votes:    counts[text],
		})
		set.TotalVotes += counts[text]
	}

	rank(set.Tallies)
	return set
}

// rank assigns dense ranks in place, leaving slice order untouched.
func rank(tallies []domain.VoteTally) {
	byVotes := make([]*domain.VoteTally, len(tallies))
	for i := range tallies {
		byVotes[i] = &tallies[i]
	}
	sort.SliceStable(byVotes, func(i, j int) bool {
		return byVotes[i].Votes > byVotes[j].Votes
	})

	current := 0
	prevVotes := -1
	for _, t := range byVotes {
		if t.Votes != prevVotes {
			current++
			prevVotes = t.Votes
		}
		t.Ranking = current
	}
}

// SortByVotes returns a copy of the tallies sorted by votes descending.
// The sort is stable, so ties keep their aggregation order; this is the
// deterministic candidate order required before answer matching.
func SortByVotes(tallies []domain.VoteTally) []domain.VoteTally {
	sorted := make([]domain.VoteTally, len(tallies))
	copy(sorted, tallies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	return sorted
}
