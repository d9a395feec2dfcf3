package tally

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurality-game/plurality/internal/domain"
)

func responses(texts ...string) []domain.SurveyResponse {
	out := make([]domain.SurveyResponse, len(texts))
	for i, text := range texts {
		out[i] = domain.SurveyResponse{UserID: fmt.Sprintf("user-%d", i), Text: text}
	}
	return out
}

func TestAggregateGroupsByNormalizedText(t *testing.T) {
	set := Aggregate(responses("Dog", "dog", " DOG ", "cat"))

	require.Len(t, set.Tallies, 2)
	assert.Equal(t, 4, set.TotalVotes)

	assert.Equal(t, "dog", set.Tallies[0].AnswerID)
	assert.Equal(t, 3, set.Tallies[0].Votes)
	assert.Equal(t, 1, set.Tallies[0].Ranking)

	assert.Equal(t, "cat", set.Tallies[1].AnswerID)
	assert.Equal(t, 1, set.Tallies[1].Votes)
	assert.Equal(t, 2, set.Tallies[1].Ranking)
}

func TestAggregateSkipsEmptyResponses(t *testing.T) {
	set := Aggregate(responses("", "   ", "dog"))

	require.Len(t, set.Tallies, 1)
	assert.Equal(t, 1, set.TotalVotes)
	assert.Equal(t, "dog", set.Tallies[0].AnswerID)
}

func TestAggregateEmptyInput(t *testing.T) {
	for _, input := range [][]domain.SurveyResponse{nil, {}, responses("", "  ")} {
		set := Aggregate(input)
		assert.Empty(t, set.Tallies)
		assert.Zero(t, set.TotalVotes)
	}
}

func TestAggregateDenseRanking(t *testing.T) {
	// 10 dog, 10 cat, 7 bird: ties share rank 1, bird gets rank 2 (not 3)
	var input []domain.SurveyResponse
	for i := 0; i < 10; i++ {
		input = append(input, responses("dog")...)
		input = append(input, responses("cat")...)
	}
	for i := 0; i < 7; i++ {
		input = append(input, responses("bird")...)
	}

	set := Aggregate(input)
	require.Len(t, set.Tallies, 3)
	assert.Equal(t, 27, set.TotalVotes)

	ranks := map[string]int{}
	for _, tally := range set.Tallies {
		ranks[tally.AnswerID] = tally.Ranking
	}
	assert.Equal(t, 1, ranks["dog"])
	assert.Equal(t, 1, ranks["cat"])
	assert.Equal(t, 2, ranks["bird"])
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	set := Aggregate(responses("cat", "dog", "dog", "cat", "bird"))

	require.Len(t, set.Tallies, 3)
	assert.Equal(t, "cat", set.Tallies[0].AnswerID)
	assert.Equal(t, "dog", set.Tallies[1].AnswerID)
	assert.Equal(t, "bird", set.Tallies[2].AnswerID)
}

func TestAggregateDeterministic(t *testing.T) {
	input := responses("dog", "cat", "dog", "bird", "cat", "dog")

	first := Aggregate(input)
	second := Aggregate(input)
	assert.Equal(t, first, second)
}

func TestSortByVotes(t *testing.T) {
	tallies := []domain.VoteTally{
		{AnswerID: "bird", Votes: 2},
		{AnswerID: "dog", Votes: 9},
		{AnswerID: "cat", Votes: 9},
	}

	sorted := SortByVotes(tallies)

	require.Len(t, sorted, 3)
	assert.Equal(t, "dog", sorted[0].AnswerID)
	assert.Equal(t, "cat", sorted[1].AnswerID) // stable: dog before cat, both 9 votes
	assert.Equal(t, "bird", sorted[2].AnswerID)

	// original order untouched
	assert.Equal(t, "bird", tallies[0].AnswerID)
}
