package handler

import (
	"net/http"

	"github.com/plurality-game/plurality/internal/domain"
	"github.com/plurality-game/plurality/internal/stats"
)

// LeaderboardResponse wraps the win leaderboard entries
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleGetLeaderboard handles GET requests for the all-time win leaderboard
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := GetOptionalIntQueryParam(r, "limit", 0)

		entries, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
