package stats

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected payload type for event"
)

// Error context strings
const (
	ErrContextRecordWin      = "failed to record win"
	ErrContextGetLeaderboard = "failed to get leaderboard"
)
