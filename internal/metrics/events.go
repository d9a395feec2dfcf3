package metrics

import (
	"context"

	"github.com/plurality-game/plurality/internal/event"
)

// SubscribeToEvents registers bus handlers that keep the gameplay counters
// in step with published events.
func SubscribeToEvents(bus event.Bus) {
	bus.Subscribe(event.SurveyResponseRecorded, func(ctx context.Context, e event.Event) error {
		ResponsesRecorded.Inc()
		return nil
	})

	bus.Subscribe(event.GameGuessAccepted, func(ctx context.Context, e event.Event) error {
		GuessesSubmitted.WithLabelValues("accepted").Inc()
		return nil
	})

	bus.Subscribe(event.GameWon, func(ctx context.Context, e event.Event) error {
		GamesWon.Inc()
		return nil
	})

	bus.Subscribe(event.GameCompleted, func(ctx context.Context, e event.Event) error {
		GamesCompleted.Inc()
		return nil
	})
}
