package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	SurveyResponseRecorded Type = "survey.response.recorded"
	GameGuessAccepted      Type = "game.guess.accepted"
	GameWon                Type = "game.won"
	GameCompleted          Type = "game.completed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// SurveyResponseRecordedPayloadV1 is the typed payload for recorded responses
type SurveyResponseRecordedPayloadV1 struct {
	SurveyID string `json:"survey_id"`
	UserID   string `json:"user_id"`
}

// GuessAcceptedPayloadV1 is the typed payload for accepted guesses
type GuessAcceptedPayloadV1 struct {
	SurveyID string  `json:"survey_id"`
	UserID   string  `json:"user_id"`
	AnswerID string  `json:"answer_id"`
	Votes    int     `json:"votes"`
	Score    float64 `json:"score"`
}

// GameWonPayloadV1 is the typed payload for games reaching the win threshold
type GameWonPayloadV1 struct {
	SurveyID string  `json:"survey_id"`
	UserID   string  `json:"user_id"`
	Score    float64 `json:"score"`
	Guesses  int     `json:"guesses"`
}

// GameCompletedPayloadV1 is the typed payload for games reaching a terminal state
type GameCompletedPayloadV1 struct {
	SurveyID string `json:"survey_id"`
	UserID   string `json:"user_id"`
	Status   string `json:"status"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// handler errors are collected and returned, they do not stop delivery.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
