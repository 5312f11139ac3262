package event

import "time"

// Event type identifiers. Convention: "category.action".
const (
	TypeScoreChanged   = "score.changed"
	TypeScoreReset     = "score.reset"
	TypeConfigReloaded = "config.reloaded"

	// TypeAll subscribes a handler to every event type.
	TypeAll = "*"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// ScoreChangedEvent is emitted after a team's score has been incremented.
// Home and Away carry the full pair after the change so subscribers can
// re-render without reading back from the board.
type ScoreChangedEvent struct {
	baseEvent
	BoardID   string // Board that changed
	Team      string // "home" or "away"
	Increment int    // Value that was added (1, 2 or 3)
	Home      int    // Home score after the change
	Away      int    // Away score after the change
}

// NewScoreChangedEvent creates a ScoreChangedEvent.
func NewScoreChangedEvent(boardID, team string, increment, home, away int) ScoreChangedEvent {
	return ScoreChangedEvent{
		baseEvent: newBaseEvent(TypeScoreChanged),
		BoardID:   boardID,
		Team:      team,
		Increment: increment,
		Home:      home,
		Away:      away,
	}
}

// ScoreResetEvent is emitted after both scores have been set back to zero.
type ScoreResetEvent struct {
	baseEvent
	BoardID      string
	PreviousHome int
	PreviousAway int
}

// NewScoreResetEvent creates a ScoreResetEvent.
func NewScoreResetEvent(boardID string, previousHome, previousAway int) ScoreResetEvent {
	return ScoreResetEvent{
		baseEvent:    newBaseEvent(TypeScoreReset),
		BoardID:      boardID,
		PreviousHome: previousHome,
		PreviousAway: previousAway,
	}
}

// ConfigReloadedEvent is emitted when the configuration file changes on disk
// and the new values have been loaded and validated.
type ConfigReloadedEvent struct {
	baseEvent
	Path string // Config file that changed
}

// NewConfigReloadedEvent creates a ConfigReloadedEvent.
func NewConfigReloadedEvent(path string) ConfigReloadedEvent {
	return ConfigReloadedEvent{
		baseEvent: newBaseEvent(TypeConfigReloaded),
		Path:      path,
	}
}
