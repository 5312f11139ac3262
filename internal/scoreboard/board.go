// Package scoreboard holds the scoreboard container: the only stateful
// component, owning the home and away counters.
//
// A Board never talks to a view. After each mutation it publishes an
// event on its bus and surfaces re-render from the published snapshot.
package scoreboard

import (
	"sync"

	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/google/uuid"
)

// Board owns the two independent score counters. Both start at zero and
// live only as long as the Board. It is safe for concurrent use.
type Board struct {
	id     string
	bus    *event.Bus
	logger *logging.Logger

	mu   sync.Mutex
	home int
	away int
}

// Option configures a Board.
type Option func(*Board)

// WithBus publishes change events on bus instead of a private one.
func WithBus(bus *event.Bus) Option {
	return func(b *Board) {
		if bus != nil {
			b.bus = bus
		}
	}
}

// WithLogger sets the logger used for score changes.
func WithLogger(logger *logging.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a Board with both scores at zero.
func New(opts ...Option) *Board {
	b := &Board{
		id:     uuid.NewString(),
		bus:    event.NewBus(),
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.WithSession(b.id).WithComponent("board")
	return b
}

// ID returns the board's session identifier.
func (b *Board) ID() string { return b.id }

// Bus returns the bus the board publishes on.
func (b *Board) Bus() *event.Bus { return b.bus }

// AddHomeScore adds v to the home score.
func (b *Board) AddHomeScore(v Increment) Snapshot {
	return b.Add(Home, v)
}

// AddAwayScore adds v to the away score.
func (b *Board) AddAwayScore(v Increment) Snapshot {
	return b.Add(Away, v)
}

// Add adds v to team's score and returns the resulting pair.
// An increment outside One..Three or a team other than Home or Away
// leaves the board untouched, publishes nothing and returns the current
// pair.
func (b *Board) Add(team Team, v Increment) Snapshot {
	if !v.Valid() || !team.Valid() {
		b.logger.Warn("ignoring invalid score change", "team", string(team), "increment", int(v))
		return b.Snapshot()
	}

	b.mu.Lock()
	if team == Away {
		b.away += int(v)
	} else {
		b.home += int(v)
	}
	snap := Snapshot{Home: b.home, Away: b.away}
	b.mu.Unlock()

	b.logger.WithTeam(string(team)).Debug("score changed",
		"increment", int(v), "home", snap.Home, "away", snap.Away)
	b.bus.Publish(event.NewScoreChangedEvent(b.id, string(team), int(v), snap.Home, snap.Away))
	return snap
}

// ResetScore sets both scores to zero unconditionally.
func (b *Board) ResetScore() Snapshot {
	b.mu.Lock()
	prev := Snapshot{Home: b.home, Away: b.away}
	b.home, b.away = 0, 0
	b.mu.Unlock()

	b.logger.Info("scores reset", "previous_home", prev.Home, "previous_away", prev.Away)
	b.bus.Publish(event.NewScoreResetEvent(b.id, prev.Home, prev.Away))
	return Snapshot{}
}

// Score returns the current score for team.
func (b *Board) Score(team Team) int {
	return b.Snapshot().Score(team)
}

// Snapshot returns a copy of both scores.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{Home: b.home, Away: b.away}
}
