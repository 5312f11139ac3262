// Package metrics records scoreboard activity.
//
// Components depend on the [Recorder] interface; [NoopRecorder] is the
// default and [PrometheusRecorder] is swapped in when the HTTP surface
// exposes /metrics. [Attach] wires a Recorder to a board's event bus so the
// board itself never knows metrics exist. Current scores are not event
// driven: [RegisterScoreGauges] reads them from the board on every scrape.
package metrics

import "github.com/Iron-Ham/scoreboard/internal/event"

// Recorder receives scoreboard activity.
type Recorder interface {
	IncActivation(team string, increment int)
	IncReset()
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) IncActivation(string, int) {}
func (NoopRecorder) IncReset()                 {}

// Attach subscribes rec to the score events on bus and returns the
// subscription IDs so the caller can detach later.
func Attach(bus *event.Bus, rec Recorder) []string {
	if bus == nil || rec == nil {
		return nil
	}

	changed := bus.Subscribe(event.TypeScoreChanged, func(e event.Event) {
		ev, ok := e.(event.ScoreChangedEvent)
		if !ok {
			return
		}
		rec.IncActivation(ev.Team, ev.Increment)
	})

	reset := bus.Subscribe(event.TypeScoreReset, func(event.Event) {
		rec.IncReset()
	})

	return []string{changed, reset}
}
