// Package event provides a pub-sub event bus for decoupled communication
// between the scoreboard container and the surfaces that display it.
//
// The [scoreboard.Board] owns all mutable state. It never calls a view
// directly; instead it publishes an event after each mutation and every
// interested surface (the terminal UI, the metrics recorder, the request
// logger) subscribes to the event types it cares about.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Types
//
//   - [ScoreChangedEvent] ("score.changed"): one team's score was incremented
//   - [ScoreResetEvent] ("score.reset"): both scores were returned to zero
//   - [ConfigReloadedEvent] ("config.reloaded"): the config file changed on disk
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called synchronously
// on the publishing goroutine, in registration order, and a panicking handler
// is recovered so that it cannot stop delivery to the remaining handlers.
//
// # Usage
//
//	bus := event.NewBus()
//	id := bus.Subscribe(event.TypeScoreChanged, func(e event.Event) {
//	    changed := e.(event.ScoreChangedEvent)
//	    fmt.Println(changed.Team, changed.Home, changed.Away)
//	})
//	defer bus.Unsubscribe(id)
package event
