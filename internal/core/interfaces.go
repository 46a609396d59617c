// Package core defines the fundamental interfaces and types for sitecrew.
package core

import "time"

// Event is a single trace record emitted by an actor performing an action.
type Event struct {
	Seq       int // position in the collected trace, assigned by the collector
	Timestamp time.Time
	Actor     string
	Role      string
	Action    string
	Line      string
}

// Workflow is a fixed sequence of actions bound to one actor.
type Workflow interface {
	Name() string
	Run()
}

// Reporter is the interface actors use to emit trace events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a plain function to a Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }
