// Package trace records and renders the lines actors emit.
package trace

import (
	"sync"

	"sitecrew/internal/core"
)

// Recorder receives trace events grouped into sections, one section per
// top-level runner invocation.
type Recorder interface {
	core.Reporter
	Begin(workflow, actor string)
}

// Section is the trace produced by one runner invocation.
type Section struct {
	Workflow string
	Actor    string
	Events   []core.Event
}

// Lines returns the rendered lines of the section in order.
func (s Section) Lines() []string {
	out := make([]string, len(s.Events))
	for i, e := range s.Events {
		out[i] = e.Line
	}
	return out
}

// Collector keeps every event in memory. Reporting is synchronous: the
// event is stored before Report returns.
type Collector struct {
	clock    core.Clock
	sections []Section
	seq      int
	mu       sync.Mutex
}

func NewCollector() *Collector {
	return NewCollectorWithClock(core.RealClock{})
}

func NewCollectorWithClock(clock core.Clock) *Collector {
	return &Collector{clock: clock}
}

// Begin opens a new section. Events reported before the first Begin land in
// an unnamed section.
func (c *Collector) Begin(workflow, actor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = append(c.sections, Section{Workflow: workflow, Actor: actor})
}

func (c *Collector) Report(event core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sections) == 0 {
		c.sections = append(c.sections, Section{})
	}
	c.seq++
	event.Seq = c.seq
	event.Timestamp = c.clock.Now()
	cur := &c.sections[len(c.sections)-1]
	cur.Events = append(cur.Events, event)
}

// Sections returns a copy of the collected sections.
func (c *Collector) Sections() []Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Events = append([]core.Event(nil), s.Events...)
		out[i] = s
	}
	return out
}

// Events returns every collected event in report order.
func (c *Collector) Events() []core.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]core.Event, 0, c.seq)
	for _, s := range c.sections {
		result = append(result, s.Events...)
	}
	return result
}

// Multi forwards to every recorder in order.
func Multi(recorders ...Recorder) Recorder {
	return multi(recorders)
}

type multi []Recorder

func (m multi) Begin(workflow, actor string) {
	for _, r := range m {
		r.Begin(workflow, actor)
	}
}

func (m multi) Report(e core.Event) {
	for _, r := range m {
		r.Report(e)
	}
}
