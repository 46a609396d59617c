package trace

import (
	"fmt"
	"io"
	"sync"

	"sitecrew/internal/core"
)

// Stream writes each line as soon as it is reported, with a blank line
// between sections.
type Stream struct {
	out      io.Writer
	sections int
	mu       sync.Mutex
}

func NewStream(out io.Writer) *Stream {
	return &Stream{out: out}
}

func (s *Stream) Begin(workflow, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sections > 0 {
		fmt.Fprintln(s.out)
	}
	s.sections++
}

func (s *Stream) Report(e core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, e.Line)
}
