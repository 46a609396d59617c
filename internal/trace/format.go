package trace

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Report is a complete trace ready for rendering.
type Report struct {
	Session  string
	Sections []Section
}

// NewReport stamps sections with a fresh session id.
func NewReport(sections []Section) *Report {
	return &Report{Session: uuid.NewString(), Sections: sections}
}

// Total returns the number of lines across all sections.
func (r *Report) Total() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Events)
	}
	return n
}

// FormatText writes one line per event and a blank line between sections.
func FormatText(w io.Writer, r *Report) {
	for i, s := range r.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, line := range s.Lines() {
			fmt.Fprintln(w, line)
		}
	}
}

// FormatJSON writes the report as indented JSON.
func FormatJSON(w io.Writer, r *Report) {
	output := struct {
		Session  string        `json:"session"`
		Total    int           `json:"total"`
		Sections []jsonSection `json:"sections"`
	}{
		Session:  r.Session,
		Total:    r.Total(),
		Sections: make([]jsonSection, 0, len(r.Sections)),
	}

	for _, s := range r.Sections {
		js := jsonSection{
			Workflow: s.Workflow,
			Actor:    s.Actor,
			Lines:    make([]jsonLine, 0, len(s.Events)),
		}
		for _, e := range s.Events {
			js.Lines = append(js.Lines, jsonLine{
				Seq:    e.Seq,
				Role:   e.Role,
				Action: e.Action,
				Text:   e.Line,
			})
		}
		output.Sections = append(output.Sections, js)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output) // stdout errors are unrecoverable
}

type jsonSection struct {
	Workflow string     `json:"workflow"`
	Actor    string     `json:"actor"`
	Lines    []jsonLine `json:"lines"`
}

type jsonLine struct {
	Seq    int    `json:"seq"`
	Role   string `json:"role"`
	Action string `json:"action"`
	Text   string `json:"text"`
}
