package crew

import (
	"fmt"
	"sort"

	"sitecrew/internal/core"
)

// Developer is the capability set shared by every role.
type Developer interface {
	Name() string
	Role() string

	CreateUI()
	CreateDB()
	CreateDesign()
	CreateGit()
	Testing()
	Debugging()
	Deploy()

	// Perform runs an action by identifier. It fails only for identifiers
	// outside this actor's menu.
	Perform(Action) error
	// Actions lists every action this actor can perform, sorted.
	Actions() []Action
}

// actor carries identity and the phrase table shared by all variants.
// It is immutable after construction.
type actor struct {
	name    string
	role    string
	phrases phrases
	rep     core.Reporter
}

func newActor(name, role string, table phrases, rep core.Reporter) actor {
	if rep == nil {
		rep = core.NullReporter
	}
	return actor{name: name, role: role, phrases: table, rep: rep}
}

func (a *actor) Name() string { return a.name }
func (a *actor) Role() string { return a.role }

func (a *actor) CreateUI()     { a.emit(BuildUI) }
func (a *actor) CreateDB()     { a.emit(BuildDatabase) }
func (a *actor) CreateDesign() { a.emit(BuildDesign) }
func (a *actor) CreateGit()    { a.emit(InitRepo) }
func (a *actor) Testing()      { a.emit(RunTests) }
func (a *actor) Debugging()    { a.emit(Debug) }
func (a *actor) Deploy()       { a.emit(Deploy) }

func (a *actor) Perform(action Action) error {
	if _, ok := a.phrases[action]; !ok {
		return fmt.Errorf("%s (%s): %w %q", a.name, a.role, ErrUnknownAction, action)
	}
	a.emit(action)
	return nil
}

func (a *actor) Actions() []Action {
	out := make([]Action, 0, len(a.phrases))
	for action := range a.phrases {
		out = append(out, action)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Line renders the trace sentence for action without emitting it.
func (a *actor) Line(action Action) string {
	return fmt.Sprintf("%s is %s...", a.name, a.phrases[action])
}

func (a *actor) emit(action Action) {
	a.rep.Report(core.Event{
		Actor:  a.name,
		Role:   a.role,
		Action: string(action),
		Line:   a.Line(action),
	})
}

// Engineer is the generic developer with only the base menu.
type Engineer struct {
	actor
}

func NewEngineer(name, role string, rep core.Reporter) *Engineer {
	return &Engineer{actor: newActor(name, role, basePhrases, rep)}
}
