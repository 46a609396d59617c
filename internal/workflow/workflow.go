// Package workflow binds one crew member to a fixed, ordered sequence of
// actions. The actor is always injected; a runner never builds its own.
package workflow

import (
	"errors"
	"fmt"

	"sitecrew/internal/core"
	"sitecrew/internal/crew"
)

var (
	ErrUnknownWorkflow   = errors.New("unknown workflow")
	ErrIncompatibleActor = errors.New("actor cannot perform workflow")
)

// Kind names a runner variant.
type Kind string

const (
	KindPlan            Kind = "plan"
	KindBuild           Kind = "build"
	KindImproveFrontend Kind = "improve-frontend"
	KindImproveBackend  Kind = "improve-backend"
)

var Kinds = []Kind{KindPlan, KindBuild, KindImproveFrontend, KindImproveBackend}

// Runner is a workflow with a fixed action sequence.
type Runner interface {
	core.Workflow
	Steps() []crew.Action
	Actor() crew.Developer
}

// New binds dev to the runner variant named by kind.
func New(kind Kind, dev crew.Developer) (Runner, error) {
	switch kind {
	case KindBuild:
		return NewProject(dev), nil
	case KindPlan:
		pm, ok := dev.(crew.Planner)
		if !ok {
			return nil, incompatible(kind, dev)
		}
		return NewProjectPlan(pm), nil
	case KindImproveFrontend:
		fe, ok := dev.(crew.FrontendDeveloper)
		if !ok {
			return nil, incompatible(kind, dev)
		}
		return NewFrontendImprovement(fe), nil
	case KindImproveBackend:
		be, ok := dev.(crew.BackendDeveloper)
		if !ok {
			return nil, incompatible(kind, dev)
		}
		return NewBackendImprovement(be), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownWorkflow, kind)
	}
}

// Accepts reports whether an actor of the given crew kind can be bound to
// the workflow kind without building it.
func Accepts(kind Kind, member crew.Kind) bool {
	switch kind {
	case KindBuild:
		return member.Valid()
	case KindPlan:
		return member == crew.KindManager
	case KindImproveFrontend:
		return member == crew.KindFrontend
	case KindImproveBackend:
		return member == crew.KindBackend
	}
	return false
}

func incompatible(kind Kind, dev crew.Developer) error {
	return fmt.Errorf("%w: %s is a %s, %q needs another role", ErrIncompatibleActor, dev.Name(), dev.Role(), kind)
}
