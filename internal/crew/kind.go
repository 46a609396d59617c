package crew

import (
	"fmt"

	"sitecrew/internal/core"
)

// Kind selects a role variant when building a crew from configuration.
type Kind string

const (
	KindDeveloper Kind = "developer"
	KindFrontend  Kind = "frontend"
	KindBackend   Kind = "backend"
	KindManager   Kind = "manager"
)

// Kinds lists the supported variants.
var Kinds = []Kind{KindDeveloper, KindFrontend, KindBackend, KindManager}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// New builds an actor of the given kind. role only applies to the generic
// developer; an empty role defaults to RoleDeveloper. teamSize only applies
// to managers.
func New(kind Kind, name, role string, teamSize int, rep core.Reporter) (Developer, error) {
	switch kind {
	case KindDeveloper:
		if role == "" {
			role = RoleDeveloper
		}
		return NewEngineer(name, role, rep), nil
	case KindFrontend:
		return NewFrontend(name, rep), nil
	case KindBackend:
		return NewBackend(name, rep), nil
	case KindManager:
		return NewManager(name, teamSize, rep), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}
