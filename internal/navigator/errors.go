package navigator

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches a selection of an ID the catalog does not contain.
	ErrNotFound = errors.New("section not found")
	// ErrInconsistent matches a selection that no longer names a catalog section.
	// It indicates a bug, not bad input.
	ErrInconsistent = errors.New("selection names no catalog section")
)

// Kind classifies a SelectionError.
type Kind int

const (
	NotFound Kind = iota + 1
	Inconsistent
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// SelectionError reports a rejected or broken selection.
type SelectionError struct {
	Kind       Kind
	ID         string
	Suggestion string // closest catalog ID, NotFound only
}

func (e *SelectionError) Error() string {
	if e.Kind == Inconsistent {
		return fmt.Sprintf("selection %q names no catalog section", e.ID)
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown section %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unknown section %q", e.ID)
}

// Is lets errors.Is match the ErrNotFound and ErrInconsistent sentinels.
func (e *SelectionError) Is(target error) bool {
	switch e.Kind {
	case NotFound:
		return target == ErrNotFound
	case Inconsistent:
		return target == ErrInconsistent
	}
	return false
}
