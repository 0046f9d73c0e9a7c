package patternfly

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for dropdown interaction failures. They are wrapped with
// context by the widgets, so match them with errors.Is.
var (
	// ErrDropdownDisabled is returned when interacting with a dropdown whose
	// toggle button carries the "disabled" class.
	ErrDropdownDisabled = errors.New("dropdown is disabled")

	// ErrDropdownItemDisabled is returned when selecting an item whose list
	// entry carries the "disabled" class.
	ErrDropdownItemDisabled = errors.New("dropdown item is disabled")

	// ErrDropdownItemNotFound is returned when the requested item does not
	// exist in the dropdown.
	ErrDropdownItemNotFound = errors.New("dropdown item not found")
)

// CandidateNotFoundError is returned when a treeview path cannot be
// resolved. Cause carries the underlying failure when a step broke for a
// reason other than a plain text mismatch, e.g. a node that never
// finished expanding.
type CandidateNotFoundError struct {
	Message string
	Path    []string
	Cause   error
}

func (e *CandidateNotFoundError) Error() string {
	cause := "none"
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return fmt.Sprintf("message: %s, path: %s, cause: %s",
		e.Message, strings.Join(e.Path, "/"), cause)
}

func (e *CandidateNotFoundError) Unwrap() error {
	return e.Cause
}

// SelectItemNotFoundError is returned when a bootstrap select does not offer
// the requested option. Options lists what the select offered instead.
type SelectItemNotFoundError struct {
	Item    string
	Options []string
}

func (e *SelectItemNotFoundError) Error() string {
	return fmt.Sprintf("could not find %q in the select, these options are present: %s",
		e.Item, strings.Join(e.Options, ", "))
}
