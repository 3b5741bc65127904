package diagram

import (
	"fmt"
	"strings"
)

// Identifier names a component within one diagram's namespace.
// Identifiers are compared by value and used as map keys.
type Identifier string

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

// Validate checks that the identifier is not blank.
func (id Identifier) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: identifier cannot be empty", ErrInvalidComponent)
	}
	return nil
}

// Alias is an optional alternative name of a component.
// The zero value means no alias was declared.
type Alias string

// IsDeclared reports whether the alias carries a value.
func (a Alias) IsDeclared() bool {
	return a != ""
}

// String returns the alias text.
func (a Alias) String() string {
	return string(a)
}

// Stereotype is a tag attached to a component. Within one diagram every
// stereotype value may be used by at most one component.
type Stereotype string

// Value returns the stereotype's textual value.
func (s Stereotype) Value() string {
	return string(s)
}

// String renders the stereotype the way diagrams declare it, e.g. <<svc>>.
func (s Stereotype) String() string {
	return "<<" + string(s) + ">>"
}
