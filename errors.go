package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for diagram assembly.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrDuplicateStereotype indicates that two components of one diagram
	// declare the same stereotype value.
	ErrDuplicateStereotype = errors.New("duplicate stereotype")

	// ErrUnresolvedTarget indicates that a dependency edge points to an
	// identifier the catalog does not know. The catalog's own lookup error is
	// wrapped alongside it.
	ErrUnresolvedTarget = errors.New("unresolved dependency target")

	// ErrComponentNotFound is returned by catalog lookups for unknown identifiers.
	//
	// Example:
	//	_, err := catalog.FindComponentWith("billing")
	//	if errors.Is(err, diagram.ErrComponentNotFound) {
	//	    log.Printf("no component named billing")
	//	}
	ErrComponentNotFound = errors.New("component not found")

	// ErrDuplicateIdentifier indicates that two catalog entries share an
	// identifier, or that an alias collides with another entry.
	ErrDuplicateIdentifier = errors.New("duplicate component identifier")

	// ErrInvalidComponent indicates a malformed component declaration.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrInvalidDependency indicates a malformed dependency edge.
	ErrInvalidDependency = errors.New("invalid dependency")

	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents violations of diagram-wide invariants.
	KindValidation = "validation"

	// KindResolution represents failures to resolve an edge against the catalog.
	KindResolution = "resolution"

	// KindNotFound represents errors where a component was not found.
	KindNotFound = "not_found"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"
)

// DiagramError is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// DiagramError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	_, err := diagram.Build(ctx, catalog, edges)
//	var derr *diagram.DiagramError
//	if errors.As(err, &derr) && derr.Kind == diagram.KindResolution {
//		log.Printf("edge target missing: %v", derr.Context["target"])
//	}
type DiagramError struct {
	// Op is the operation that failed (e.g., "Builder.Build", "Catalog.FindComponentWith").
	Op string

	// Kind categorizes the error (e.g., KindValidation, KindResolution).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional),
	// such as the offending stereotype or identifiers.
	Context map[string]any
}

// Error implements the error interface.
func (e *DiagramError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("diagram: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("diagram: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *DiagramError) Unwrap() error {
	return e.Err
}

// Is matches another *DiagramError by Kind (and Op, when the target sets one),
// and otherwise delegates to the wrapped error.
func (e *DiagramError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*DiagramError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context merged in.
func (e *DiagramError) WithContext(ctx map[string]any) *DiagramError {
	newErr := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	newErr.Context = merged
	return &newErr
}

// NewDuplicateStereotypeError reports a stereotype value declared by more
// than one component. The message carries the stereotype's text.
func NewDuplicateStereotypeError(stereotype Stereotype) *DiagramError {
	return &DiagramError{
		Op:      "Diagram.ValidateStereotypes",
		Kind:    KindValidation,
		Err:     fmt.Errorf("%w: stereotype '%s' should be unique", ErrDuplicateStereotype, stereotype.Value()),
		Context: map[string]any{"stereotype": stereotype.Value()},
	}
}

// NewUnresolvedTargetError reports an edge whose target is absent from the
// catalog. cause is the catalog's lookup error and stays reachable through
// errors.Is/As.
func NewUnresolvedTargetError(origin, target Identifier, cause error) *DiagramError {
	var err error
	if cause != nil {
		err = fmt.Errorf("%w: component '%s' depends on '%s': %w", ErrUnresolvedTarget, origin, target, cause)
	} else {
		err = fmt.Errorf("%w: component '%s' depends on '%s'", ErrUnresolvedTarget, origin, target)
	}
	return &DiagramError{
		Op:   "Builder.Build",
		Kind: KindResolution,
		Err:  err,
		Context: map[string]any{
			"origin": string(origin),
			"target": string(target),
		},
	}
}

// NewNotFoundError creates a new DiagramError with KindNotFound.
func NewNotFoundError(op string, err error) *DiagramError {
	return &DiagramError{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewConfigurationError creates a new DiagramError with KindConfiguration.
func NewConfigurationError(op string, err error) *DiagramError {
	return &DiagramError{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

func asDiagramError(err error) (*DiagramError, bool) {
	var derr *DiagramError
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}
