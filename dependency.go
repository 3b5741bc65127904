package diagram

import "fmt"

// DependencyEdge is an unresolved directed edge between two component
// identifiers, as produced by the parsing collaborator. Edges are consumed
// while building and are not retained in the Diagram.
type DependencyEdge struct {
	// Origin is the identifier of the depending component.
	Origin Identifier `json:"origin" yaml:"origin"`

	// Target is the identifier (or alias) of the component depended upon.
	Target Identifier `json:"target" yaml:"target"`
}

// NewDependencyEdge creates an edge from origin to target.
func NewDependencyEdge(origin, target Identifier) DependencyEdge {
	return DependencyEdge{Origin: origin, Target: target}
}

// Validate checks that both endpoints are set.
func (e DependencyEdge) Validate() error {
	if e.Origin.Validate() != nil {
		return fmt.Errorf("%w: edge origin cannot be empty", ErrInvalidDependency)
	}
	if e.Target.Validate() != nil {
		return fmt.Errorf("%w: edge from '%s' has an empty target", ErrInvalidDependency, e.Origin)
	}
	return nil
}

// String renders the edge as "origin -> target".
func (e DependencyEdge) String() string {
	return fmt.Sprintf("%s -> %s", e.Origin, e.Target)
}

// groupByOrigin indexes edges by origin. Each group keeps the relative order
// the edges had in the input. The returned map is not modified afterwards.
func groupByOrigin(edges []DependencyEdge) map[Identifier][]DependencyEdge {
	groups := make(map[Identifier][]DependencyEdge)
	for _, e := range edges {
		groups[e.Origin] = append(groups[e.Origin], e)
	}
	return groups
}

// Dependency is a resolved edge between two finished components of the same
// Diagram. Origin and Target point at the Diagram's own components.
type Dependency struct {
	origin *Component
	target *Component
}

// Origin returns the depending component.
func (d Dependency) Origin() *Component {
	return d.origin
}

// Target returns the component depended upon.
func (d Dependency) Target() *Component {
	return d.target
}

// String renders the dependency as "origin -> target".
func (d Dependency) String() string {
	return fmt.Sprintf("%s -> %s", d.origin.ID(), d.target.ID())
}
