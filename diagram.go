package diagram

import (
	"slices"
)

// Diagram is the finished, immutable component model of one architecture
// diagram. Every component in it is finished and the stereotype uniqueness
// check has passed; a Diagram is only obtainable from a successful build.
//
// All accessors return independent slices, so callers cannot modify the
// Diagram through them. The *Component values themselves are shared and
// read-only.
type Diagram struct {
	id         string
	components []*Component
	byID       map[Identifier]*Component
}

func newDiagram(id string, components []*Component) *Diagram {
	byID := make(map[Identifier]*Component, len(components))
	for _, c := range components {
		byID[c.id] = c
	}
	return &Diagram{
		id:         id,
		components: components,
		byID:       byID,
	}
}

// ID returns the unique identifier of the build that produced this Diagram.
func (d *Diagram) ID() string {
	return d.id
}

// Len returns the number of components.
func (d *Diagram) Len() int {
	return len(d.components)
}

// AllComponents returns all components in catalog order.
func (d *Diagram) AllComponents() []*Component {
	return slices.Clone(d.components)
}

// ComponentsWithAlias returns the components that declare an alias, in
// catalog order. The result is empty when no component has an alias.
func (d *Diagram) ComponentsWithAlias() []*Component {
	out := make([]*Component, 0, len(d.components))
	for _, c := range d.components {
		if c.HasAlias() {
			out = append(out, c)
		}
	}
	return out
}

// FindComponent returns the component with the given identifier.
func (d *Diagram) FindComponent(id Identifier) (*Component, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// Dependencies returns every finalized dependency, grouped by origin in
// catalog order and in edge order within each origin. The result is empty,
// not nil, when the diagram has no dependencies.
func (d *Diagram) Dependencies() []Dependency {
	n := 0
	for _, c := range d.components {
		n += len(c.dependencies)
	}
	out := make([]Dependency, 0, n)
	for _, c := range d.components {
		out = append(out, c.dependencies...)
	}
	return out
}
