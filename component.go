package diagram

import (
	"fmt"
	"slices"
	"strings"
)

// OpenComponent is a component as declared by the parsing collaborator:
// identity, alias and stereotypes are fixed, dependencies are not known yet.
//
// An OpenComponent is only a declaration. The Builder consumes it and yields
// a finished *Component; there is no way to attach dependencies to an
// OpenComponent itself.
//
// Example:
//
//	api := diagram.NewOpenComponent("api").
//	    WithAlias("gateway").
//	    WithStereotypes("svc")
type OpenComponent struct {
	// ID is the component identifier. Required.
	ID Identifier `json:"id" yaml:"id"`

	// Alias is the optional alternative name.
	Alias Alias `json:"alias,omitempty" yaml:"alias,omitempty"`

	// Stereotypes are the component's tags in declaration order.
	Stereotypes []Stereotype `json:"stereotypes,omitempty" yaml:"stereotypes,omitempty"`
}

// NewOpenComponent creates a declaration with the given identifier.
func NewOpenComponent(id Identifier) OpenComponent {
	return OpenComponent{ID: id}
}

// WithAlias returns a copy of the declaration with the alias set.
func (c OpenComponent) WithAlias(alias Alias) OpenComponent {
	c.Alias = alias
	return c
}

// WithStereotypes returns a copy of the declaration with the stereotypes appended.
func (c OpenComponent) WithStereotypes(stereotypes ...Stereotype) OpenComponent {
	c.Stereotypes = append(slices.Clone(c.Stereotypes), stereotypes...)
	return c
}

// Validate checks that the declaration has a usable identifier and no blank stereotypes.
func (c OpenComponent) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	for i, s := range c.Stereotypes {
		if strings.TrimSpace(s.Value()) == "" {
			return fmt.Errorf("%w: component '%s' has an empty stereotype at position %d", ErrInvalidComponent, c.ID, i)
		}
	}
	return nil
}

// clone detaches the stereotype slice from the caller's backing array.
func (c OpenComponent) clone() OpenComponent {
	c.Stereotypes = slices.Clone(c.Stereotypes)
	return c
}

// Component is a finished diagram component: identity, alias, stereotypes
// and the resolved outgoing dependencies.
//
// Components are created only while a Diagram is built and are never
// modified once the Diagram is returned. All accessors return copies.
type Component struct {
	id           Identifier
	alias        Alias
	stereotypes  []Stereotype
	dependencies []Dependency
}

// seal consumes a declaration and allocates the component that will be
// finished with its dependencies. Stereotypes form a set: a value repeated
// within one declaration is kept once, at its first position.
func seal(open OpenComponent) *Component {
	stereotypes := make([]Stereotype, 0, len(open.Stereotypes))
	for _, s := range open.Stereotypes {
		if !slices.Contains(stereotypes, s) {
			stereotypes = append(stereotypes, s)
		}
	}
	return &Component{
		id:          open.ID,
		alias:       open.Alias,
		stereotypes: stereotypes,
	}
}

// finish attaches the resolved dependency list. The builder calls it exactly
// once per sealed component, before the Diagram is handed out.
func (c *Component) finish(dependencies []Dependency) {
	c.dependencies = dependencies
}

// ID returns the component identifier.
func (c *Component) ID() Identifier {
	return c.id
}

// Alias returns the component alias, or the zero Alias when none was declared.
func (c *Component) Alias() Alias {
	return c.alias
}

// HasAlias reports whether the component declares an alias.
func (c *Component) HasAlias() bool {
	return c.alias.IsDeclared()
}

// Stereotypes returns the distinct stereotypes in declaration order.
func (c *Component) Stereotypes() []Stereotype {
	return slices.Clone(c.stereotypes)
}

// HasStereotype reports whether the component carries the given stereotype.
func (c *Component) HasStereotype(s Stereotype) bool {
	return slices.Contains(c.stereotypes, s)
}

// Dependencies returns the finalized outgoing dependencies in edge order.
func (c *Component) Dependencies() []Dependency {
	return slices.Clone(c.dependencies)
}

// String renders the component as "[id] as alias <<s1>> <<s2>>".
func (c *Component) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(c.id.String())
	b.WriteString("]")
	if c.HasAlias() {
		b.WriteString(" as ")
		b.WriteString(c.alias.String())
	}
	for _, s := range c.stereotypes {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	return b.String()
}
