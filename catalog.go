package diagram

import (
	"fmt"
)

// ComponentCatalog is the read-only view over all declared components of one
// diagram, supplied by the parsing collaborator.
//
// Implementations must be safe for concurrent readers, because the Builder
// may resolve several components in parallel.
type ComponentCatalog interface {
	// AllComponents returns every declared component in catalog order.
	AllComponents() []OpenComponent

	// ComponentsWithAlias returns the declared components that carry an alias,
	// in catalog order.
	ComponentsWithAlias() []OpenComponent

	// FindComponentWith looks up a component by identifier.
	//
	// A missing identifier must be reported as an error (ErrComponentNotFound
	// for the default implementation), never as a zero value with a nil error.
	FindComponentWith(id Identifier) (OpenComponent, error)
}

// Catalog is the default in-memory ComponentCatalog. It keeps insertion
// order and resolves lookups by identifier first, then by alias.
//
// A Catalog is immutable after NewCatalog returns and can be shared between
// goroutines.
type Catalog struct {
	components []OpenComponent
	byID       map[Identifier]int
	byAlias    map[Identifier]int
}

var _ ComponentCatalog = (*Catalog)(nil)

// NewCatalog builds a catalog from component declarations.
//
// Every declaration is validated. Identifiers must be unique, and an alias may
// not repeat another component's identifier or alias, since either name can
// appear as an edge endpoint.
//
// Example:
//
//	catalog, err := diagram.NewCatalog(
//	    diagram.NewOpenComponent("api").WithAlias("gateway"),
//	    diagram.NewOpenComponent("billing").WithStereotypes("svc"),
//	)
func NewCatalog(components ...OpenComponent) (*Catalog, error) {
	c := &Catalog{
		components: make([]OpenComponent, 0, len(components)),
		byID:       make(map[Identifier]int, len(components)),
		byAlias:    make(map[Identifier]int),
	}

	for _, comp := range components {
		if err := comp.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[comp.ID]; dup {
			return nil, fmt.Errorf("%w: '%s' is declared more than once", ErrDuplicateIdentifier, comp.ID)
		}
		c.byID[comp.ID] = len(c.components)
		c.components = append(c.components, comp.clone())
	}

	for i, comp := range c.components {
		if !comp.Alias.IsDeclared() {
			continue
		}
		key := Identifier(comp.Alias)
		if owner, taken := c.byID[key]; taken && owner != i {
			return nil, fmt.Errorf("%w: alias '%s' of '%s' collides with component '%s'", ErrDuplicateIdentifier, comp.Alias, comp.ID, key)
		}
		if owner, taken := c.byAlias[key]; taken {
			return nil, fmt.Errorf("%w: alias '%s' is declared by both '%s' and '%s'", ErrDuplicateIdentifier, comp.Alias, c.components[owner].ID, comp.ID)
		}
		c.byAlias[key] = i
	}

	return c, nil
}

// Len returns the number of declared components.
func (c *Catalog) Len() int {
	return len(c.components)
}

// AllComponents returns copies of all declarations in catalog order.
func (c *Catalog) AllComponents() []OpenComponent {
	out := make([]OpenComponent, len(c.components))
	for i, comp := range c.components {
		out[i] = comp.clone()
	}
	return out
}

// ComponentsWithAlias returns copies of the aliased declarations in catalog order.
func (c *Catalog) ComponentsWithAlias() []OpenComponent {
	out := make([]OpenComponent, 0, len(c.byAlias))
	for _, comp := range c.components {
		if comp.Alias.IsDeclared() {
			out = append(out, comp.clone())
		}
	}
	return out
}

// FindComponentWith returns the declaration whose identifier, or failing
// that whose alias, equals id. Unknown names yield ErrComponentNotFound.
func (c *Catalog) FindComponentWith(id Identifier) (OpenComponent, error) {
	if i, ok := c.byID[id]; ok {
		return c.components[i].clone(), nil
	}
	if i, ok := c.byAlias[id]; ok {
		return c.components[i].clone(), nil
	}
	return OpenComponent{}, NewNotFoundError("Catalog.FindComponentWith",
		fmt.Errorf("%w: '%s'", ErrComponentNotFound, id)).
		WithContext(map[string]any{"identifier": string(id)})
}
