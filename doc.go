// Package diagram assembles architecture component diagrams into an
// immutable model that architecture rules can be checked against.
//
// The package sits between a diagram parser and a rule engine. The parser
// hands over a catalog of declared components and a list of unresolved
// dependency edges; this package resolves every edge against the catalog,
// attaches the resulting dependencies to their origin components and checks
// that no stereotype is used by two components.
//
// # Core Types
//
//   - Identifier, Alias, Stereotype: value types naming and tagging components
//   - OpenComponent: a component as declared, without dependencies
//   - ComponentCatalog / Catalog: read-only lookup over all declarations
//   - DependencyEdge: an unresolved origin -> target pair of identifiers
//   - Builder: resolves edges and finishes components
//   - Component, Dependency: the finished, read-only model
//   - Diagram: the immutable result
//
// # Building a Diagram
//
//	catalog, err := diagram.NewCatalog(
//	    diagram.NewOpenComponent("api").WithAlias("gateway"),
//	    diagram.NewOpenComponent("billing").WithStereotypes("svc"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d, err := diagram.Build(ctx, catalog, []diagram.DependencyEdge{
//	    diagram.NewDependencyEdge("api", "billing"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, c := range d.AllComponents() {
//	    for _, dep := range c.Dependencies() {
//	        fmt.Println(dep)
//	    }
//	}
//
// # Lifecycle
//
// Components go from open to finished exactly once. An OpenComponent has no
// dependency list at all; the Builder consumes it and produces a *Component
// whose dependencies are attached before the Diagram is returned. Callers
// never see a component without its dependencies, and a Diagram is never
// returned when resolution or validation failed.
//
// Dependencies point at the Diagram's own *Component values: the target of
// a dependency is the same pointer that AllComponents and FindComponent
// return for that identifier.
//
// # Error Handling
//
// Build fails on the first problem found, with a *DiagramError wrapping one
// of the sentinels:
//
//	d, err := diagram.Build(ctx, catalog, edges)
//	switch {
//	case errors.Is(err, diagram.ErrUnresolvedTarget):
//	    // an edge points at an unknown component
//	case errors.Is(err, diagram.ErrDuplicateStereotype):
//	    // two components share a stereotype
//	}
//
// # Observability
//
// Builds log through log/slog and emit an OpenTelemetry span ("diagram.Build")
// plus build metrics. See WithLogger, WithTracer and WithMeterProvider.
package diagram
