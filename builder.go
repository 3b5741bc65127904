package diagram

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Builder assembles a Diagram from a component catalog and the unresolved
// dependency edges between its components.
//
// A build runs in passes:
//
//  1. Edge indexing: edges are grouped by origin, keeping their input order.
//     An origin written as an alias is grouped under its component. Edges
//     whose origin is not in the catalog are never visited.
//  2. Resolution: for each component, in catalog order, the targets of its
//     edges are looked up in the catalog and turned into Dependencies that
//     point at the finished components of the Diagram being built.
//  3. Finishing: each component receives its dependency list exactly once.
//  4. Validation: stereotype uniqueness is checked across all components.
//
// Any failure aborts the build and no Diagram is returned. A Builder holds no
// state between builds; calling Build twice yields two independent Diagrams.
//
// Example:
//
//	d, err := diagram.NewBuilder(catalog, diagram.WithLogger(logger)).
//	    WithDependencies(edges).
//	    Build(ctx)
type Builder struct {
	catalog ComponentCatalog
	edges   []DependencyEdge
	config  buildConfig
	metrics *buildMetrics
}

// NewBuilder creates a Builder over the given catalog.
func NewBuilder(catalog ComponentCatalog, opts ...BuildOption) *Builder {
	cfg := newBuildConfig(opts...)
	metrics, err := newBuildMetrics(cfg.meterProvider)
	if err != nil {
		cfg.logger.Warn("diagram build metrics disabled", slog.String("error", err.Error()))
		metrics = nil
	}
	return &Builder{
		catalog: catalog,
		config:  cfg,
		metrics: metrics,
	}
}

// WithDependencies sets the unresolved edges to resolve and returns the
// Builder for chaining. The slice is copied.
func (b *Builder) WithDependencies(edges []DependencyEdge) *Builder {
	b.edges = slices.Clone(edges)
	return b
}

// Build is shorthand for NewBuilder(catalog, opts...).WithDependencies(edges).Build(ctx).
func Build(ctx context.Context, catalog ComponentCatalog, edges []DependencyEdge, opts ...BuildOption) (*Diagram, error) {
	return NewBuilder(catalog, opts...).WithDependencies(edges).Build(ctx)
}

// Build resolves all edges and returns the finished Diagram.
//
// Errors:
//   - ErrUnresolvedTarget (KindResolution) when an edge target is unknown to
//     the catalog; the catalog's error is wrapped too
//   - ErrDuplicateStereotype (KindValidation) when two components share a stereotype
//   - ErrInvalidConfig when the Builder has no catalog
//
// The context carries tracing only; a build is never interrupted midway.
func (b *Builder) Build(ctx context.Context) (*Diagram, error) {
	if b.catalog == nil {
		return nil, NewConfigurationError("Builder.Build", fmt.Errorf("%w: catalog is nil", ErrInvalidConfig))
	}

	started := time.Now()
	buildID := uuid.New().String()
	logger := b.config.logger.With(slog.String("build_id", buildID))

	open := b.catalog.AllComponents()
	ctx, span := startBuildSpan(ctx, b.config.tracer, buildID, len(open), len(b.edges))
	defer span.End()

	logger.Debug("building diagram",
		slog.Int("components", len(open)),
		slog.Int("edges", len(b.edges)),
		slog.Int("concurrency", b.config.concurrency))

	d, err := b.build(logger, buildID, open)
	b.metrics.recordBuild(ctx, span, started, d, err)
	if err != nil {
		logger.Warn("diagram build failed", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("diagram built",
		slog.Int("components", d.Len()),
		slog.Int("dependencies", len(d.Dependencies())),
		slog.Duration("elapsed", time.Since(started)))
	return d, nil
}

func (b *Builder) build(logger *slog.Logger, buildID string, open []OpenComponent) (*Diagram, error) {
	components := make([]*Component, len(open))
	byID := make(map[Identifier]*Component, len(open))
	for i, oc := range open {
		c := seal(oc)
		components[i] = c
		byID[c.id] = c
	}

	edges := b.canonicalOrigins(byID)
	groups := groupByOrigin(edges)
	logger.Debug("grouped dependency edges",
		slog.Int("edges", len(edges)),
		slog.Int("origins", len(groups)))

	resolved, err := b.resolveAll(logger, components, byID, groups)
	if err != nil {
		return nil, err
	}
	for i, c := range components {
		c.finish(resolved[i])
	}

	if err := ValidateStereotypes(components); err != nil {
		return nil, err
	}
	logger.Debug("stereotypes validated")

	return newDiagram(buildID, components), nil
}

// canonicalOrigins rewrites each edge origin that names a catalog component
// to that component's identifier, so that edges declared through an alias
// land in the same group as edges declared through the identifier. Origins
// the catalog does not know keep their raw key; no component reads that
// group, so such edges are ignored.
func (b *Builder) canonicalOrigins(byID map[Identifier]*Component) []DependencyEdge {
	out := make([]DependencyEdge, len(b.edges))
	for i, e := range b.edges {
		out[i] = e
		if _, ok := byID[e.Origin]; ok {
			continue
		}
		if found, err := b.catalog.FindComponentWith(e.Origin); err == nil {
			if _, ok := byID[found.ID]; ok {
				out[i].Origin = found.ID
			}
		}
	}
	return out
}

// resolveAll resolves the edge group of every component. With concurrency
// above one, components are resolved in parallel; each goroutine writes only
// its own slot, and the error of the earliest failing component in catalog
// order is returned, as in the sequential path.
func (b *Builder) resolveAll(logger *slog.Logger, components []*Component, byID map[Identifier]*Component, groups map[Identifier][]DependencyEdge) ([][]Dependency, error) {
	resolved := make([][]Dependency, len(components))

	if b.config.concurrency <= 1 || len(components) < 2 {
		for i, c := range components {
			deps, err := b.resolveComponent(logger, c, groups[c.id], byID)
			if err != nil {
				return nil, err
			}
			resolved[i] = deps
		}
		return resolved, nil
	}

	errs := make([]error, len(components))
	var g errgroup.Group
	g.SetLimit(b.config.concurrency)
	for i, c := range components {
		g.Go(func() error {
			resolved[i], errs[i] = b.resolveComponent(logger, c, groups[c.id], byID)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

func (b *Builder) resolveComponent(logger *slog.Logger, c *Component, group []DependencyEdge, byID map[Identifier]*Component) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(group))
	for _, e := range group {
		found, err := b.catalog.FindComponentWith(e.Target)
		if err != nil {
			return nil, NewUnresolvedTargetError(c.id, e.Target, err)
		}
		target, ok := byID[found.ID]
		if !ok {
			return nil, NewUnresolvedTargetError(c.id, e.Target,
				fmt.Errorf("%w: catalog resolved '%s' to unlisted component '%s'", ErrComponentNotFound, e.Target, found.ID))
		}
		deps = append(deps, Dependency{origin: c, target: target})
	}
	if len(deps) > 0 {
		logger.Debug("resolved component dependencies",
			slog.String("component", c.id.String()),
			slog.Int("dependencies", len(deps)))
	}
	return deps, nil
}
