// Package snapshot loads an already-parsed component catalog and its
// unresolved dependency edges from YAML or JSON.
//
// A snapshot is what a diagram parser produces, written down. It lets a
// parser running elsewhere hand its output to the diagram builder, and it is
// the fixture format used in tests:
//
//	name: shop
//	components:
//	  - id: api
//	    alias: gateway
//	  - id: billing
//	    stereotypes: [svc]
//	dependencies:
//	  - origin: api
//	    target: billing
//
// The package never reads diagram description text itself.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/zero-day-ai/diagram"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a snapshot.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Snapshot is the serialized output of a diagram parser.
type Snapshot struct {
	// Name is an optional label for the diagram.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Components are the declared components in catalog order.
	Components []diagram.OpenComponent `yaml:"components" json:"components"`

	// Dependencies are the unresolved edges in declaration order.
	Dependencies []diagram.DependencyEdge `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// FormatFromPath detects the format by file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: .json, .yaml, .yml)", ErrUnsupportedFormat, ext)
	}
}

// Load reads, decodes and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("snapshot file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates snapshot data in the given format.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse JSON snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse YAML snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}
	return &s, nil
}

// Validate checks that every component and edge is well formed and that
// component identifiers are unique. Whether edge endpoints exist is left to
// the builder, which reports it as a resolution error.
func (s *Snapshot) Validate() error {
	seenIDs := make(map[diagram.Identifier]bool, len(s.Components))
	for i, c := range s.Components {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		if seenIDs[c.ID] {
			return fmt.Errorf("component %d: %w: '%s'", i, diagram.ErrDuplicateIdentifier, c.ID)
		}
		seenIDs[c.ID] = true
	}

	for i, e := range s.Dependencies {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("dependency %d: %w", i, err)
		}
	}
	return nil
}

// Catalog builds the default catalog over the snapshot's components.
func (s *Snapshot) Catalog() (*diagram.Catalog, error) {
	return diagram.NewCatalog(s.Components...)
}

// Edges returns a copy of the snapshot's dependency edges.
func (s *Snapshot) Edges() []diagram.DependencyEdge {
	return slices.Clone(s.Dependencies)
}

// Build assembles the snapshot into a Diagram.
//
// Example:
//
//	s, err := snapshot.Load("testdata/shop.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := s.Build(ctx, diagram.WithConcurrency(4))
func (s *Snapshot) Build(ctx context.Context, opts ...diagram.BuildOption) (*diagram.Diagram, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return diagram.Build(ctx, catalog, s.Edges(), opts...)
}
