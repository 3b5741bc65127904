package diagram_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/diagram"
)

func buildShop(t *testing.T) *diagram.Diagram {
	t.Helper()
	catalog := mustCatalog(t,
		diagram.NewOpenComponent("api").WithAlias("gateway"),
		diagram.NewOpenComponent("billing").WithStereotypes("svc"),
		diagram.NewOpenComponent("ledger").WithAlias("books").WithStereotypes("store", "audited"),
	)
	d, err := diagram.Build(context.Background(), catalog, []diagram.DependencyEdge{
		diagram.NewDependencyEdge("api", "billing"),
		diagram.NewDependencyEdge("gateway", "books"),
		diagram.NewDependencyEdge("billing", "ledger"),
	}, diagram.WithLogger(quietLogger()))
	require.NoError(t, err)
	return d
}

func TestDiagram_Accessors(t *testing.T) {
	d := buildShop(t)

	assert.NotEmpty(t, d.ID())
	assert.Equal(t, 3, d.Len())

	var ids []diagram.Identifier
	for _, c := range d.AllComponents() {
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []diagram.Identifier{"api", "billing", "ledger"}, ids)

	var aliased []diagram.Identifier
	for _, c := range d.ComponentsWithAlias() {
		aliased = append(aliased, c.ID())
	}
	assert.Equal(t, []diagram.Identifier{"api", "ledger"}, aliased)

	_, ok := d.FindComponent("gateway")
	assert.False(t, ok, "FindComponent looks up identifiers only")

	assert.Equal(t,
		[]string{"api -> billing", "api -> ledger", "billing -> ledger"},
		dependencyStrings(d.Dependencies()))
}

// TestDiagram_AliasedSubset verifies that ComponentsWithAlias is the subset
// of AllComponents with a declared alias.
func TestDiagram_AliasedSubset(t *testing.T) {
	d := buildShop(t)

	all := make(map[*diagram.Component]bool)
	for _, c := range d.AllComponents() {
		all[c] = true
	}
	count := 0
	for _, c := range d.AllComponents() {
		if c.HasAlias() {
			count++
		}
	}

	aliased := d.ComponentsWithAlias()
	assert.Len(t, aliased, count)
	for _, c := range aliased {
		assert.True(t, all[c])
		assert.True(t, c.HasAlias())
	}
}

func TestDiagram_ReturnsIndependentSlices(t *testing.T) {
	d := buildShop(t)

	all := d.AllComponents()
	all[0] = nil
	assert.NotNil(t, d.AllComponents()[0])

	aliased := d.ComponentsWithAlias()
	aliased[0] = nil
	assert.NotNil(t, d.ComponentsWithAlias()[0])

	deps := d.Dependencies()
	deps[0] = diagram.Dependency{}
	assert.NotNil(t, d.Dependencies()[0].Origin())
}

func TestDiagram_WithoutAliases(t *testing.T) {
	catalog := mustCatalog(t, diagram.NewOpenComponent("a"), diagram.NewOpenComponent("b"))
	d, err := diagram.Build(context.Background(), catalog, nil, diagram.WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.NotNil(t, d.ComponentsWithAlias())
	assert.Empty(t, d.ComponentsWithAlias())
}
