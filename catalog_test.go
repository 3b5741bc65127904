package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/diagram"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name       string
		components []diagram.OpenComponent
		wantErr    error
	}{
		{
			name: "valid",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("api").WithAlias("gateway"),
				diagram.NewOpenComponent("billing").WithStereotypes("svc"),
			},
		},
		{
			name: "alias equal to own identifier",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("api").WithAlias("api"),
			},
		},
		{
			name:       "empty identifier",
			components: []diagram.OpenComponent{diagram.NewOpenComponent("  ")},
			wantErr:    diagram.ErrInvalidComponent,
		},
		{
			name:       "empty stereotype",
			components: []diagram.OpenComponent{diagram.NewOpenComponent("api").WithStereotypes("")},
			wantErr:    diagram.ErrInvalidComponent,
		},
		{
			name: "duplicate identifier",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("api"),
				diagram.NewOpenComponent("api"),
			},
			wantErr: diagram.ErrDuplicateIdentifier,
		},
		{
			name: "alias repeats a later identifier",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("api").WithAlias("billing"),
				diagram.NewOpenComponent("billing"),
			},
			wantErr: diagram.ErrDuplicateIdentifier,
		},
		{
			name: "alias repeats an earlier identifier",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("billing"),
				diagram.NewOpenComponent("api").WithAlias("billing"),
			},
			wantErr: diagram.ErrDuplicateIdentifier,
		},
		{
			name: "alias declared twice",
			components: []diagram.OpenComponent{
				diagram.NewOpenComponent("api").WithAlias("edge"),
				diagram.NewOpenComponent("web").WithAlias("edge"),
			},
			wantErr: diagram.ErrDuplicateIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := diagram.NewCatalog(tt.components...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.components), catalog.Len())
		})
	}
}

func TestCatalog_FindComponentWith(t *testing.T) {
	catalog := mustCatalog(t,
		diagram.NewOpenComponent("api").WithAlias("gateway"),
		diagram.NewOpenComponent("billing").WithStereotypes("svc"),
	)

	t.Run("by identifier", func(t *testing.T) {
		c, err := catalog.FindComponentWith("billing")
		require.NoError(t, err)
		assert.Equal(t, diagram.Identifier("billing"), c.ID)
		assert.Equal(t, []diagram.Stereotype{"svc"}, c.Stereotypes)
	})

	t.Run("by alias", func(t *testing.T) {
		c, err := catalog.FindComponentWith("gateway")
		require.NoError(t, err)
		assert.Equal(t, diagram.Identifier("api"), c.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := catalog.FindComponentWith("search")
		require.Error(t, err)
		assert.ErrorIs(t, err, diagram.ErrComponentNotFound)
		assert.Contains(t, err.Error(), "'search'")

		var derr *diagram.DiagramError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, diagram.KindNotFound, derr.Kind)
		assert.Equal(t, "search", derr.Context["identifier"])
	})
}

func TestCatalog_Ordering(t *testing.T) {
	catalog := mustCatalog(t,
		diagram.NewOpenComponent("c"),
		diagram.NewOpenComponent("a").WithAlias("first"),
		diagram.NewOpenComponent("b"),
		diagram.NewOpenComponent("d").WithAlias("last"),
	)

	var all []diagram.Identifier
	for _, c := range catalog.AllComponents() {
		all = append(all, c.ID)
	}
	assert.Equal(t, []diagram.Identifier{"c", "a", "b", "d"}, all)

	var aliased []diagram.Identifier
	for _, c := range catalog.ComponentsWithAlias() {
		aliased = append(aliased, c.ID)
	}
	assert.Equal(t, []diagram.Identifier{"a", "d"}, aliased)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	declared := []diagram.Stereotype{"svc"}
	open := diagram.OpenComponent{ID: "billing", Stereotypes: declared}
	catalog := mustCatalog(t, open)

	// the caller's slice is detached at construction
	declared[0] = "changed"
	found, err := catalog.FindComponentWith("billing")
	require.NoError(t, err)
	assert.Equal(t, []diagram.Stereotype{"svc"}, found.Stereotypes)

	// and results do not share storage with the catalog
	found.Stereotypes[0] = "mutated"
	all := catalog.AllComponents()
	assert.Equal(t, []diagram.Stereotype{"svc"}, all[0].Stereotypes)
}
