package diagram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealAll(components ...OpenComponent) []*Component {
	out := make([]*Component, len(components))
	for i, c := range components {
		out[i] = seal(c)
	}
	return out
}

func TestValidateStereotypes(t *testing.T) {
	tests := []struct {
		name       string
		components []*Component
		wantDup    Stereotype
	}{
		{
			name:       "no components",
			components: nil,
		},
		{
			name: "no stereotypes",
			components: sealAll(
				NewOpenComponent("a"),
				NewOpenComponent("b"),
			),
		},
		{
			name: "distinct stereotypes",
			components: sealAll(
				NewOpenComponent("a").WithStereotypes("svc", "public"),
				NewOpenComponent("b").WithStereotypes("db"),
			),
		},
		{
			name: "shared across components",
			components: sealAll(
				NewOpenComponent("a").WithStereotypes("svc"),
				NewOpenComponent("b").WithStereotypes("svc"),
			),
			wantDup: "svc",
		},
		{
			name: "repeated within one component",
			components: sealAll(
				NewOpenComponent("a").WithStereotypes("svc", "svc"),
				NewOpenComponent("b").WithStereotypes("db"),
			),
		},
		{
			name: "repeated within one component and shared",
			components: sealAll(
				NewOpenComponent("a").WithStereotypes("svc", "svc"),
				NewOpenComponent("b").WithStereotypes("svc"),
			),
			wantDup: "svc",
		},
		{
			name: "first repeat wins",
			components: sealAll(
				NewOpenComponent("a").WithStereotypes("x", "y"),
				NewOpenComponent("b").WithStereotypes("y", "x"),
			),
			wantDup: "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStereotypes(tt.components)
			if tt.wantDup == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDuplicateStereotype))
			assert.Contains(t, err.Error(), "'"+tt.wantDup.Value()+"'")
		})
	}
}

// TestValidateStereotypes_OrderIndependent verifies that the pass/fail
// outcome does not depend on component order.
func TestValidateStereotypes_OrderIndependent(t *testing.T) {
	a := NewOpenComponent("a").WithStereotypes("svc")
	b := NewOpenComponent("b").WithStereotypes("db")
	c := NewOpenComponent("c").WithStereotypes("svc")

	assert.Error(t, ValidateStereotypes(sealAll(a, b, c)))
	assert.Error(t, ValidateStereotypes(sealAll(c, b, a)))
	assert.Error(t, ValidateStereotypes(sealAll(b, a, c)))
	assert.NoError(t, ValidateStereotypes(sealAll(a, b)))
	assert.NoError(t, ValidateStereotypes(sealAll(b, a)))
}
