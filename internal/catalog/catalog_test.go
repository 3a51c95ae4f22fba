package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_FixedSizeAndOrder(t *testing.T) {
	first := List()
	second := List()

	require.Len(t, first, 6)
	require.Len(t, second, 6)

	wantOrder := []string{"restoflow", "sentinel", "importaciones", "lopdp", "facturacion", "dashboard"}
	for i, p := range first {
		assert.Equal(t, wantOrder[i], p.ID)
		assert.Equal(t, second[i].ID, p.ID)
	}
}

func TestList_EveryProductHasPlans(t *testing.T) {
	for _, p := range List() {
		assert.NotEmpty(t, p.Name, "product %s has no name", p.ID)
		assert.NotEmpty(t, p.Slug, "product %s has no slug", p.ID)
		assert.NotEmpty(t, p.Features, "product %s has no features", p.ID)
		require.NotEmpty(t, p.Plans, "product %s has no plans", p.ID)
		for _, plan := range p.Plans {
			assert.Greater(t, plan.PriceBefore, plan.PriceNow,
				"plan %s of %s has no discount", plan.Name, p.ID)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		idOrSlug string
		wantID   string
		wantErr  error
	}{
		{
			name:     "by id",
			idOrSlug: "sentinel",
			wantID:   "sentinel",
		},
		{
			name:     "by slug",
			idOrSlug: "pedidos-sentinel",
			wantID:   "sentinel",
		},
		{
			name:     "id equals slug",
			idOrSlug: "restoflow",
			wantID:   "restoflow",
		},
		{
			name:     "unknown product",
			idOrSlug: "does-not-exist",
			wantErr:  ErrNotFound,
		},
		{
			name:     "match is case sensitive",
			idOrSlug: "RestoFlow",
			wantErr:  ErrNotFound,
		},
		{
			name:     "empty string",
			idOrSlug: "",
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := Get(tt.idOrSlug)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, product.ID)
		})
	}
}
