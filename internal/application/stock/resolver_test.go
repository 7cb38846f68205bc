package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/domain/entity"
)

func newResolver(s *memStore) *stock.Resolver {
	return stock.NewResolver(&memRecipeRepo{s: s})
}

func TestResolveProduct_MultiplicaPorCantidad(t *testing.T) {
	s := demoWorld()
	r := newResolver(s)

	reqs, err := r.ResolveProduct(context.Background(), "prod-pizza", 3)

	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "ing-harina", reqs[0].IngredientID)
	assert.True(t, reqs[0].PerUnit.Equal(dec("0.3")))
	assert.True(t, reqs[0].Total.Equal(dec("0.9")))
	assert.Equal(t, "ing-queso", reqs[1].IngredientID)
	assert.True(t, reqs[1].Total.Equal(dec("0.75")))
}

func TestResolveProduct_SinRecetaDevuelveVacio(t *testing.T) {
	r := newResolver(demoWorld())

	reqs, err := r.ResolveProduct(context.Background(), "prod-gaseosa", 2)

	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestResolveOrder_AgregaYOrdenaPorIngrediente(t *testing.T) {
	r := newResolver(demoWorld())

	reqs, err := r.ResolveOrder(context.Background(), []*entity.OrderItem{
		{ProductID: "prod-pizza", Quantity: 1}, // 0.3 harina, 0.25 queso
		{ProductID: "prod-pan", Quantity: 2},   // 4 harina
	})

	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "ing-harina", reqs[0].IngredientID)
	assert.True(t, reqs[0].Total.Equal(dec("4.3")), "harina sumada entre líneas")
	assert.Equal(t, "ing-queso", reqs[1].IngredientID)
	assert.True(t, reqs[1].Total.Equal(dec("0.25")))
}

func TestResolveOrder_SinLineas(t *testing.T) {
	r := newResolver(demoWorld())

	reqs, err := r.ResolveOrder(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, reqs)
}
