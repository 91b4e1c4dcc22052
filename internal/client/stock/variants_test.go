package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkan-app/dukkan/internal/models"
)

func sizedProduct() *models.Product {
	return &models.Product{
		ID:   "p-1",
		Code: "A-1",
		Shop: "main",
		Colors: []models.ColorVariant{
			{Color: "red", Sizes: []models.SizeVariant{{Size: "M", Qty: 3}, {Size: "L", Qty: 2}}},
			{Color: "blue", Sizes: []models.SizeVariant{{Size: "M", Qty: 1}}},
		},
		Quantity: 6,
	}
}

func TestDeduct_SizeLeaf(t *testing.T) {
	p := sizedProduct()
	updated, del := deduct(p, &models.CartItem{Color: "red", Size: "M", Quantity: 2})

	assert.False(t, del)
	assert.Equal(t, 4, updated.Quantity)
	require.Len(t, updated.Colors, 2)
	assert.Equal(t, 1, updated.Colors[0].Sizes[0].Qty)

	// Исходный снимок не изменился
	assert.Equal(t, 3, p.Colors[0].Sizes[0].Qty)
	assert.Equal(t, 6, p.Quantity)
}

func TestDeduct_PrunesDepletedSizeLeaf(t *testing.T) {
	p := sizedProduct()
	updated, del := deduct(p, &models.CartItem{Color: "red", Size: "M", Quantity: 3})

	assert.False(t, del)
	require.Len(t, updated.Colors, 2)
	require.Len(t, updated.Colors[0].Sizes, 1)
	assert.Equal(t, "L", updated.Colors[0].Sizes[0].Size)
	assert.Equal(t, 3, updated.Quantity)
}

func TestDeduct_PrunesDepletedColorNode(t *testing.T) {
	p := sizedProduct()
	updated, del := deduct(p, &models.CartItem{Color: "blue", Size: "M", Quantity: 1})

	assert.False(t, del)
	require.Len(t, updated.Colors, 1)
	assert.Equal(t, "red", updated.Colors[0].Color)
	assert.Equal(t, 5, updated.Quantity)
}

func TestDeduct_FloorsAtZero(t *testing.T) {
	p := sizedProduct()
	// Продажа больше остатка не уводит количество в минус
	updated, del := deduct(p, &models.CartItem{Color: "red", Size: "M", Quantity: 10})

	assert.False(t, del)
	assert.Equal(t, 3, updated.Quantity) // осталось L:2 + blue M:1
}

func TestDeduct_DeleteWhenLastVariantDepleted(t *testing.T) {
	p := &models.Product{
		ID:     "p-1",
		Colors: []models.ColorVariant{{Color: "red", Sizes: []models.SizeVariant{{Size: "M", Qty: 2}}}},
	}
	_, del := deduct(p, &models.CartItem{Color: "red", Size: "M", Quantity: 2})
	assert.True(t, del)
}

func TestDeduct_DeleteWhenTreeEmptiedDespiteStoredQuantity(t *testing.T) {
	// Сохранённое плоское количество не спасает товар с пустым деревом
	p := &models.Product{
		ID:       "p-1",
		Colors:   []models.ColorVariant{{Color: "red", Sizes: []models.SizeVariant{{Size: "M", Qty: 2}}}},
		Quantity: 2,
	}
	_, del := deduct(p, &models.CartItem{Color: "red", Size: "M", Quantity: 2})
	assert.True(t, del)
}

func TestDeduct_ColorWithFlatQuantity(t *testing.T) {
	p := &models.Product{
		ID: "p-1",
		Colors: []models.ColorVariant{
			{Color: "red", Quantity: 5},
			{Color: "blue", Quantity: 2},
		},
		Quantity: 7,
	}
	updated, del := deduct(p, &models.CartItem{Color: "red", Quantity: 2})

	assert.False(t, del)
	assert.Equal(t, 3, updated.Colors[0].Quantity)
	assert.Equal(t, 5, updated.Quantity)
}

func TestDeduct_TopLevelSizes(t *testing.T) {
	p := &models.Product{
		ID:       "p-1",
		Sizes:    []models.SizeVariant{{Size: "40", Qty: 4}, {Size: "42", Qty: 1}},
		Quantity: 5,
	}
	updated, del := deduct(p, &models.CartItem{Size: "42", Quantity: 1})

	assert.False(t, del)
	require.Len(t, updated.Sizes, 1)
	assert.Equal(t, "40", updated.Sizes[0].Size)
	assert.Equal(t, 4, updated.Quantity)
}

func TestDeduct_FlatProduct(t *testing.T) {
	p := &models.Product{ID: "p-1", Quantity: 10}
	updated, del := deduct(p, &models.CartItem{Quantity: 4})

	assert.False(t, del)
	assert.Equal(t, 6, updated.Quantity)
}

func TestDeduct_FlatProductToZeroDeletes(t *testing.T) {
	p := &models.Product{ID: "p-1", Quantity: 3}
	_, del := deduct(p, &models.CartItem{Quantity: 3})
	assert.True(t, del)
}

func TestRestore_ExistingSizeLeaf(t *testing.T) {
	p := sizedProduct()
	updated := restore(p, &models.CartItem{Color: "red", Size: "M", Quantity: 2})

	assert.Equal(t, 5, updated.Colors[0].Sizes[0].Qty)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, 3, p.Colors[0].Sizes[0].Qty)
}

func TestRestore_CreatesMissingSizeLeaf(t *testing.T) {
	p := sizedProduct()
	updated := restore(p, &models.CartItem{Color: "red", Size: "XL", Quantity: 1})

	require.Len(t, updated.Colors[0].Sizes, 3)
	assert.Equal(t, models.SizeVariant{Size: "XL", Qty: 1}, updated.Colors[0].Sizes[2])
	assert.Equal(t, 7, updated.Quantity)
}

func TestRestore_CreatesMissingColorNode(t *testing.T) {
	p := sizedProduct()
	updated := restore(p, &models.CartItem{Color: "green", Size: "S", Quantity: 2})

	require.Len(t, updated.Colors, 3)
	assert.Equal(t, "green", updated.Colors[2].Color)
	assert.Equal(t, 2, updated.Colors[2].Sizes[0].Qty)
	assert.Equal(t, 8, updated.Quantity)
}

func TestRestore_FlatProduct(t *testing.T) {
	p := &models.Product{ID: "p-1", Quantity: 4}
	updated := restore(p, &models.CartItem{Quantity: 2})
	assert.Equal(t, 6, updated.Quantity)
}

func TestRestore_ColorTaggedReturnKeepsFlatStock(t *testing.T) {
	// Возврат с цветом на товар без вариантов не должен терять остаток
	p := &models.Product{ID: "p-1", Quantity: 5}
	updated := restore(p, &models.CartItem{Color: "red", Quantity: 1})

	assert.Empty(t, updated.Colors)
	assert.Equal(t, 6, updated.Quantity)
}

func TestRestore_SizeTaggedReturnKeepsFlatStock(t *testing.T) {
	p := &models.Product{ID: "p-1", Quantity: 3}
	updated := restore(p, &models.CartItem{Size: "M", Quantity: 2})

	assert.Empty(t, updated.Sizes)
	assert.Equal(t, 5, updated.Quantity)
}

func TestProductFromItem_SizedVariant(t *testing.T) {
	item := &models.CartItem{
		Code: "A-1", Name: "shirt", Shop: "main",
		Color: "red", Size: "M", Quantity: 2,
		BuyPrice: 30, SellPrice: 50,
	}
	p := productFromItem(item)

	assert.Equal(t, "A-1", p.Code)
	assert.Equal(t, "main", p.Shop)
	require.Len(t, p.Colors, 1)
	require.Len(t, p.Colors[0].Sizes, 1)
	assert.Equal(t, 2, p.Colors[0].Sizes[0].Qty)
	assert.Equal(t, 2, p.Quantity)
}

func TestProductFromItem_Flat(t *testing.T) {
	p := productFromItem(&models.CartItem{Code: "B-2", Shop: "main", Quantity: 1})
	assert.Empty(t, p.Colors)
	assert.Empty(t, p.Sizes)
	assert.Equal(t, 1, p.Quantity)
}
