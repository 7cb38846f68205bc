package entity

import "github.com/shopspring/decimal"

// RecipeItem representa una entrada de receta: cantidad de un ingrediente
// consumida por una unidad de producto (tabla product_ingredients).
// Configuración propiedad del catálogo; este núcleo solo la lee.
type RecipeItem struct {
	ProductID        string
	IngredientID     string
	QuantityRequired decimal.Decimal // consumo por unidad de producto, > 0
}
