package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para ingredientes.
const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPiece      = "und"
)

// Ingredient representa una materia prima de cocina con su stock actual.
// CurrentStock se muta únicamente vía el motor de stock (descuento,
// restauración, reabastecimiento manual o ajuste), nunca con read-modify-write
// fuera de un bloqueo de fila.
type Ingredient struct {
	ID           string
	Name         string          // único (comparación normalizada sin tildes)
	Unit         string          // kg, g, l, ml, und
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal // umbral de alerta de stock bajo
	MaximumStock decimal.Decimal // referencia para reabastecimiento
	UnitCost     decimal.Decimal
	Supplier     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (i *Ingredient) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinimumStock)
}
