package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del menú (catálogo externo).
// Este núcleo solo lee el producto y escribe la bandera Available, estado
// derivado recomputable desde stock y receta, nunca fuente de verdad.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Available bool // derivada por el sincronizador de disponibilidad
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
