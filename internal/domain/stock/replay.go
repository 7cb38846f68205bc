package stock

import (
	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// Replay reproduce el historial ordenado de un ingrediente desde un stock
// inicial: stockFinal = inicial + suma de deltas. El historial es un log
// reproducible del ledger; aplicar dos veces el mismo log da el mismo
// resultado.
func Replay(initial decimal.Decimal, entries []*entity.StockHistory) decimal.Decimal {
	result := initial
	for _, e := range entries {
		result = result.Add(e.Quantity)
	}
	return result
}

// VerifyChain valida que el historial ordenado cumpla la invariante
// NewStock = PreviousStock + Quantity en cada registro y que los registros
// encadenen (PreviousStock de cada uno = NewStock del anterior).
// Devuelve (true, -1) si la cadena es consistente; si no, el índice del
// primer eslabón roto.
func VerifyChain(entries []*entity.StockHistory) (bool, int) {
	for i, e := range entries {
		if !e.NewStock.Equal(e.PreviousStock.Add(e.Quantity)) {
			return false, i
		}
		if i > 0 && !e.PreviousStock.Equal(entries[i-1].NewStock) {
			return false, i
		}
	}
	return true, -1
}
