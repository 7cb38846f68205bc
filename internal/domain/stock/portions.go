package stock

import "github.com/shopspring/decimal"

// PortionsFor calcula cuántas porciones alcanza el stock de un ingrediente:
// floor(stockActual / consumoPorUnidad). Devuelve -1 si el consumo por
// unidad es <= 0 (el ingrediente no restringe) y 0 si el stock ya es <= 0.
func PortionsFor(currentStock, perUnit decimal.Decimal) int64 {
	if perUnit.LessThanOrEqual(decimal.Zero) {
		return -1
	}
	if currentStock.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return currentStock.Div(perUnit).Floor().IntPart()
}

// PortionsForProduct calcula el máximo de porciones preparables de un
// producto: mínimo de PortionsFor sobre sus ingredientes. Los pares van como
// (stockActual, consumoPorUnidad). Devuelve -1 si ningún ingrediente
// restringe (receta vacía o todos con consumo cero).
func PortionsForProduct(pairs [][2]decimal.Decimal) int64 {
	best := int64(-1)
	for _, p := range pairs {
		n := PortionsFor(p[0], p[1])
		if n < 0 {
			continue
		}
		if best < 0 || n < best {
			best = n
		}
	}
	return best
}
