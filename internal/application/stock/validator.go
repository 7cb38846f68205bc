package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/internal/domain/stock"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// OrderLine una línea de un pedido candidato (aún sin persistir).
type OrderLine struct {
	ProductID string
	Quantity  int
}

// ShortageDetail faltante de un ingrediente para cumplir una línea completa.
type ShortageDetail struct {
	IngredientID   string
	IngredientName string
	Unit           string
	Have           decimal.Decimal
	Need           decimal.Decimal
	Shortage       decimal.Decimal // Need - Have
}

// ValidationResult veredicto consultivo sobre un pedido candidato.
// MaxPortions solo se calcula cuando hay faltantes: cota de cumplimiento
// parcial, nil si ningún producto arroja una cota positiva.
type ValidationResult struct {
	Fulfillable bool
	Missing     []ShortageDetail
	MaxPortions *int64
}

// lineRequirements requerimientos resueltos de una línea del pedido.
type lineRequirements struct {
	productID string
	reqs      []IngredientRequirement
}

// Validator clasifica un pedido candidato contra el stock actual.
// Consultivo: nunca bloquea filas ni muta estado, y su lectura puede quedar
// desactualizada para cuando el motor deduzca (ver motor). Ante cualquier
// error de lectura responde "cumplible": el tracking de ingredientes es una
// restricción blanda que no detiene la toma de pedidos.
type Validator struct {
	resolver       *Resolver
	ingredientRepo repository.IngredientRepository
	log            *logger.Logger
}

// NewValidator construye el validador con repos atados al pool.
func NewValidator(resolver *Resolver, ingredientRepo repository.IngredientRepository, log *logger.Logger) *Validator {
	return &Validator{
		resolver:       resolver,
		ingredientRepo: ingredientRepo,
		log:            log.Component("stock-validator"),
	}
}

// failOpen responde "cumplible" registrando la causa.
func (v *Validator) failOpen(err error, stage string) ValidationResult {
	v.log.Warn().Err(err).Str("stage", stage).Msg("validación de stock falló; se asume cumplible")
	return ValidationResult{Fulfillable: true}
}

// Validate evalúa línea por línea si el stock actual alcanza para la cantidad
// completa pedida. Cada línea se compara contra el stock vigente de forma
// independiente (sin descontar lo que exigirían las demás): es un aviso para
// el mesero, no una reserva.
func (v *Validator) Validate(ctx context.Context, items []OrderLine) ValidationResult {
	// Resolver requerimientos por línea y juntar los ingredientes a leer.
	perLine := make([]lineRequirements, 0, len(items))
	idSet := make(map[string]struct{})
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		reqs, err := v.resolver.ResolveProduct(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return v.failOpen(err, "resolve")
		}
		perLine = append(perLine, lineRequirements{productID: it.ProductID, reqs: reqs})
		for _, req := range reqs {
			idSet[req.IngredientID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return ValidationResult{Fulfillable: true}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	ingredients, err := v.ingredientRepo.ListByIDs(ctx, ids)
	if err != nil {
		return v.failOpen(err, "read-stock")
	}
	byID := make(map[string]*entity.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	var missing []ShortageDetail
	for _, line := range perLine {
		for _, req := range line.reqs {
			ing, ok := byID[req.IngredientID]
			if !ok {
				// Receta apunta a un ingrediente eliminado: sin restricción.
				continue
			}
			if ing.CurrentStock.LessThan(req.Total) {
				missing = append(missing, ShortageDetail{
					IngredientID:   ing.ID,
					IngredientName: ing.Name,
					Unit:           ing.Unit,
					Have:           ing.CurrentStock,
					Need:           req.Total,
					Shortage:       req.Total.Sub(ing.CurrentStock),
				})
			}
		}
	}
	if len(missing) == 0 {
		return ValidationResult{Fulfillable: true}
	}

	return ValidationResult{
		Fulfillable: false,
		Missing:     missing,
		MaxPortions: v.maxPortions(perLine, byID),
	}
}

// maxPortions calcula la cota de cumplimiento parcial: por producto,
// floor(min(stock/consumoPorUnidad)) ignorando consumos cero; la cota del
// pedido es el mínimo entre productos. nil cuando ningún producto arroja una
// cota positiva.
func (v *Validator) maxPortions(perLine []lineRequirements, byID map[string]*entity.Ingredient) *int64 {
	seen := make(map[string]struct{})
	bounds := make([]int64, 0, len(perLine))
	for _, line := range perLine {
		if _, dup := seen[line.productID]; dup {
			continue
		}
		seen[line.productID] = struct{}{}

		pairs := make([][2]decimal.Decimal, 0, len(line.reqs))
		for _, req := range line.reqs {
			ing, ok := byID[req.IngredientID]
			if !ok {
				continue
			}
			pairs = append(pairs, [2]decimal.Decimal{ing.CurrentStock, req.PerUnit})
		}
		if n := stock.PortionsForProduct(pairs); n >= 0 {
			bounds = append(bounds, n)
		}
	}

	positive := false
	for _, b := range bounds {
		if b > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return nil
	}
	min := bounds[0]
	for _, b := range bounds[1:] {
		if b < min {
			min = b
		}
	}
	return &min
}
