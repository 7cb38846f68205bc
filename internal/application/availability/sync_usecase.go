package availability

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// ProductSyncDetail estado antes/después de la bandera de un producto.
type ProductSyncDetail struct {
	ProductID string
	Name      string
	Before    bool
	After     bool
}

// SyncReport resultado de una corrida de sincronización por lote.
type SyncReport struct {
	Scanned  int // productos recalculados
	Enabled  int // pasaron a disponibles
	Disabled int // pasaron a no disponibles
	Details  []ProductSyncDetail
}

// ProductFlag bandera vigente de un producto del catálogo.
type ProductFlag struct {
	ProductID string
	Name      string
	Available bool
}

// SyncUseCase recalcula la bandera available de los productos a partir de la
// suficiencia de los ingredientes de su receta. La bandera es estado derivado
// y reproducible: este caso de uso es idempotente y se puede re-ejecutar sin
// efectos acumulados.
type SyncUseCase struct {
	productRepo     repository.ProductRepository
	recipeRepo      repository.RecipeRepository
	ingredientRepo  repository.IngredientRepository
	historyRepo     repository.StockHistoryRepository
	defaultLookback int
	log             *logger.Logger
}

// NewSyncUseCase construye el sincronizador. defaultLookback (minutos) acota
// la ventana del lote cuando el caller no la indica.
func NewSyncUseCase(
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
	defaultLookback int,
	log *logger.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		productRepo:     productRepo,
		recipeRepo:      recipeRepo,
		ingredientRepo:  ingredientRepo,
		historyRepo:     historyRepo,
		defaultLookback: defaultLookback,
		log:             log.Component("availability-sync"),
	}
}

// computeAvailable deriva la disponibilidad: sin receta → disponible; algún
// ingrediente con stock <= 0 → no disponible; si no → disponible. Un
// ingrediente bajo pero no agotado no bloquea (eso es una alerta, no un
// bloqueo). Errores de lectura → disponible (fail open: nunca esconder un
// producto vendible por una falla transitoria) y log.
func (uc *SyncUseCase) computeAvailable(ctx context.Context, productID string) bool {
	recipe, err := uc.recipeRepo.ListByProduct(ctx, productID)
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", productID).
			Msg("receta ilegible; el producto queda disponible")
		return true
	}
	if len(recipe) == 0 {
		return true
	}
	ids := make([]string, 0, len(recipe))
	for _, it := range recipe {
		ids = append(ids, it.IngredientID)
	}
	// Ingredientes eliminados no aparecen en la lectura: sin restricción.
	ingredients, err := uc.ingredientRepo.ListByIDs(ctx, ids)
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", productID).
			Msg("stock ilegible; el producto queda disponible")
		return true
	}
	for _, ing := range ingredients {
		if ing.CurrentStock.LessThanOrEqual(decimal.Zero) {
			return false
		}
	}
	return true
}

// SyncOne recalcula la bandera de un producto y la escribe solo si cambió.
// Devuelve el antes/después.
func (uc *SyncUseCase) SyncOne(ctx context.Context, productID string) (*ProductSyncDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	after := uc.computeAvailable(ctx, productID)
	detail := &ProductSyncDetail{
		ProductID: product.ID,
		Name:      product.Name,
		Before:    product.Available,
		After:     after,
	}
	if after != product.Available {
		if err := uc.productRepo.UpdateAvailability(ctx, productID, after); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ListFlags devuelve las banderas vigentes del catálogo (paginado).
func (uc *SyncUseCase) ListFlags(ctx context.Context, limit, offset int) ([]ProductFlag, error) {
	products, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	flags := make([]ProductFlag, 0, len(products))
	for _, p := range products {
		flags = append(flags, ProductFlag{ProductID: p.ID, Name: p.Name, Available: p.Available})
	}
	return flags, nil
}

// SyncBatch recalcula los productos cuyas recetas usan ingredientes con
// movimientos dentro de la ventana. Así el job periódico corrige el drift sin
// recorrer todo el catálogo en cada tick; la ventana acota la staleness.
func (uc *SyncUseCase) SyncBatch(ctx context.Context, sinceMinutes int) (*SyncReport, error) {
	if sinceMinutes <= 0 {
		sinceMinutes = uc.defaultLookback
	}
	since := time.Now().Add(-time.Duration(sinceMinutes) * time.Minute)

	ingredientIDs, err := uc.historyRepo.DistinctIngredientIDsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	productIDs, err := uc.recipeRepo.ProductIDsByIngredients(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{}
	for _, id := range productIDs {
		detail, err := uc.SyncOne(ctx, id)
		if err != nil {
			// Aislamiento por producto: una falla no detiene el lote.
			uc.log.Warn().Err(err).Str("product_id", id).
				Msg("sync de disponibilidad falló para el producto")
			continue
		}
		report.Scanned++
		if detail.Before != detail.After {
			if detail.After {
				report.Enabled++
			} else {
				report.Disabled++
			}
		}
		report.Details = append(report.Details, *detail)
	}
	return report, nil
}
