package costing

import (
	"github.com/shopspring/decimal"

	"escandallo/models"
)

// Engine evaluates costs over one snapshot of catalog data. Build a fresh
// Engine per request: there is no caching of derived values, no dependency
// tracking, and no invalidation. Every figure reflects the ledger exactly
// as it was fetched, which is the contract the surrounding application
// relies on. The Engine performs no I/O and never blocks.
type Engine struct {
	ingredients  IngredientIndex
	preparations PreparationIndex
	prices       PriceIndex
	ledgerDiags  []Diagnostic
}

// NewEngine indexes the supplied catalog snapshot. Ledger-invariant
// violations found while indexing are reported here once and repeated on
// every computation that touches the conflicted ingredient.
func NewEngine(ingredients []models.Ingredient, preparations []models.BasePreparation, prices []models.PriceRecord) (*Engine, []Diagnostic) {
	priceIdx, diags := NewPriceIndex(prices)
	return &Engine{
		ingredients:  NewIngredientIndex(ingredients),
		preparations: NewPreparationIndex(preparations),
		prices:       priceIdx,
		ledgerDiags:  diags,
	}, diags
}

// LandedUnitCost resolves one ingredient's fully loaded unit cost.
func (e *Engine) LandedUnitCost(ing models.Ingredient) (decimal.Decimal, []Diagnostic) {
	return LandedUnitCost(ing, e.prices)
}

// PreparationCost prices a base preparation from current ingredient prices.
func (e *Engine) PreparationCost(prep models.BasePreparation) (PreparationCost, []Diagnostic) {
	return CostPreparation(prep, e.ingredients, e.prices)
}

// DishCost prices a dish from current ingredient and preparation costs.
func (e *Engine) DishCost(dish models.Dish) (DishCost, []Diagnostic) {
	return CostDish(dish, e.ingredients, e.preparations, e.prices)
}

// ListingAnalysis prices the dish behind the listing and derives suggested
// price, realized food-cost percentage, and margin health.
func (e *Engine) ListingAnalysis(dish models.Dish, listing models.MenuListing) (ListingAnalysis, []Diagnostic) {
	cost, diags := e.DishCost(dish)
	return AnalyzeListing(cost.Total, listing), diags
}

// EventMenuTotals projects an event menu for the supplied table count.
func (e *Engine) EventMenuTotals(menu models.EventMenu, tableCount int) EventTotals {
	return EventMenuTotals(menu, tableCount)
}
