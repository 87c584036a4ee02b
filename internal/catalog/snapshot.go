package catalog

import (
	"context"

	"escandallo/internal/costing"
	"escandallo/models"
)

// CostingSnapshot is one consistent fetch of everything a cost computation
// walks: active ingredients, active base preparations, and the current
// price ledger. The engine recomputes from a fresh snapshot on every
// request; nothing derived is persisted or cached between requests.
type CostingSnapshot struct {
	Ingredients  []models.Ingredient
	Preparations []models.BasePreparation
	Prices       []models.PriceRecord
}

// LoadCostingSnapshot fetches the engine's inputs.
func (s *Store) LoadCostingSnapshot(ctx context.Context) (CostingSnapshot, error) {
	ingredients, err := s.ListActiveIngredients(ctx)
	if err != nil {
		return CostingSnapshot{}, err
	}
	preparations, err := s.ListActiveBasePreparations(ctx)
	if err != nil {
		return CostingSnapshot{}, err
	}
	prices, err := s.ListCurrentPrices(ctx)
	if err != nil {
		return CostingSnapshot{}, err
	}
	return CostingSnapshot{
		Ingredients:  ingredients,
		Preparations: preparations,
		Prices:       prices,
	}, nil
}

// Engine builds a costing engine over the snapshot. Ledger-invariant
// violations surface in the returned diagnostics.
func (snap CostingSnapshot) Engine() (*costing.Engine, []costing.Diagnostic) {
	return costing.NewEngine(snap.Ingredients, snap.Preparations, snap.Prices)
}
