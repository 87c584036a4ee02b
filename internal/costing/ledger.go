package costing

import (
	"fmt"

	"escandallo/models"
)

// PriceIndex resolves an ingredient id to its single current price record.
// Build it from the full set of current-flagged records fetched for one
// computation; it is never cached across requests.
type PriceIndex struct {
	current    map[uint]models.PriceRecord
	conflicted map[uint]int
}

// NewPriceIndex indexes the supplied records by ingredient. Only records
// with the current flag contribute. An ingredient with more than one
// current record violates the ledger invariant; it is excluded from the
// index and reported as a fatal diagnostic, because no single value can
// stand in for its price.
func NewPriceIndex(records []models.PriceRecord) (PriceIndex, []Diagnostic) {
	idx := PriceIndex{
		current:    make(map[uint]models.PriceRecord, len(records)),
		conflicted: make(map[uint]int),
	}

	for _, record := range records {
		if !record.Current {
			continue
		}
		if n, ok := idx.conflicted[record.IngredientID]; ok {
			idx.conflicted[record.IngredientID] = n + 1
			continue
		}
		if _, ok := idx.current[record.IngredientID]; ok {
			delete(idx.current, record.IngredientID)
			idx.conflicted[record.IngredientID] = 2
			continue
		}
		idx.current[record.IngredientID] = record
	}

	var diags []Diagnostic
	for id, n := range idx.conflicted {
		diags = append(diags, Diagnostic{
			Code:         CodeLedgerConflict,
			Severity:     SeverityFatal,
			IngredientID: id,
			Detail:       fmt.Sprintf("ingredient %d has %d current price records, expected at most one", id, n),
		})
	}
	return idx, diags
}

// Current returns the current price record for the ingredient, or false
// when the ingredient has never been priced or its ledger is conflicted.
func (idx PriceIndex) Current(ingredientID uint) (models.PriceRecord, bool) {
	record, ok := idx.current[ingredientID]
	return record, ok
}

// Conflicted reports whether the ingredient's ledger violates the
// single-current-record invariant.
func (idx PriceIndex) Conflicted(ingredientID uint) bool {
	_, ok := idx.conflicted[ingredientID]
	return ok
}
