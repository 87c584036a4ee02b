package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"escandallo/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// percentFactor converts a percentage into its multiplicative factor,
// e.g. 21 -> 1.21.
func percentFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(pct.Div(hundred))
}

// LandedUnitCost converts an ingredient's current ledger price into its
// fully loaded cost per base unit: tax is applied first, then shrinkage on
// the tax-inclusive amount.
//
// An ingredient without a current price costs zero and yields a warning
// diagnostic; the caller keeps computing so the rest of the recipe stays
// visible. A conflicted ledger also costs zero but is fatal to the figures
// derived from it.
func LandedUnitCost(ing models.Ingredient, prices PriceIndex) (decimal.Decimal, []Diagnostic) {
	if prices.Conflicted(ing.ID) {
		return decimal.Zero, []Diagnostic{{
			Code:         CodeLedgerConflict,
			Severity:     SeverityFatal,
			IngredientID: ing.ID,
			Detail:       fmt.Sprintf("ingredient %q (%d) has a conflicted price ledger", ing.Name, ing.ID),
		}}
	}

	record, ok := prices.Current(ing.ID)
	if !ok {
		return decimal.Zero, []Diagnostic{{
			Code:         CodeMissingPrice,
			Severity:     SeverityWarning,
			IngredientID: ing.ID,
			Detail:       fmt.Sprintf("ingredient %q (%d) has no current price", ing.Name, ing.ID),
		}}
	}

	landed := record.UnitPrice.
		Mul(percentFactor(ing.TaxPct)).
		Mul(percentFactor(ing.ShrinkagePct))
	return landed, nil
}
