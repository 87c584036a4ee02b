package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"escandallo/models"
)

// IngredientIndex resolves ingredient ids for line costing.
type IngredientIndex map[uint]models.Ingredient

// NewIngredientIndex builds an index from the catalog's active ingredients.
func NewIngredientIndex(ingredients []models.Ingredient) IngredientIndex {
	idx := make(IngredientIndex, len(ingredients))
	for _, ing := range ingredients {
		idx[ing.ID] = ing
	}
	return idx
}

// PreparationCost carries a base preparation's derived figures.
type PreparationCost struct {
	Total      decimal.Decimal
	PerPortion decimal.Decimal
}

// effectiveYield substitutes 1 for a degenerate portion yield. Draft
// recipes routinely carry a zero yield, so the substitution is silent.
func effectiveYield(yield int) decimal.Decimal {
	if yield < 1 {
		return one
	}
	return decimal.NewFromInt(int64(yield))
}

// CostPreparation sums the landed cost of every ingredient line and derives
// the per-portion cost from the preparation's yield. A preparation with no
// lines costs zero.
func CostPreparation(prep models.BasePreparation, ingredients IngredientIndex, prices PriceIndex) (PreparationCost, []Diagnostic) {
	total := decimal.Zero
	var diags []Diagnostic

	for _, line := range prep.Lines {
		ing, ok := ingredients[line.IngredientID]
		if !ok {
			diags = append(diags, Diagnostic{
				Code:         CodeMalformedLine,
				Severity:     SeverityWarning,
				IngredientID: line.IngredientID,
				LineID:       line.ID,
				Detail:       fmt.Sprintf("preparation %q line %d references unknown ingredient %d", prep.Name, line.ID, line.IngredientID),
			})
			continue
		}

		landed, lineDiags := LandedUnitCost(ing, prices)
		diags = append(diags, lineDiags...)
		total = total.Add(line.Quantity.Mul(landed))
	}

	return PreparationCost{
		Total:      total,
		PerPortion: total.Div(effectiveYield(prep.PortionYield)),
	}, diags
}
