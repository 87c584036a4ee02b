package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"escandallo/models"
)

// PreparationIndex resolves base-preparation ids for line costing.
type PreparationIndex map[uint]models.BasePreparation

// NewPreparationIndex builds an index from the catalog's active preparations.
func NewPreparationIndex(preps []models.BasePreparation) PreparationIndex {
	idx := make(PreparationIndex, len(preps))
	for _, prep := range preps {
		idx[prep.ID] = prep
	}
	return idx
}

// LineCost pairs a composition line with its resolved cost.
type LineCost struct {
	Line models.CompositionLine
	Cost decimal.Decimal
}

// DishCost carries a dish's derived figures. Total is the sum of line
// costs; it is deliberately not divided by the dish's portion yield, which
// means a dish is priced as one saleable portion wherever it appears.
type DishCost struct {
	Total decimal.Decimal
	Lines []LineCost
}

// CostDish resolves every composition line against the supplied indexes.
// Ingredient lines cost quantity times landed unit cost; preparation lines
// cost quantity times the preparation's per-portion cost. A line that
// resolves to neither kind costs zero and is reported, never thrown: the
// surrounding application must stay usable while the recipe is repaired.
func CostDish(dish models.Dish, ingredients IngredientIndex, preps PreparationIndex, prices PriceIndex) (DishCost, []Diagnostic) {
	result := DishCost{
		Total: decimal.Zero,
		Lines: make([]LineCost, 0, len(dish.Lines)),
	}
	var diags []Diagnostic

	for _, line := range dish.Lines {
		cost, lineDiags := costLine(dish, line, ingredients, preps, prices)
		diags = append(diags, lineDiags...)
		result.Lines = append(result.Lines, LineCost{Line: line, Cost: cost})
		result.Total = result.Total.Add(cost)
	}

	return result, diags
}

func costLine(dish models.Dish, line models.CompositionLine, ingredients IngredientIndex, preps PreparationIndex, prices PriceIndex) (decimal.Decimal, []Diagnostic) {
	switch {
	case line.IngredientID != nil && line.PreparationID != nil:
		return decimal.Zero, []Diagnostic{malformedLine(dish, line, "references both an ingredient and a preparation")}

	case line.IngredientID != nil:
		ing, ok := ingredients[*line.IngredientID]
		if !ok {
			return decimal.Zero, []Diagnostic{malformedLine(dish, line, fmt.Sprintf("references unknown ingredient %d", *line.IngredientID))}
		}
		landed, diags := LandedUnitCost(ing, prices)
		return line.Quantity.Mul(landed), diags

	case line.PreparationID != nil:
		prep, ok := preps[*line.PreparationID]
		if !ok {
			return decimal.Zero, []Diagnostic{malformedLine(dish, line, fmt.Sprintf("references unknown preparation %d", *line.PreparationID))}
		}
		prepCost, diags := CostPreparation(prep, ingredients, prices)
		return line.Quantity.Mul(prepCost.PerPortion), diags

	default:
		return decimal.Zero, []Diagnostic{malformedLine(dish, line, "references neither an ingredient nor a preparation")}
	}
}

func malformedLine(dish models.Dish, line models.CompositionLine, detail string) Diagnostic {
	return Diagnostic{
		Code:     CodeMalformedLine,
		Severity: SeverityWarning,
		LineID:   line.ID,
		Detail:   fmt.Sprintf("dish %q line %d %s", dish.Name, line.ID, detail),
	}
}
