package costing

import (
	"testing"

	"escandallo/models"
)

func stockIngredients(t *testing.T) (IngredientIndex, PriceIndex) {
	t.Helper()

	carrot := models.Ingredient{Name: "Carrot", TaxPct: dec(t, "10"), ShrinkagePct: dec(t, "0")}
	carrot.ID = 1
	bone := models.Ingredient{Name: "Beef Bone", TaxPct: dec(t, "0"), ShrinkagePct: dec(t, "0")}
	bone.ID = 2

	prices := priceIndexFor(t, []models.PriceRecord{
		{IngredientID: 1, UnitPrice: dec(t, "2"), Current: true},
		{IngredientID: 2, UnitPrice: dec(t, "5"), Current: true},
	})
	return NewIngredientIndex([]models.Ingredient{carrot, bone}), prices
}

func TestCostPreparationSumsLandedLineCosts(t *testing.T) {
	t.Parallel()

	ingredients, prices := stockIngredients(t)
	prep := models.BasePreparation{
		Name:         "Beef Stock",
		PortionYield: 4,
		Lines: []models.PreparationLine{
			{IngredientID: 1, Quantity: dec(t, "0.5")}, // 0.5 * 2.2 = 1.1
			{IngredientID: 2, Quantity: dec(t, "2")},   // 2 * 5 = 10
		},
	}

	cost, diags := CostPreparation(prep, ingredients, prices)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	assertDecimal(t, cost.Total, "11.1")
	assertDecimal(t, cost.PerPortion, "2.775")
}

func TestCostPreparationYieldHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yield int
	}{
		{"unit yield equals total", 1},
		{"zero yield treated as one", 0},
		{"negative yield treated as one", -3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ingredients, prices := stockIngredients(t)
			prep := models.BasePreparation{
				Name:         "Demi-glace",
				PortionYield: tt.yield,
				Lines: []models.PreparationLine{
					{IngredientID: 2, Quantity: dec(t, "3")},
				},
			}

			cost, diags := CostPreparation(prep, ingredients, prices)
			if len(diags) != 0 {
				t.Fatalf("expected no diagnostics for degenerate yield, got %v", diags)
			}
			if !cost.PerPortion.Equal(cost.Total) {
				t.Fatalf("per-portion %s should equal total %s", cost.PerPortion, cost.Total)
			}
		})
	}
}

func TestCostPreparationWithoutLinesIsZero(t *testing.T) {
	t.Parallel()

	ingredients, prices := stockIngredients(t)
	prep := models.BasePreparation{Name: "Empty", PortionYield: 6}

	cost, diags := CostPreparation(prep, ingredients, prices)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !cost.Total.IsZero() || !cost.PerPortion.IsZero() {
		t.Fatalf("expected zero costs, got total=%s per-portion=%s", cost.Total, cost.PerPortion)
	}
}

func TestCostPreparationFlagsUnknownIngredient(t *testing.T) {
	t.Parallel()

	ingredients, prices := stockIngredients(t)
	prep := models.BasePreparation{
		Name:         "Mystery",
		PortionYield: 1,
		Lines: []models.PreparationLine{
			{IngredientID: 99, Quantity: dec(t, "1")},
			{IngredientID: 2, Quantity: dec(t, "1")},
		},
	}

	cost, diags := CostPreparation(prep, ingredients, prices)
	if len(diags) != 1 || diags[0].Code != CodeMalformedLine {
		t.Fatalf("expected one malformed-line diagnostic, got %v", diags)
	}
	assertDecimal(t, cost.Total, "5")
}
