package costing

import (
	"testing"

	"escandallo/models"
)

func TestEngineEndToEndBeefListing(t *testing.T) {
	t.Parallel()

	beef := models.Ingredient{Name: "Beef", TaxPct: dec(t, "21"), ShrinkagePct: dec(t, "10")}
	beef.ID = 1

	engine, diags := NewEngine(
		[]models.Ingredient{beef},
		nil,
		[]models.PriceRecord{{IngredientID: 1, UnitPrice: dec(t, "1000"), Current: true}},
	)
	if len(diags) != 0 {
		t.Fatalf("unexpected ledger diagnostics: %v", diags)
	}

	landed, diags := engine.LandedUnitCost(beef)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	assertDecimal(t, landed, "1331")

	dish := models.Dish{
		Name:  "Entrecote",
		Lines: []models.CompositionLine{{IngredientID: uintPtr(1), Quantity: dec(t, "0.3")}},
	}
	listing := models.MenuListing{MenuPrice: dec(t, "1500"), TargetMarginPct: dec(t, "30")}

	analysis, diags := engine.ListingAnalysis(dish, listing)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	assertDecimal(t, analysis.FoodCostPct, "26.62")
	assertDecimal(t, analysis.SuggestedPrice, "1331")
	if analysis.Health != MarginOK {
		t.Fatalf("expected ok health, got %s", analysis.Health)
	}
}

func TestEngineSurfacesLedgerConflicts(t *testing.T) {
	t.Parallel()

	oil := models.Ingredient{Name: "Olive Oil"}
	oil.ID = 2

	engine, diags := NewEngine(
		[]models.Ingredient{oil},
		nil,
		[]models.PriceRecord{
			{IngredientID: 2, UnitPrice: dec(t, "8"), Current: true},
			{IngredientID: 2, UnitPrice: dec(t, "9"), Current: true},
		},
	)
	if !HasFatal(diags) {
		t.Fatalf("expected fatal ledger diagnostics, got %v", diags)
	}

	dish := models.Dish{
		Name:  "Confit",
		Lines: []models.CompositionLine{{IngredientID: uintPtr(2), Quantity: decOne}},
	}
	cost, diags := engine.DishCost(dish)
	if !cost.Total.IsZero() {
		t.Fatalf("conflicted ingredient must cost zero, got %s", cost.Total)
	}
	if !HasFatal(diags) {
		t.Fatalf("expected the conflict repeated on the computation, got %v", diags)
	}
}
