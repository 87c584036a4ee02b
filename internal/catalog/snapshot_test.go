package catalog

import (
	"context"
	"testing"

	"escandallo/internal/costing"
	"escandallo/models"
)

// Walks the full chain the engine contract describes: ledger to landed
// cost to dish cost to listing analysis, over data fetched from the store.
func TestCostingSnapshotEndToEnd(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	beef, err := store.CreateIngredient(ctx, IngredientInput{
		Name:         "Beef",
		Category:     models.CategoryMeat,
		Unit:         "kg",
		TaxPct:       mustDec("21"),
		ShrinkagePct: mustDec("10"),
	})
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	if _, err := store.AppendPrice(ctx, AppendPriceInput{IngredientID: beef.ID, UnitPrice: mustDec("1000")}); err != nil {
		t.Fatalf("append price: %v", err)
	}

	dish, err := store.CreateDish(ctx, entrecoteInput(beef.ID, "0.3"))
	if err != nil {
		t.Fatalf("create dish: %v", err)
	}
	listing, err := store.CreateMenuListing(ctx, MenuListingInput{
		DishID:          dish.ID,
		MenuPrice:       mustDec("1500"),
		TargetMarginPct: mustDec("30"),
	})
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}

	snap, err := store.LoadCostingSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	engine, diags := snap.Engine()
	if len(diags) != 0 {
		t.Fatalf("unexpected ledger diagnostics: %v", diags)
	}

	loaded, err := store.GetDish(ctx, dish.ID)
	if err != nil {
		t.Fatalf("get dish: %v", err)
	}
	analysis, diags := engine.ListingAnalysis(loaded, listing)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if !analysis.FoodCostPct.Equal(mustDec("26.62")) {
		t.Fatalf("expected food cost 26.62, got %s", analysis.FoodCostPct)
	}
	if !analysis.SuggestedPrice.Equal(mustDec("1331")) {
		t.Fatalf("expected suggested price 1331, got %s", analysis.SuggestedPrice)
	}
	if analysis.Health != costing.MarginOK {
		t.Fatalf("expected ok health, got %s", analysis.Health)
	}
}

// A freshly created ingredient without a ledger entry must cost zero and
// warn, never abort the listing computation.
func TestCostingSnapshotMissingPriceStaysComputable(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	truffle := seedIngredient(t, store, "Truffle")
	dish, err := store.CreateDish(ctx, entrecoteInput(truffle.ID, "0.05"))
	if err != nil {
		t.Fatalf("create dish: %v", err)
	}

	snap, err := store.LoadCostingSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	engine, _ := snap.Engine()

	loaded, err := store.GetDish(ctx, dish.ID)
	if err != nil {
		t.Fatalf("get dish: %v", err)
	}
	cost, diags := engine.DishCost(loaded)
	if !cost.Total.IsZero() {
		t.Fatalf("expected zero cost, got %s", cost.Total)
	}
	if len(diags) != 1 || diags[0].Code != costing.CodeMissingPrice {
		t.Fatalf("expected a missing-price warning, got %v", diags)
	}
	if costing.HasFatal(diags) {
		t.Fatal("missing price must not be fatal")
	}
}
