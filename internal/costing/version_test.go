package costing

import (
	"testing"

	"escandallo/models"
)

func dishWithLines(version string, lines ...models.CompositionLine) models.Dish {
	return models.Dish{Name: "Paella", RecipeVersion: version, Lines: lines}
}

func TestEvaluateRecipeVersionUnrelatedEditsKeepVersion(t *testing.T) {
	t.Parallel()

	lines := []models.CompositionLine{
		{IngredientID: uintPtr(1), Quantity: dec(t, "0.5")},
		{PreparationID: uintPtr(2), Quantity: dec(t, "1")},
	}

	before := dishWithLines("1.0", lines...)
	after := dishWithLines("1.0", lines...)
	after.Name = "Paella Valenciana"
	after.Preparation = "Toast the rice before adding stock."

	if got := EvaluateRecipeVersion(before, after); got != "1.0" {
		t.Fatalf("expected version carried verbatim, got %q", got)
	}
}

func TestEvaluateRecipeVersionPreservesTrailingZeroFormatting(t *testing.T) {
	t.Parallel()

	before := dishWithLines("2.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne})
	after := dishWithLines("2.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne})

	if got := EvaluateRecipeVersion(before, after); got != "2.0" {
		t.Fatalf(`expected "2.0" verbatim, got %q`, got)
	}
}

func TestEvaluateRecipeVersionBumpsByTenth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before models.Dish
		after  models.Dish
		want   string
	}{
		{
			"quantity change",
			dishWithLines("1.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "0.5")}),
			dishWithLines("1.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "0.6")}),
			"1.1",
		},
		{
			"added line",
			dishWithLines("1.1", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne}),
			dishWithLines("1.1",
				models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne},
				models.CompositionLine{IngredientID: uintPtr(2), Quantity: decOne},
			),
			"1.2",
		},
		{
			"removed line",
			dishWithLines("1.5",
				models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne},
				models.CompositionLine{IngredientID: uintPtr(2), Quantity: decOne},
			),
			dishWithLines("1.5", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne}),
			"1.6",
		},
		{
			"reference kind change",
			dishWithLines("1.0", models.CompositionLine{IngredientID: uintPtr(3), Quantity: decOne}),
			dishWithLines("1.0", models.CompositionLine{PreparationID: uintPtr(3), Quantity: decOne}),
			"1.1",
		},
		{
			"many changes bump once",
			dishWithLines("1.0",
				models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne},
				models.CompositionLine{IngredientID: uintPtr(2), Quantity: decOne},
			),
			dishWithLines("1.0",
				models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "2")},
				models.CompositionLine{IngredientID: uintPtr(5), Quantity: dec(t, "3")},
				models.CompositionLine{PreparationID: uintPtr(9), Quantity: decOne},
			),
			"1.1",
		},
		{
			"crosses whole number",
			dishWithLines("1.9", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne}),
			dishWithLines("1.9", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "2")}),
			"2.0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EvaluateRecipeVersion(tt.before, tt.after); got != tt.want {
				t.Fatalf("EvaluateRecipeVersion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateRecipeVersionLineOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	before := dishWithLines("1.3",
		models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne},
		models.CompositionLine{PreparationID: uintPtr(2), Quantity: dec(t, "0.5")},
	)
	after := dishWithLines("1.3",
		models.CompositionLine{PreparationID: uintPtr(2), Quantity: dec(t, "0.5")},
		models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne},
	)

	if got := EvaluateRecipeVersion(before, after); got != "1.3" {
		t.Fatalf("reordering lines must not bump the version, got %q", got)
	}
}

func TestEvaluateRecipeVersionEquivalentQuantities(t *testing.T) {
	t.Parallel()

	before := dishWithLines("1.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "0.50")})
	after := dishWithLines("1.0", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "0.5")})

	if got := EvaluateRecipeVersion(before, after); got != "1.0" {
		t.Fatalf("numerically equal quantities must not bump the version, got %q", got)
	}
}

func TestEvaluateRecipeVersionUnparsableVersionRestarts(t *testing.T) {
	t.Parallel()

	before := dishWithLines("draft", models.CompositionLine{IngredientID: uintPtr(1), Quantity: decOne})
	after := dishWithLines("draft", models.CompositionLine{IngredientID: uintPtr(1), Quantity: dec(t, "2")})

	if got := EvaluateRecipeVersion(before, after); got != "1.1" {
		t.Fatalf("expected restart from the default version, got %q", got)
	}
}
