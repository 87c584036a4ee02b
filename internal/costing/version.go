package costing

import (
	"sort"

	"github.com/shopspring/decimal"

	"escandallo/models"
)

var versionStep = decimal.RequireFromString("0.1")

// EvaluateRecipeVersion decides the recipe version a dish should carry
// after a save. The composition snapshots before and after the edit are
// compared as multisets of (reference, kind, quantity); any added, removed,
// or requantified line bumps the version by exactly 0.1, once per save.
// When the composition is unchanged the stored version string is returned
// verbatim, trailing zeros included, so "1.0" never renormalizes to "1".
// Edits to unrelated fields (name, preparation text) therefore never move
// the version.
func EvaluateRecipeVersion(before, after models.Dish) string {
	if compositionEqual(before.Lines, after.Lines) {
		return before.RecipeVersion
	}
	return bumpVersion(before.RecipeVersion)
}

func bumpVersion(version string) string {
	parsed, err := decimal.NewFromString(version)
	if err != nil {
		parsed = decimal.RequireFromString(models.DefaultRecipeVersion)
	}
	return parsed.Add(versionStep).Round(1).StringFixed(1)
}

type lineKey struct {
	preparation bool
	reference   uint
	quantity    decimal.Decimal
}

func compositionEqual(before, after []models.CompositionLine) bool {
	if len(before) != len(after) {
		return false
	}

	a := compositionKeys(before)
	b := compositionKeys(after)
	for i := range a {
		if a[i].preparation != b[i].preparation || a[i].reference != b[i].reference {
			return false
		}
		if !a[i].quantity.Equal(b[i].quantity) {
			return false
		}
	}
	return true
}

func compositionKeys(lines []models.CompositionLine) []lineKey {
	keys := make([]lineKey, 0, len(lines))
	for _, line := range lines {
		key := lineKey{quantity: line.Quantity}
		switch {
		case line.PreparationID != nil:
			key.preparation = true
			key.reference = *line.PreparationID
		case line.IngredientID != nil:
			key.reference = *line.IngredientID
		}
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].preparation != keys[j].preparation {
			return !keys[i].preparation
		}
		if keys[i].reference != keys[j].reference {
			return keys[i].reference < keys[j].reference
		}
		return keys[i].quantity.Cmp(keys[j].quantity) < 0
	})
	return keys
}
