package costing

import (
	"github.com/shopspring/decimal"

	"escandallo/models"
)

// MarginHealth classifies how far a listing's realized food cost sits from
// its target.
type MarginHealth string

const (
	MarginOK      MarginHealth = "ok"
	MarginWarning MarginHealth = "warning"
	MarginDanger  MarginHealth = "danger"
)

// marginTolerance is the fixed band above the target within which a listing
// is warned rather than flagged. It is not configurable per listing.
var marginTolerance = decimal.RequireFromString("1.1")

// ListingAnalysis carries a menu listing's derived pricing figures.
type ListingAnalysis struct {
	SuggestedPrice decimal.Decimal
	FoodCostPct    decimal.Decimal
	Health         MarginHealth
}

// AnalyzeListing compares a dish's cost against its menu price and target
// margin. A zero target yields a zero suggested price and a zero menu price
// yields a zero food-cost percentage; both keep unpriced drafts computable.
func AnalyzeListing(cost decimal.Decimal, listing models.MenuListing) ListingAnalysis {
	analysis := ListingAnalysis{
		SuggestedPrice: decimal.Zero,
		FoodCostPct:    decimal.Zero,
	}

	if listing.TargetMarginPct.IsPositive() {
		analysis.SuggestedPrice = cost.Div(listing.TargetMarginPct.Div(hundred))
	}
	if listing.MenuPrice.IsPositive() {
		analysis.FoodCostPct = cost.Div(listing.MenuPrice).Mul(hundred)
	}

	analysis.Health = classifyMargin(analysis.FoodCostPct, listing.TargetMarginPct)
	return analysis
}

// classifyMargin partitions realized food cost into three strict bands:
// at or below target, within ten percent above target, beyond.
func classifyMargin(realized, target decimal.Decimal) MarginHealth {
	switch {
	case realized.LessThanOrEqual(target):
		return MarginOK
	case realized.LessThanOrEqual(target.Mul(marginTolerance)):
		return MarginWarning
	default:
		return MarginDanger
	}
}
