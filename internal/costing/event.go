package costing

import (
	"github.com/shopspring/decimal"

	"escandallo/models"
)

// EventTotals carries an event menu's derived figures, including the batch
// projection for the table count supplied at query time.
type EventTotals struct {
	MenuCost          decimal.Decimal
	ReferencePrice    decimal.Decimal
	CostPerGuest      decimal.Decimal
	SuggestedPrice    decimal.Decimal
	RealizedMarginPct decimal.Decimal
	Contribution      decimal.Decimal
	EventTotalCost    decimal.Decimal
	EventTotalRevenue decimal.Decimal
}

// EventMenuTotals prices an event menu from the cost and reference-price
// snapshots carried by its options. Options within a course are averaged,
// not summed: each diner picks one of the offered choices, so cost scales
// with the servings configured per course, never with how many choices
// were offered. tableCount is the external batch multiplier; it is not
// persisted with the menu.
func EventMenuTotals(menu models.EventMenu, tableCount int) EventTotals {
	totals := EventTotals{
		MenuCost:       decimal.Zero,
		ReferencePrice: decimal.Zero,
	}

	for _, course := range models.EventCourses() {
		options := menu.CourseOptions(course)
		if len(options) == 0 {
			continue
		}
		quantity := decimal.NewFromInt(int64(menu.CourseQuantity(course)))
		avgCost, avgPrice := courseAverages(options)
		totals.MenuCost = totals.MenuCost.Add(avgCost.Mul(quantity))
		totals.ReferencePrice = totals.ReferencePrice.Add(avgPrice.Mul(quantity))
	}

	totals.CostPerGuest = decimal.Zero
	if menu.GuestCount > 0 {
		totals.CostPerGuest = totals.MenuCost.Div(decimal.NewFromInt(int64(menu.GuestCount)))
	}

	totals.SuggestedPrice = decimal.Zero
	if menu.TargetMarginPct.IsPositive() {
		totals.SuggestedPrice = totals.CostPerGuest.Div(menu.TargetMarginPct.Div(hundred))
	}

	totals.RealizedMarginPct = decimal.Zero
	if menu.SalePrice.IsPositive() {
		totals.RealizedMarginPct = menu.SalePrice.Sub(totals.CostPerGuest).Div(menu.SalePrice).Mul(hundred)
	}
	totals.Contribution = menu.SalePrice.Sub(totals.CostPerGuest)

	tables := decimal.NewFromInt(int64(tableCount))
	totals.EventTotalCost = totals.MenuCost.Mul(tables)
	totals.EventTotalRevenue = menu.SalePrice.Mul(decimal.NewFromInt(int64(menu.GuestCount))).Mul(tables)

	return totals
}

// courseAverages returns the mean snapshot cost and reference price across
// the course's options.
func courseAverages(options []models.EventMenuOption) (decimal.Decimal, decimal.Decimal) {
	costSum := decimal.Zero
	priceSum := decimal.Zero
	for _, opt := range options {
		costSum = costSum.Add(opt.SnapshotCost)
		priceSum = priceSum.Add(opt.SnapshotPrice)
	}
	count := decimal.NewFromInt(int64(len(options)))
	return costSum.Div(count), priceSum.Div(count)
}
