package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	applog "escandallo/internal/log"
	"escandallo/models"
)

// CreateEventMenu stores an event menu shell with its course configuration.
func (s *Store) CreateEventMenu(ctx context.Context, input EventMenuInput) (models.EventMenu, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.EventMenu{}, fmt.Errorf("catalog: invalid event menu: %w", err)
	}

	menu := models.EventMenu{
		Name:            input.Name,
		Description:     input.Description,
		GuestCount:      input.GuestCount,
		TargetMarginPct: input.TargetMarginPct,
		SalePrice:       input.SalePrice,
	}
	for _, course := range input.Courses {
		menu.Courses = append(menu.Courses, models.EventMenuCourse{
			Course:   course.Course,
			Quantity: course.Quantity,
		})
	}

	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return models.EventMenu{}, fmt.Errorf("catalog: create event menu: %w", err)
	}
	return menu, nil
}

// GetEventMenu fetches an event menu with its courses and options.
func (s *Store) GetEventMenu(ctx context.Context, id uint) (models.EventMenu, error) {
	var menu models.EventMenu
	err := s.db.WithContext(ctx).
		Preload("Courses").
		Preload("Options").
		First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EventMenu{}, ErrNotFound
	}
	if err != nil {
		return models.EventMenu{}, fmt.Errorf("catalog: get event menu %d: %w", id, err)
	}
	return menu, nil
}

// AddEventMenuOption attaches one selectable choice to a course, capturing
// the option's cost and reference price at this moment. The snapshot
// deliberately does not follow later price changes; the event was quoted
// against today's figures.
func (s *Store) AddEventMenuOption(ctx context.Context, menuID uint, input EventMenuOptionInput) (models.EventMenuOption, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.EventMenuOption{}, fmt.Errorf("catalog: invalid event menu option: %w", err)
	}

	if _, err := s.GetEventMenu(ctx, menuID); err != nil {
		return models.EventMenuOption{}, err
	}

	cost, price, err := s.snapshotOption(ctx, input)
	if err != nil {
		return models.EventMenuOption{}, err
	}
	if input.ReferencePrice != nil {
		price = *input.ReferencePrice
	}

	option := models.EventMenuOption{
		EventMenuID:   menuID,
		Course:        input.Course,
		DishID:        input.DishID,
		IngredientID:  input.IngredientID,
		SnapshotCost:  cost,
		SnapshotPrice: price,
	}
	if err := s.db.WithContext(ctx).Create(&option).Error; err != nil {
		return models.EventMenuOption{}, fmt.Errorf("catalog: add event menu option: %w", err)
	}

	applog.Debug(ctx, "event option snapshotted",
		"event_menu_id", menuID,
		"course", string(input.Course),
		"cost", cost.String(),
	)
	return option, nil
}

// snapshotOption derives the option's current cost and reference price.
// Dishes cost their full composition and take the price of their listed
// carta entry when one exists; beverage ingredients cost their landed unit
// price and have no intrinsic reference price.
func (s *Store) snapshotOption(ctx context.Context, input EventMenuOptionInput) (decimal.Decimal, decimal.Decimal, error) {
	snap, err := s.LoadCostingSnapshot(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	engine, diags := snap.Engine()
	for _, diag := range diags {
		applog.Warn(ctx, "ledger conflict while snapshotting event option", "detail", diag.Detail)
	}

	if input.DishID != nil {
		dish, err := s.GetDish(ctx, *input.DishID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		cost, costDiags := engine.DishCost(dish)
		for _, diag := range costDiags {
			applog.Warn(ctx, "diagnostic while snapshotting event option", "detail", diag.Detail)
		}
		price, err := s.listedPrice(ctx, *input.DishID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		return cost.Total, price, nil
	}

	ing, err := s.GetIngredient(ctx, *input.IngredientID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	landed, costDiags := engine.LandedUnitCost(ing)
	for _, diag := range costDiags {
		applog.Warn(ctx, "diagnostic while snapshotting event option", "detail", diag.Detail)
	}
	return landed, decimal.Zero, nil
}

// listedPrice returns the menu price of the dish's most recent listed
// carta entry, or zero when the dish is not on the carta.
func (s *Store) listedPrice(ctx context.Context, dishID uint) (decimal.Decimal, error) {
	var listing models.MenuListing
	err := s.db.WithContext(ctx).
		Where("dish_id = ? AND listed = ?", dishID, true).
		Order("id DESC").
		First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("catalog: listed price for dish %d: %w", dishID, err)
	}
	return listing.MenuPrice, nil
}
