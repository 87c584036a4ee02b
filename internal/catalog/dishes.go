package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escandallo/internal/costing"
	applog "escandallo/internal/log"
	"escandallo/models"
)

// CreateDish stores a dish at the default recipe version.
func (s *Store) CreateDish(ctx context.Context, input DishInput) (models.Dish, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.Dish{}, fmt.Errorf("catalog: invalid dish: %w", err)
	}

	dish := models.Dish{
		Name:          input.Name,
		Section:       input.Section,
		PortionYield:  input.PortionYield,
		Preparation:   input.Preparation,
		RecipeVersion: models.DefaultRecipeVersion,
		Active:        true,
		Lines:         compositionLines(0, input.Lines),
	}
	if err := s.db.WithContext(ctx).Create(&dish).Error; err != nil {
		return models.Dish{}, fmt.Errorf("catalog: create dish: %w", err)
	}
	return dish, nil
}

// GetDish fetches a dish with its composition lines in recipe order.
func (s *Store) GetDish(ctx context.Context, id uint) (models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Dish{}, ErrNotFound
	}
	if err != nil {
		return models.Dish{}, fmt.Errorf("catalog: get dish %d: %w", id, err)
	}
	return dish, nil
}

// SaveDish applies an edit to a stored dish. The stored composition is the
// snapshot taken when the dish was loaded for editing; comparing it with
// the incoming lines decides whether the recipe version bumps. Name,
// section, and preparation-text edits never move the version.
func (s *Store) SaveDish(ctx context.Context, id uint, input DishInput) (models.Dish, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.Dish{}, fmt.Errorf("catalog: invalid dish: %w", err)
	}

	stored, err := s.GetDish(ctx, id)
	if err != nil {
		return models.Dish{}, err
	}

	updated := stored
	updated.Name = input.Name
	updated.Section = input.Section
	updated.PortionYield = input.PortionYield
	updated.Preparation = input.Preparation
	updated.Lines = compositionLines(id, input.Lines)
	updated.RecipeVersion = costing.EvaluateRecipeVersion(stored, updated)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&models.CompositionLine{}).Error; err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
		for i := range updated.Lines {
			if err := tx.Create(&updated.Lines[i]).Error; err != nil {
				return fmt.Errorf("insert line: %w", err)
			}
		}
		return tx.Model(&models.Dish{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":           updated.Name,
				"section":        updated.Section,
				"portion_yield":  updated.PortionYield,
				"preparation":    updated.Preparation,
				"recipe_version": updated.RecipeVersion,
			}).Error
	})
	if err != nil {
		return models.Dish{}, fmt.Errorf("catalog: save dish %d: %w", id, err)
	}

	if updated.RecipeVersion != stored.RecipeVersion {
		applog.Info(ctx, "recipe version bumped",
			"dish_id", id,
			"from", stored.RecipeVersion,
			"to", updated.RecipeVersion,
		)
	}
	return updated, nil
}

// ListActiveDishes returns active dishes with lines, ordered by section
// then name.
func (s *Store) ListActiveDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	err := s.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("active = ?", true).
		Order("section, name").
		Find(&dishes).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: list dishes: %w", err)
	}
	return dishes, nil
}

func compositionLines(dishID uint, inputs []CompositionLineInput) []models.CompositionLine {
	lines := make([]models.CompositionLine, 0, len(inputs))
	for i, input := range inputs {
		lines = append(lines, models.CompositionLine{
			DishID:        dishID,
			IngredientID:  input.IngredientID,
			PreparationID: input.PreparationID,
			Quantity:      input.Quantity,
			Position:      i,
		})
	}
	return lines
}
