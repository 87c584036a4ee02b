package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	applog "escandallo/internal/log"
	"escandallo/models"
)

// CreateIngredient adds a new ingredient to the purchasing catalog.
func (s *Store) CreateIngredient(ctx context.Context, input IngredientInput) (models.Ingredient, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.Ingredient{}, fmt.Errorf("catalog: invalid ingredient: %w", err)
	}

	ing := models.Ingredient{
		Name:            input.Name,
		Category:        input.Category,
		Unit:            input.Unit,
		PackageQuantity: input.PackageQuantity,
		TaxPct:          input.TaxPct,
		ShrinkagePct:    input.ShrinkagePct,
		Active:          true,
	}
	if err := s.db.WithContext(ctx).Create(&ing).Error; err != nil {
		return models.Ingredient{}, fmt.Errorf("catalog: create ingredient: %w", err)
	}

	applog.Debug(ctx, "ingredient created", "id", ing.ID, "name", ing.Name)
	return ing, nil
}

// DeactivateIngredient soft-deletes an ingredient. Its price history and
// the recipes that reference it are left untouched.
func (s *Store) DeactivateIngredient(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("catalog: deactivate ingredient %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetIngredient fetches one ingredient regardless of its active flag.
func (s *Store) GetIngredient(ctx context.Context, id uint) (models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.WithContext(ctx).First(&ing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ingredient{}, ErrNotFound
	}
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("catalog: get ingredient %d: %w", id, err)
	}
	return ing, nil
}

// ListActiveIngredients returns the active catalog ordered by name.
func (s *Store) ListActiveIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&ingredients).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: list ingredients: %w", err)
	}
	return ingredients, nil
}
