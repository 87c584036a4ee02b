package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"escandallo/models"
)

// CreateBasePreparation stores a sub-recipe and its ingredient lines.
func (s *Store) CreateBasePreparation(ctx context.Context, input BasePreparationInput) (models.BasePreparation, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.BasePreparation{}, fmt.Errorf("catalog: invalid base preparation: %w", err)
	}

	prep := models.BasePreparation{
		Name:         input.Name,
		PortionYield: input.PortionYield,
		Active:       true,
	}
	for i, line := range input.Lines {
		prep.Lines = append(prep.Lines, models.PreparationLine{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Position:     i,
		})
	}

	if err := s.db.WithContext(ctx).Create(&prep).Error; err != nil {
		return models.BasePreparation{}, fmt.Errorf("catalog: create base preparation: %w", err)
	}
	return prep, nil
}

// ReplacePreparationLines swaps a preparation's composition for the
// supplied lines. Derived costs are never stored, so no recomputation
// happens here; the next engine build picks the change up.
func (s *Store) ReplacePreparationLines(ctx context.Context, prepID uint, lines []PreparationLineInput) (models.BasePreparation, error) {
	for _, line := range lines {
		if err := s.validate.Struct(line); err != nil {
			return models.BasePreparation{}, fmt.Errorf("catalog: invalid preparation line: %w", err)
		}
	}

	var prep models.BasePreparation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prep, prepID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("preparation_id = ?", prepID).Delete(&models.PreparationLine{}).Error; err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
		for i, line := range lines {
			record := models.PreparationLine{
				PreparationID: prepID,
				IngredientID:  line.IngredientID,
				Quantity:      line.Quantity,
				Position:      i,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("insert line: %w", err)
			}
			prep.Lines = append(prep.Lines, record)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.BasePreparation{}, ErrNotFound
		}
		return models.BasePreparation{}, fmt.Errorf("catalog: replace lines of preparation %d: %w", prepID, err)
	}
	return prep, nil
}

// ListActiveBasePreparations returns active sub-recipes with their lines,
// ordered by name.
func (s *Store) ListActiveBasePreparations(ctx context.Context) ([]models.BasePreparation, error) {
	var preps []models.BasePreparation
	err := s.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("active = ?", true).
		Order("name").
		Find(&preps).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: list base preparations: %w", err)
	}
	return preps, nil
}
