package catalog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	applog "escandallo/internal/log"
	"escandallo/models"
)

// CurrentPrice returns the single current ledger record for the
// ingredient, ErrNotFound when the ingredient has never been priced, and
// ErrLedgerConflict when the single-current invariant is violated.
func (s *Store) CurrentPrice(ctx context.Context, ingredientID uint) (models.PriceRecord, error) {
	var records []models.PriceRecord
	err := s.db.WithContext(ctx).
		Where("ingredient_id = ? AND current = ?", ingredientID, true).
		Limit(2).
		Find(&records).Error
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("catalog: current price for ingredient %d: %w", ingredientID, err)
	}

	switch len(records) {
	case 0:
		return models.PriceRecord{}, ErrNotFound
	case 1:
		return records[0], nil
	default:
		return models.PriceRecord{}, ErrLedgerConflict
	}
}

// PriceHistory returns the ingredient's full ledger, newest first.
func (s *Store) PriceHistory(ctx context.Context, ingredientID uint) ([]models.PriceRecord, error) {
	var records []models.PriceRecord
	err := s.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		Order("effective_date DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: price history for ingredient %d: %w", ingredientID, err)
	}
	return records, nil
}

// ListCurrentPrices returns every current-flagged record. The engine
// indexes these for one computation; conflicting records are returned as
// stored so the index can report them.
func (s *Store) ListCurrentPrices(ctx context.Context) ([]models.PriceRecord, error) {
	var records []models.PriceRecord
	err := s.db.WithContext(ctx).
		Where("current = ?", true).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: list current prices: %w", err)
	}
	return records, nil
}

// AppendPrice records a new price for an ingredient. Clearing the previous
// current record and inserting the new one happen inside one transaction:
// a failure between the two steps would otherwise leave zero or two
// current records and silently corrupt every downstream cost.
func (s *Store) AppendPrice(ctx context.Context, input AppendPriceInput) (models.PriceRecord, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.PriceRecord{}, fmt.Errorf("catalog: invalid price record: %w", err)
	}

	effective := input.EffectiveDate
	if effective.IsZero() {
		effective = time.Now().UTC()
	}

	record := models.PriceRecord{
		IngredientID:  input.IngredientID,
		SupplierID:    input.SupplierID,
		UnitPrice:     input.UnitPrice,
		EffectiveDate: effective,
		Current:       true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PriceRecord{}).
			Where("ingredient_id = ? AND current = ?", input.IngredientID, true).
			Update("current", false).Error; err != nil {
			return fmt.Errorf("supersede current record: %w", err)
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("catalog: append price for ingredient %d: %w", input.IngredientID, err)
	}

	applog.Info(ctx, "price recorded",
		"ingredient_id", input.IngredientID,
		"unit_price", input.UnitPrice.String(),
	)
	return record, nil
}
