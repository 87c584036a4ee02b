package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"escandallo/models"
)

// CreateMenuListing places a dish on the carta.
func (s *Store) CreateMenuListing(ctx context.Context, input MenuListingInput) (models.MenuListing, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.MenuListing{}, fmt.Errorf("catalog: invalid menu listing: %w", err)
	}

	listing := models.MenuListing{
		DishID:          input.DishID,
		MenuPrice:       input.MenuPrice,
		TargetMarginPct: input.TargetMarginPct,
		Listed:          true,
	}
	if err := s.db.WithContext(ctx).Create(&listing).Error; err != nil {
		return models.MenuListing{}, fmt.Errorf("catalog: create menu listing: %w", err)
	}
	return listing, nil
}

// SetListingListed toggles a listing on or off the carta without deleting it.
func (s *Store) SetListingListed(ctx context.Context, id uint, listed bool) error {
	result := s.db.WithContext(ctx).
		Model(&models.MenuListing{}).
		Where("id = ?", id).
		Update("listed", listed)
	if result.Error != nil {
		return fmt.Errorf("catalog: toggle listing %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMenuListings returns listings with their dishes and composition
// lines preloaded so the caller can price them in one pass. With
// listedOnly, unlisted entries are skipped.
func (s *Store) ListMenuListings(ctx context.Context, listedOnly bool) ([]models.MenuListing, error) {
	query := s.db.WithContext(ctx).
		Preload("Dish.Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Dish")
	if listedOnly {
		query = query.Where("listed = ?", true)
	}

	var listings []models.MenuListing
	if err := query.Order("id").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("catalog: list menu listings: %w", err)
	}
	return listings, nil
}
