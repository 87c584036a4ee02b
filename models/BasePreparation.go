package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BasePreparation is a reusable sub-recipe (a stock, a sauce) that dishes
// consume by the portion. Its cost is always recomputed from current
// ingredient prices, never cached.
type BasePreparation struct {
	gorm.Model
	Name         string `gorm:"not null;index" json:"name"`
	PortionYield int    `gorm:"not null;default:1" json:"portion_yield"`
	Active       bool   `gorm:"not null;default:true" json:"active"`

	Lines []PreparationLine `gorm:"foreignKey:PreparationID" json:"lines,omitempty"`
}

// PreparationLine binds one ingredient and a quantity to a base preparation.
// Position preserves the order the kitchen wrote the recipe in.
type PreparationLine struct {
	gorm.Model
	PreparationID uint            `gorm:"not null;index" json:"preparation_id"`
	IngredientID  uint            `gorm:"not null" json:"ingredient_id"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	Position      int             `gorm:"not null;default:0" json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
