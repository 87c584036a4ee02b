package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IngredientCategory classifies an ingredient within the purchasing catalog.
type IngredientCategory string

const (
	CategoryMeat     IngredientCategory = "meat"
	CategoryFish     IngredientCategory = "fish"
	CategoryProduce  IngredientCategory = "produce"
	CategoryDairy    IngredientCategory = "dairy"
	CategoryDryGoods IngredientCategory = "dry-goods"
	CategoryBeverage IngredientCategory = "beverage"
	CategoryOther    IngredientCategory = "other"
)

// IngredientCategories returns the canonical category values accepted by the catalog.
func IngredientCategories() []IngredientCategory {
	return []IngredientCategory{
		CategoryMeat,
		CategoryFish,
		CategoryProduce,
		CategoryDairy,
		CategoryDryGoods,
		CategoryBeverage,
		CategoryOther,
	}
}

// Ingredient is a raw purchasable item. Landed cost derives from its current
// price record plus the tax and shrinkage percentages stored here.
// Ingredients are never destroyed; deactivation flips Active to false.
type Ingredient struct {
	gorm.Model
	Name            string             `gorm:"not null;index" json:"name"`
	Category        IngredientCategory `gorm:"type:varchar(32);not null;default:other" json:"category"`
	Unit            string             `gorm:"type:varchar(16);not null;default:kg" json:"unit"`
	PackageQuantity decimal.Decimal    `gorm:"type:decimal(12,3);not null;default:1" json:"package_quantity"`
	TaxPct          decimal.Decimal    `gorm:"type:decimal(5,2);not null;default:0" json:"tax_pct"`
	ShrinkagePct    decimal.Decimal    `gorm:"type:decimal(5,2);not null;default:0" json:"shrinkage_pct"`
	Active          bool               `gorm:"not null;default:true" json:"active"`

	Prices []PriceRecord `gorm:"foreignKey:IngredientID" json:"prices,omitempty"`
}
