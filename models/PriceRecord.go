package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceRecord is one entry in an ingredient's append-only price ledger.
// Records are immutable once written, except that Current flips to false
// when a newer record supersedes it. At most one record per ingredient may
// have Current = true; the ledger is the sole source of truth for the
// price used in cost calculations.
type PriceRecord struct {
	gorm.Model
	IngredientID  uint            `gorm:"not null;index" json:"ingredient_id"`
	SupplierID    *uint           `gorm:"index" json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"unit_price"`
	EffectiveDate time.Time       `gorm:"not null" json:"effective_date"`
	Current       bool            `gorm:"not null;default:false;index" json:"current"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Supplier   *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
