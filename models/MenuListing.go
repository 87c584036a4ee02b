package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuListing places a dish on the carta at a sale price with a target
// margin. Listings are toggled on and off rather than deleted; nothing in
// the model forbids a dish appearing in more than one listing.
type MenuListing struct {
	gorm.Model
	DishID          uint            `gorm:"not null;index" json:"dish_id"`
	MenuPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"menu_price"`
	TargetMarginPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"target_margin_pct"`
	Listed          bool            `gorm:"not null;default:true" json:"listed"`

	Dish *Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`
}
