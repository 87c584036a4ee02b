package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DishSection places a dish within the menu structure.
type DishSection string

const (
	SectionStarters     DishSection = "starters"
	SectionMains        DishSection = "mains"
	SectionPastaAndRice DishSection = "pasta-and-rice"
	SectionSalads       DishSection = "salads"
	SectionDesserts     DishSection = "desserts"
)

// DishSections returns the canonical section values in menu order.
func DishSections() []DishSection {
	return []DishSection{
		SectionStarters,
		SectionMains,
		SectionPastaAndRice,
		SectionSalads,
		SectionDesserts,
	}
}

// DefaultRecipeVersion is the version assigned to a dish that has never had
// its composition changed.
const DefaultRecipeVersion = "1.0"

// Dish is a sellable recipe composed of ingredients and base preparations.
// RecipeVersion is a one-decimal string ("1.0", "1.1", ...) bumped whenever
// the composition changes; it is a change signal, not a conflict resolver.
type Dish struct {
	gorm.Model
	Name          string      `gorm:"not null;index" json:"name"`
	Section       DishSection `gorm:"type:varchar(32);not null;default:mains" json:"section"`
	PortionYield  int         `gorm:"not null;default:1" json:"portion_yield"`
	Preparation   string      `gorm:"type:text" json:"preparation"`
	RecipeVersion string      `gorm:"type:varchar(16);not null;default:'1.0'" json:"recipe_version"`
	Active        bool        `gorm:"not null;default:true" json:"active"`

	Lines []CompositionLine `gorm:"foreignKey:DishID" json:"lines,omitempty"`
}

// CompositionLine is one costed line of a dish. Exactly one of IngredientID
// and PreparationID must be set; the catalog rejects lines with zero or two
// references before they reach storage.
type CompositionLine struct {
	gorm.Model
	DishID        uint            `gorm:"not null;index" json:"dish_id"`
	IngredientID  *uint           `json:"ingredient_id,omitempty"`
	PreparationID *uint           `json:"preparation_id,omitempty"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	Position      int             `gorm:"not null;default:0" json:"position"`

	Ingredient  *Ingredient      `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Preparation *BasePreparation `gorm:"foreignKey:PreparationID" json:"preparation,omitempty"`
}
