package catalog

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"escandallo/models"
)

// IngredientInput creates or amends a catalog ingredient.
type IngredientInput struct {
	Name            string                    `validate:"required"`
	Category        models.IngredientCategory `validate:"oneof=meat fish produce dairy dry-goods beverage other"`
	Unit            string                    `validate:"required"`
	PackageQuantity decimal.Decimal           `validate:"gte=0"`
	TaxPct          decimal.Decimal           `validate:"gte=0,lte=100"`
	ShrinkagePct    decimal.Decimal           `validate:"gte=0,lte=100"`
}

// AppendPriceInput records a new ledger entry for an ingredient.
type AppendPriceInput struct {
	IngredientID  uint `validate:"required"`
	SupplierID    *uint
	UnitPrice     decimal.Decimal `validate:"gte=0"`
	EffectiveDate time.Time
}

// PreparationLineInput is one ingredient line of a base preparation.
type PreparationLineInput struct {
	IngredientID uint            `validate:"required"`
	Quantity     decimal.Decimal `validate:"gt=0"`
}

// BasePreparationInput creates a base preparation with its lines.
// Degenerate portion yields are accepted; the coster substitutes one.
type BasePreparationInput struct {
	Name         string `validate:"required"`
	PortionYield int
	Lines        []PreparationLineInput `validate:"dive"`
}

// CompositionLineInput is one costed line of a dish. Exactly one of
// IngredientID and PreparationID must be set; the struct-level rule below
// rejects lines with zero or two references before they reach storage.
type CompositionLineInput struct {
	IngredientID  *uint
	PreparationID *uint
	Quantity      decimal.Decimal `validate:"gt=0"`
}

// DishInput creates or amends a dish and its composition.
type DishInput struct {
	Name         string             `validate:"required"`
	Section      models.DishSection `validate:"oneof=starters mains pasta-and-rice salads desserts"`
	PortionYield int
	Preparation  string
	Lines        []CompositionLineInput `validate:"dive"`
}

// MenuListingInput places a dish on the carta.
type MenuListingInput struct {
	DishID          uint            `validate:"required"`
	MenuPrice       decimal.Decimal `validate:"gte=0"`
	TargetMarginPct decimal.Decimal `validate:"gte=0,lte=100"`
}

// EventCourseInput configures the servings per guest of one course.
type EventCourseInput struct {
	Course   models.EventCourse `validate:"oneof=starters mains desserts beverages"`
	Quantity int                `validate:"gte=1"`
}

// EventMenuInput creates an event menu shell; options are added separately
// so their cost snapshots can be captured one by one.
type EventMenuInput struct {
	Name            string `validate:"required"`
	Description     string
	GuestCount      int                `validate:"gte=0"`
	TargetMarginPct decimal.Decimal    `validate:"gte=0,lte=100"`
	SalePrice       decimal.Decimal    `validate:"gte=0"`
	Courses         []EventCourseInput `validate:"dive"`
}

// EventMenuOptionInput adds one selectable choice to an event menu course.
// Exactly one of DishID and IngredientID must be set. ReferencePrice
// overrides the derived reference price when the caller knows better.
type EventMenuOptionInput struct {
	Course         models.EventCourse `validate:"oneof=starters mains desserts beverages"`
	DishID         *uint
	IngredientID   *uint
	ReferencePrice *decimal.Decimal
}

func validateCompositionLineInput(sl validator.StructLevel) {
	input := sl.Current().Interface().(CompositionLineInput)
	if (input.IngredientID == nil) == (input.PreparationID == nil) {
		sl.ReportError(input.IngredientID, "IngredientID", "IngredientID", "exactly_one_reference", "")
	}
}

func validateEventMenuOptionInput(sl validator.StructLevel) {
	input := sl.Current().Interface().(EventMenuOptionInput)
	if (input.DishID == nil) == (input.IngredientID == nil) {
		sl.ReportError(input.DishID, "DishID", "DishID", "exactly_one_reference", "")
	}
}
