// Package catalog is the persistence collaborator for the costing engine.
// It owns ingredient, ledger, recipe, listing, and event-menu storage, and
// enforces at its boundary the invariants the engine depends on: the
// single-current-price swap and the exactly-one-reference rule for
// composition lines.
package catalog

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that the requested record does not exist.
	ErrNotFound = errors.New("catalog: record not found")
	// ErrLedgerConflict reports that an ingredient holds more than one
	// current price record. Costs derived from it are unreliable until
	// the ledger is repaired.
	ErrLedgerConflict = errors.New("catalog: ingredient has multiple current price records")
)

// Store is a gorm-backed implementation of the persistence contract the
// costing engine consumes.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewStore wraps the supplied database handle.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("catalog: database handle is nil")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	validate.RegisterStructValidation(validateCompositionLineInput, CompositionLineInput{})
	validate.RegisterStructValidation(validateEventMenuOptionInput, EventMenuOptionInput{})

	return &Store{db: db, validate: validate}, nil
}

// decimalAsFloat lets validator tags like gte/lte apply to decimal fields.
func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
