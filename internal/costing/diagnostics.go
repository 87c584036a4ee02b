package costing

import "fmt"

// Code identifies the kind of data-quality finding a computation produced.
type Code string

const (
	// CodeMissingPrice marks an ingredient that has never been priced.
	// The ingredient costs zero until a price is recorded.
	CodeMissingPrice Code = "missing-price"
	// CodeMalformedLine marks a composition line whose reference cannot be
	// resolved: no reference, both references, or an id the caller's
	// indexes do not contain. The line costs zero.
	CodeMalformedLine Code = "malformed-line"
	// CodeLedgerConflict marks an ingredient whose ledger holds more than
	// one current price record. No sensible fallback exists, so every cost
	// derived from the ingredient is unreliable until the ledger is repaired.
	CodeLedgerConflict Code = "ledger-conflict"
)

// Severity separates findings the caller may render inline from findings
// that make the numeric result unreliable.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityFatal   Severity = "fatal"
)

// Diagnostic is one finding accumulated during a cost computation. The
// engine never aborts a whole-dish or whole-menu computation over a single
// misconfigured line; it returns the zero-substituted result together with
// the diagnostics that explain which figures are suspect.
type Diagnostic struct {
	Code         Code
	Severity     Severity
	IngredientID uint
	LineID       uint
	Detail       string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s/%s: %s", d.Severity, d.Code, d.Detail)
}

// HasFatal reports whether any diagnostic in the list makes the numeric
// result unreliable.
func HasFatal(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}
