package promo

import "strings"

// Status is the three-way outcome of evaluating a code. User-visible
// messaging branches on it, so Invalid and Expired stay distinct.
type Status string

const (
	StatusNone    Status = "none"
	StatusApplied Status = "applied"
	StatusInvalid Status = "invalid"
	StatusExpired Status = "expired"
)

type Result struct {
	Status   Status `json:"status"`
	Discount int    `json:"discount"`
}

// Entry is one row of the promo table: a discount amount and whether the
// code has lapsed.
type Entry struct {
	Discount int
	Expired  bool
}

// DefaultCodes is the shipped promo table. It is configuration, not logic:
// a single code that has permanently lapsed.
func DefaultCodes() map[string]Entry {
	return map[string]Entry{
		"JV20": {Discount: 0, Expired: true},
	}
}

// Evaluator matches normalized codes against a static table.
type Evaluator struct {
	codes map[string]Entry
}

func NewEvaluator(codes map[string]Entry) *Evaluator {
	return &Evaluator{codes: codes}
}

// Evaluate trims and uppercases the code before lookup, so " jv20 " and
// "JV20" evaluate identically. Empty input yields None, unknown codes
// Invalid, lapsed codes Expired.
func (e *Evaluator) Evaluate(code string) Result {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Result{Status: StatusNone}
	}

	entry, ok := e.codes[normalized]
	if !ok {
		return Result{Status: StatusInvalid}
	}
	if entry.Expired {
		return Result{Status: StatusExpired}
	}
	return Result{Status: StatusApplied, Discount: entry.Discount}
}
