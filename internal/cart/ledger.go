package cart

import "sync"

// Ledger is the in-memory cart: an insertion-ordered list of lines keyed by
// product uuid. Quantities are merged on repeated adds; decrements clamp at
// 1 and never remove a line, removal is an explicit separate action.
type Ledger struct {
	mu    sync.RWMutex
	lines []Line
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add increments the existing line for the product or appends a new line
// with quantity 1. It always succeeds; stock enforcement belongs to the
// surface that offers the add action, not to the ledger.
func (l *Ledger) Add(p Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.lines {
		if l.lines[i].UUID == p.UUID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, Line{Product: p, Quantity: 1})
}

// AdjustQuantity applies delta to the line's quantity, clamped to a minimum
// of 1. Unknown uuids are a no-op.
func (l *Ledger) AdjustQuantity(uuid string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.lines {
		if l.lines[i].UUID == uuid {
			q := l.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			l.lines[i].Quantity = q
			return
		}
	}
}

// Remove deletes the line if present; calling it again is a safe no-op.
func (l *Ledger) Remove(uuid string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.lines {
		if l.lines[i].UUID == uuid {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a snapshot copy in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Count is the total quantity across all lines (the cart badge number).
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Total is recomputed on every call, never cached.
func (l *Ledger) Total() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sum := 0
	for _, line := range l.lines {
		sum += line.Price * line.Quantity
	}
	return sum
}

// Clear empties the ledger. It is called once per order, on confirmed
// successful submission.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}
