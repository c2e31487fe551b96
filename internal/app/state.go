package app

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/jvdzdigital/storefront/internal/checkout"
)

// View is the top-level navigation mode. Transitions are the only
// navigation model; there is no history integration.
type View string

const (
	ViewBrowsing View = "browsing"
	ViewCheckout View = "checkout"
	ViewSuccess  View = "success"
)

var ErrEmptyCart = errors.New("cart is empty")

// Counter reports the cart badge number (satisfied by *cart.Ledger).
type Counter interface {
	Count() int
}

// State is the application controller: the single owner of the current
// view, the system banner, and the last confirmed order. It replaces the
// ambient globals of the original client with explicit mutation methods.
type State struct {
	mu        sync.RWMutex
	view      View
	banner    string
	dismissed bool
	lastOrder *checkout.Receipt

	cart Counter
}

func NewState(cart Counter) *State {
	return &State{view: ViewBrowsing, cart: cart}
}

// SetBanner records a non-fatal warning (configuration or catalog-fetch
// failure). A banner set after dismissal stays hidden; dismissal is sticky
// for the process.
func (s *State) SetBanner(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner = message
}

func (s *State) DismissBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed = true
}

func (s *State) Banner() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dismissed || s.banner == "" {
		return "", false
	}
	return s.banner, true
}

// CartCount reports the cart badge number for the session view.
func (s *State) CartCount() int {
	return s.cart.Count()
}

func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// GoBrowsing is always allowed; it is the back action from every view.
func (s *State) GoBrowsing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewBrowsing
}

// GoCheckout requires something to check out.
func (s *State) GoCheckout() error {
	if s.cart.Count() == 0 {
		return ErrEmptyCart
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewCheckout
	return nil
}

// OrderSucceeded is the pipeline's success callback: it records the receipt
// for the confirmation display and moves the view to Success. It is the
// only way to reach the Success view.
func (s *State) OrderSucceeded(r checkout.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrder = &r
	s.view = ViewSuccess
}

func (s *State) LastOrder() (checkout.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastOrder == nil {
		return checkout.Receipt{}, false
	}
	return *s.lastOrder, true
}
