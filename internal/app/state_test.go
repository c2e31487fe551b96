package app

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/jvdzdigital/storefront/internal/checkout"
)

type stubCounter struct{ n int }

func (c *stubCounter) Count() int { return c.n }

func TestState_CheckoutRequiresNonEmptyCart(t *testing.T) {
	s := NewState(&stubCounter{n: 0})
	if err := s.GoCheckout(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty-cart error, got %v", err)
	}
	if s.View() != ViewBrowsing {
		t.Fatalf("expected view to stay browsing, got %s", s.View())
	}
}

func TestState_BrowseCheckoutRoundTrip(t *testing.T) {
	s := NewState(&stubCounter{n: 2})
	if err := s.GoCheckout(); err != nil {
		t.Fatalf("expected checkout transition, got %v", err)
	}
	if s.View() != ViewCheckout {
		t.Fatalf("expected checkout view, got %s", s.View())
	}
	s.GoBrowsing()
	if s.View() != ViewBrowsing {
		t.Fatalf("expected browsing view, got %s", s.View())
	}
}

func TestState_OrderSucceededRecordsReceipt(t *testing.T) {
	s := NewState(&stubCounter{n: 1})
	receipt := checkout.Receipt{Reference: "ref-1", Email: "amine@example.com", Total: 17600}
	s.OrderSucceeded(receipt)

	if s.View() != ViewSuccess {
		t.Fatalf("expected success view, got %s", s.View())
	}
	got, ok := s.LastOrder()
	if !ok || got.Email != "amine@example.com" || got.Reference != "ref-1" {
		t.Fatalf("expected recorded receipt, got %+v ok=%v", got, ok)
	}
}

func TestState_CartCountTracksLedger(t *testing.T) {
	counter := &stubCounter{n: 2}
	s := NewState(counter)
	if got := s.CartCount(); got != 2 {
		t.Fatalf("expected cart count 2, got %d", got)
	}
	counter.n = 0
	if got := s.CartCount(); got != 0 {
		t.Fatalf("expected cart count 0 after clearing, got %d", got)
	}
}

func TestState_BannerDismissalIsSticky(t *testing.T) {
	s := NewState(&stubCounter{})
	s.SetBanner("CONFIGURATION ERROR: endpoint not set")

	if msg, ok := s.Banner(); !ok || msg == "" {
		t.Fatalf("expected visible banner")
	}
	s.DismissBanner()
	if _, ok := s.Banner(); ok {
		t.Fatalf("expected banner hidden after dismissal")
	}
	// later warnings stay hidden for the rest of the process
	s.SetBanner("CONNECTION ERROR: catalog unreachable")
	if _, ok := s.Banner(); ok {
		t.Fatalf("expected dismissal to stick")
	}
}
