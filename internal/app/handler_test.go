package app

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithSession(t *testing.T, cartCount int) (*fiber.App, *State) {
	t.Helper()
	state := NewState(&stubCounter{n: cartCount})
	app := fiber.New()
	NewHandler(state).RegisterPublicRoutes(app)
	return app, state
}

func TestSessionRoutes_GetReflectsState(t *testing.T) {
	app, state := makeAppWithSession(t, 3)
	state.SetBanner("CONFIGURATION ERROR: endpoint not set")

	req := httptest.NewRequest("GET", "/api/v1/session", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	var body sessionResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode session: %v", err)
	}
	if body.View != ViewBrowsing || body.CartCount != 3 {
		t.Fatalf("unexpected session: %+v", body)
	}
	if !strings.Contains(body.Banner, "CONFIGURATION ERROR") {
		t.Fatalf("expected banner in session, got %q", body.Banner)
	}
}

func TestSessionRoutes_ViewTransitions(t *testing.T) {
	app, state := makeAppWithSession(t, 1)

	req := httptest.NewRequest("POST", "/api/v1/session/view", strings.NewReader(`{"view":"checkout"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for checkout transition, got %d", res.StatusCode)
	}
	if state.View() != ViewCheckout {
		t.Fatalf("expected checkout view, got %s", state.View())
	}

	// success is not reachable through the view endpoint
	req2 := httptest.NewRequest("POST", "/api/v1/session/view", strings.NewReader(`{"view":"success"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for direct success transition, got %d", res2.StatusCode)
	}
}

func TestSessionRoutes_CheckoutBlockedOnEmptyCart(t *testing.T) {
	app, state := makeAppWithSession(t, 0)

	req := httptest.NewRequest("POST", "/api/v1/session/view", strings.NewReader(`{"view":"checkout"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for empty-cart checkout, got %d", res.StatusCode)
	}
	if state.View() != ViewBrowsing {
		t.Fatalf("expected view unchanged, got %s", state.View())
	}
}

func TestSessionRoutes_BannerDismiss(t *testing.T) {
	app, state := makeAppWithSession(t, 0)
	state.SetBanner("CONNECTION ERROR: catalog unreachable")

	req := httptest.NewRequest("POST", "/api/v1/session/banner/dismiss", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for dismiss, got %d", res.StatusCode)
	}
	if _, ok := state.Banner(); ok {
		t.Fatalf("expected banner dismissed")
	}
}
