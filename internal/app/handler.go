package app

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"github.com/jvdzdigital/storefront/internal/checkout"
)

type Handler struct {
	state *State
}

func NewHandler(state *State) *Handler {
	return &Handler{state: state}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/session", h.getSession)
	app.Post("/api/v1/session/view", h.setView)
	app.Post("/api/v1/session/banner/dismiss", h.dismissBanner)
}

type sessionResponse struct {
	View      View              `json:"view"`
	Banner    string            `json:"banner,omitempty"`
	CartCount int               `json:"cartCount"`
	LastOrder *checkout.Receipt `json:"lastOrder,omitempty"`
}

type viewRequest struct {
	View View `json:"view"`
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	res := sessionResponse{
		View:      h.state.View(),
		CartCount: h.state.CartCount(),
	}
	if banner, ok := h.state.Banner(); ok {
		res.Banner = banner
	}
	if order, ok := h.state.LastOrder(); ok {
		res.LastOrder = &order
	}
	return c.JSON(res)
}

// setView drives browse <-> checkout. Success is reachable only through the
// submission pipeline.
func (h *Handler) setView(c *fiber.Ctx) error {
	payload := new(viewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	switch payload.View {
	case ViewBrowsing:
		h.state.GoBrowsing()
	case ViewCheckout:
		if err := h.state.GoCheckout(); err != nil {
			if errors.Is(err, ErrEmptyCart) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid view"})
	}
	return c.JSON(fiber.Map{"view": h.state.View()})
}

func (h *Handler) dismissBanner(c *fiber.Ctx) error {
	h.state.DismissBanner()
	return c.JSON(fiber.Map{"dismissed": true})
}
