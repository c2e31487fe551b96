package cart

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// Handler keeps cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Patch("/api/v1/cart/:uuid", h.adjustQuantity)
	app.Delete("/api/v1/cart/:uuid", h.removeFromCart)
}

type cartResponse struct {
	Lines []Line `json:"lines"`
	Total int    `json:"total"`
}

type addRequest struct {
	UUID string `json:"uuid"`
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(cartResponse{Lines: h.service.Lines(), Total: h.service.Total()})
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "uuid is required"})
	}

	lines, err := h.service.Add(payload.UUID)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cartResponse{Lines: lines, Total: h.service.Total()})
}

func (h *Handler) adjustQuantity(c *fiber.Ctx) error {
	payload := new(adjustRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	lines := h.service.AdjustQuantity(c.Params("uuid"), payload.Delta)
	return c.JSON(cartResponse{Lines: lines, Total: h.service.Total()})
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	lines := h.service.Remove(c.Params("uuid"))
	return c.JSON(cartResponse{Lines: lines, Total: h.service.Total()})
}
