package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/product/:uuid", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	products := h.service.List(c.Query("q"), c.Query("filter", FilterAll))
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}
