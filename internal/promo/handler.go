package promo

import "github.com/gofiber/fiber/v2"

type Handler struct {
	evaluator *Evaluator
}

func NewHandler(e *Evaluator) *Handler {
	return &Handler{evaluator: e}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/promo", h.evaluate)
}

type evaluateRequest struct {
	Code string `json:"code"`
}

func (h *Handler) evaluate(c *fiber.Ctx) error {
	payload := new(evaluateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.evaluator.Evaluate(payload.Code))
}
