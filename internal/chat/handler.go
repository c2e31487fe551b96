package chat

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/chat", h.sendMessage)
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// sendMessage always answers 200 with a reply; service failures degrade to
// fallback strings.
func (h *Handler) sendMessage(c *fiber.Ctx) error {
	payload := new(messageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "message is required"})
	}
	return c.JSON(messageResponse{Reply: h.service.Reply(c.Context(), payload.Message)})
}
