package checkout

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

// submit accepts a multipart form: the order fields plus a `proof` file
// part. A `proofData` text field (data-URI or bare base64) is accepted as an
// alternative to the file part.
func (h *Handler) submit(c *fiber.Ctx) error {
	form := OrderForm{
		CustomerName:  c.FormValue("customerName"),
		Phone:         c.FormValue("phone"),
		Email:         c.FormValue("email"),
		PaymentMethod: c.FormValue("paymentMethod", PayBaridiMob),
		PromoCode:     c.FormValue("promoCode"),
		Proof:         Proof{DataURI: c.FormValue("proofData")},
	}

	if file, err := c.FormFile("proof"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "could not read proof attachment"})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "could not read proof attachment"})
		}
		form.Proof = Proof{
			Data:     data,
			MIMEType: file.Header.Get("Content-Type"),
			FileName: file.Filename,
		}
	}

	receipt, err := h.service.Submit(c.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrEncoding):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Error processing image."})
		case errors.Is(err, ErrInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrServerRejected):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Server Error: " + err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Connection failed. Please try again."})
		}
	}
	return c.JSON(receipt)
}
