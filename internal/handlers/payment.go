package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/storage"
)

// PaymentHandler handles the payments roster and refunds
type PaymentHandler struct {
	store storage.Store
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(store storage.Store) *PaymentHandler {
	return &PaymentHandler{store: store}
}

// GetPayments lists payments, newest first
func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	payments, err := h.store.GetAllPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve payments",
		})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

// RefundPayment marks a succeeded payment as refunded. Any other
// status is not refundable from the dashboard.
func (h *PaymentHandler) RefundPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	payment, err := h.store.GetPayment(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Payment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve payment",
		})
	}

	if !strings.EqualFold(payment.Status, models.PaymentStatusSucceeded) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only succeeded payments can be refunded",
		})
	}

	if err := h.store.UpdatePaymentStatus(id, models.PaymentStatusRefunded); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refund payment",
		})
	}

	payment.Status = models.PaymentStatusRefunded
	return c.JSON(fiber.Map{
		"message": "Payment refunded successfully",
		"payment": payment,
	})
}
