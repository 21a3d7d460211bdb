package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/storage"
)

// UserHandler handles the rider accounts roster
type UserHandler struct {
	store storage.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store storage.Store) *UserHandler {
	return &UserHandler{store: store}
}

// GetUsers lists rider profiles, newest first
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	profiles, err := h.store.GetAllProfiles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve users",
		})
	}

	return c.JSON(fiber.Map{
		"users": profiles,
		"count": len(profiles),
	})
}

// ToggleBlock flips a rider's blocked flag
func (h *UserHandler) ToggleBlock(c *fiber.Ctx) error {
	id := c.Params("id")

	profile, err := h.store.GetProfile(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve user",
		})
	}

	blocked := !profile.Blocked
	if err := h.store.SetProfileBlocked(id, blocked); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user": fiber.Map{
			"id":      id,
			"blocked": blocked,
		},
	})
}
