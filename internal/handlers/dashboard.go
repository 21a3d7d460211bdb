package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/storage"
)

// DashboardHandler serves the summary tiles on the dashboard home
type DashboardHandler struct {
	store storage.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store storage.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetOverview returns the table counts behind the dashboard tiles.
// A failing count degrades to zero for that tile rather than failing
// the whole overview; the error still lands in the logs.
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			log.Printf("⚠️  Overview count %s failed: %v", name, err)
			return 0
		}
		return n
	}

	return c.JSON(fiber.Map{
		"trips":    count("trips", h.store.CountTrips),
		"users":    count("users", h.store.CountProfiles),
		"payments": count("payments", h.store.CountPayments),
		"payers":   count("payers", h.store.CountPayers),
	})
}
