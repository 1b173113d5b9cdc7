package ipreport

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/metrics"
)

// NewServer builds the sidecar that receives private IP reports. Every path
// other than POST /api/ip-report answers 404.
func NewServer(store *Store, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/api/ip-report", func(c *fiber.Ctx) error {
		var payload models.IPReportPayload
		// Reporters may omit Content-Type, so the body is always read as JSON.
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			m.IPReport("error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		ip := strings.TrimSpace(payload.PrivateIP)
		if ip == "" {
			m.IPReport("missing")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No private_ip provided"})
		}
		added, err := store.Add(ip)
		if err != nil {
			m.IPReport("error")
			log.Printf("ipreport: failed to store %s: %v", ip, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		if added {
			log.Printf("ipreport: received new address %s", ip)
		}
		m.IPReport("ok")
		return c.JSON(fiber.Map{"status": "success", "received_ip": ip})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Not found"})
	})
	return app
}
