package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/ipreport"
	util "Employee-Attendance-Portal/pkg/utils"
)

// IPHandler manages the allow-list and the addresses reported by the sidecar.
type IPHandler struct {
	gate     *accessgate.Gate
	reported *ipreport.Store
}

func NewIPHandler(gate *accessgate.Gate, reported *ipreport.Store) *IPHandler {
	return &IPHandler{gate: gate, reported: reported}
}

func (h *IPHandler) configResponse(cfg *accessgate.Config) models.IPConfigResponse {
	ips := cfg.AllowedIPs
	if ips == nil {
		ips = []string{}
	}
	return models.IPConfigResponse{
		Enabled:           cfg.RestrictionEnabled(),
		AllowedIPs:        ips,
		Description:       cfg.Description,
		RestrictionActive: h.gate.Restricted(),
	}
}

// GetConfig godoc
// @Summary Get IP Allow-List
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.IPConfigResponse
// @Router /admin/ip-config [get]
func (h *IPHandler) GetConfig(c *fiber.Ctx) error {
	return c.JSON(h.configResponse(h.gate.Config()))
}

// UpdateConfig godoc
// @Summary Update IP Allow-List
// @Description Replaces the allowed addresses and toggles restriction. Invalid addresses reject the whole update and nothing is written.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param config body models.IPConfigUpdatePayload true "Allow-list"
// @Success 200 {object} models.IPConfigResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/ip-config [put]
func (h *IPHandler) UpdateConfig(c *fiber.Ctx) error {
	var payload models.IPConfigUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	cfg, err := h.gate.Update(func(cfg *accessgate.Config) error {
		if payload.AllowedIPs != nil {
			cfg.AllowedIPs = nil
			for _, ip := range payload.AllowedIPs {
				if _, err := cfg.AddIP(ip); err != nil {
					return err
				}
			}
		}
		if payload.Enabled != nil {
			cfg.SetEnabled(*payload.Enabled)
		}
		if d := strings.TrimSpace(payload.Description); d != "" {
			cfg.Description = d
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, accessgate.ErrInvalidIP) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error saving IP config: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save IP configuration"})
	}
	log.Printf("IP allow-list updated by %s: %v", sessionOf(c).EmployeeCode, cfg.AllowedIPs)
	return c.JSON(h.configResponse(cfg))
}

// ListReported godoc
// @Summary List Reported IPs
// @Description Private addresses received by the IP-report sidecar
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ReportedIPsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/reported-ips [get]
func (h *IPHandler) ListReported(c *fiber.Ctx) error {
	ips, err := h.reported.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.ReportedIPsResponse{ReportedIPs: ips})
}

// ClearReported godoc
// @Summary Clear Reported IPs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/reported-ips [delete]
func (h *IPHandler) ClearReported(c *fiber.Ctx) error {
	if err := h.reported.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.MessageResponse{Message: "Reported IPs cleared"})
}
