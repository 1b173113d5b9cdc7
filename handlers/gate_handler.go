package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/config/middleware"
	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/session"
	util "Employee-Attendance-Portal/pkg/utils"
)

type GateHandler struct {
	gate     *accessgate.Gate
	sessions *session.Manager
}

func NewGateHandler(gate *accessgate.Gate, sessions *session.Manager) *GateHandler {
	return &GateHandler{gate: gate, sessions: sessions}
}

// Status godoc
// @Summary Gate Status
// @Description Reports whether the caller's address would be admitted and why
// @Tags Gate
// @Produce json
// @Success 200 {object} models.GateDecision
// @Router /gate/status [get]
func (h *GateHandler) Status(c *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(c)
	return c.JSON(h.gate.Decide(middleware.ClientIP(c), ok && s.AdminOverride))
}

// Override godoc
// @Summary Admin Override
// @Description Attaches an admin override to the caller's session, creating an anonymous session when there is none
// @Tags Gate
// @Accept json
// @Produce json
// @Param override body models.OverridePayload true "Override code"
// @Success 200 {object} models.OverrideResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid override code"
// @Failure 500 {object} models.ErrorResponse
// @Router /gate/override [post]
func (h *GateHandler) Override(c *fiber.Ctx) error {
	var payload models.OverridePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ip := middleware.ClientIP(c)
	if !h.gate.CheckOverrideCode(payload.Code) {
		log.Printf("Rejected override code from %s", ip)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid override code"})
	}

	token := middleware.TokenFromRequest(c)
	s, ok := middleware.CurrentSession(c)
	if !ok {
		var err error
		s, token, err = h.sessions.Create()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create session"})
		}
	}
	if err := h.sessions.GrantOverride(s.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	middleware.SetSessionCookie(c, token, s)
	log.Printf("Admin override granted to session from %s", ip)

	return c.JSON(models.OverrideResponse{Message: "Admin override granted", Token: token})
}
