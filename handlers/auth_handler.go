package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/config/middleware"
	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/password"
	"Employee-Attendance-Portal/pkg/session"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

type AuthHandler struct {
	employees *repository.EmployeeRepository
	sessions  *session.Manager
}

func NewAuthHandler(employees *repository.EmployeeRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		employees: employees,
		sessions:  sessions,
	}
}

// Login godoc
// @Summary Login
// @Description Logs in with an employee code or full name and returns a session token. An admin override held by the current session is kept.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 403 {object} models.GateDeniedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.employees.FindByLogin(ctx, payload.Username)
	if err != nil {
		log.Printf("Error finding employee %q: %v", payload.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read employees"})
	}
	if emp == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	ok, needsUpgrade := password.CheckPassword(emp.Password, payload.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}
	if needsUpgrade {
		if hashed, err := password.HashPassword(payload.Password); err == nil {
			emp.Password = hashed
			if err := h.employees.Update(ctx, emp); err != nil {
				log.Printf("Warning: failed to upgrade password hash for %s: %v", emp.EmployeeCode, err)
			}
		}
	}

	previous := ""
	if s, ok := middleware.CurrentSession(c); ok {
		previous = s.ID
	}
	s, token, err := h.sessions.Login(previous, *emp)
	if err != nil {
		log.Printf("Error creating session for %s: %v", emp.EmployeeCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create session"})
	}
	middleware.SetSessionCookie(c, token, s)

	return c.JSON(models.LoginSuccessResponse{
		Message:      "Login successful",
		Token:        token,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Designation:  emp.Designation,
		ExpiresAt:    s.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout godoc
// @Summary Logout
// @Description Clears the identity from the session. An admin override stays attached.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s := sessionOf(c)
	if err := h.sessions.Logout(s.ID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.MessageResponse{Message: "Logged out"})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Changes the logged-in employee's password after verifying the current one
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body models.ChangePasswordPayload true "Current and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Current password is incorrect"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.employees.FindByCode(ctx, sessionOf(c).EmployeeCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read employees"})
	}
	if emp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	}

	if ok, _ := password.CheckPassword(emp.Password, payload.CurrentPassword); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}
	emp.Password = hashed
	if err := h.employees.Update(ctx, emp); err != nil {
		log.Printf("Error updating password for %s: %v", emp.EmployeeCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update password"})
	}

	return c.JSON(models.MessageResponse{Message: "Password changed successfully"})
}
