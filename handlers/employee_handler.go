package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/password"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

type EmployeeHandler struct {
	employees *repository.EmployeeRepository
}

func NewEmployeeHandler(employees *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List godoc
// @Summary List Employees
// @Description Lists every employee sorted by name
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.EmployeeListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employees.FindAllSorted(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return c.JSON(models.EmployeeListResponse{Employees: employees, Total: len(employees)})
}

// Create godoc
// @Summary Add Employee
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeCreatePayload true "New employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Employee code already exists"
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	designation, err := models.ParseDesignation(payload.Designation)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	emp := &models.Employee{
		EmployeeCode:  payload.EmployeeCode,
		Name:          payload.Name,
		Designation:   designation,
		DateOfBirth:   payload.DateOfBirth,
		DateOfJoining: payload.DateOfJoining,
		Password:      hashed,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.employees.Create(ctx, emp); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmployee):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Employee code already exists"})
		case errors.Is(err, repository.ErrInvalidRecord):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error creating employee %s: %v", payload.EmployeeCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create employee"})
	}

	return c.Status(fiber.StatusCreated).JSON(emp)
}

// Update godoc
// @Summary Edit Employee
// @Description Updates name, designation and dates. A non-empty password resets it.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Employee code"
// @Param employee body models.EmployeeUpdatePayload true "Fields to change"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/employees/{code} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.employees.FindByCode(ctx, c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if emp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	}

	if payload.Name != "" {
		emp.Name = payload.Name
	}
	if payload.Designation != "" {
		d, err := models.ParseDesignation(payload.Designation)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		emp.Designation = d
	}
	if payload.DateOfBirth != "" {
		emp.DateOfBirth = payload.DateOfBirth
	}
	if payload.DateOfJoining != "" {
		emp.DateOfJoining = payload.DateOfJoining
	}
	if payload.Password != "" {
		hashed, err := password.HashPassword(payload.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
		}
		emp.Password = hashed
	}

	if err := h.employees.Update(ctx, emp); err != nil {
		log.Printf("Error updating employee %s: %v", emp.EmployeeCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update employee"})
	}
	return c.JSON(emp)
}
