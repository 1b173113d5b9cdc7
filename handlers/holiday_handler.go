package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Employee-Attendance-Portal/models"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

type HolidayHandler struct {
	holidays *repository.HolidayRepository
	now      Clock
}

func NewHolidayHandler(holidays *repository.HolidayRepository, now Clock) *HolidayHandler {
	return &HolidayHandler{holidays: holidays, now: now}
}

// List godoc
// @Summary List Holidays
// @Description Lists every holiday occurrence of a year, recurring ones expanded
// @Tags Holidays
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Success 200 {object} models.HolidayListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /holidays [get]
func (h *HolidayHandler) List(c *fiber.Ctx) error {
	now := h.now()
	year := c.QueryInt("year", now.Year())

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	holidays, err := h.holidays.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	occ, err := util.ExpandHolidays(holidays, year, now.Location())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if occ == nil {
		occ = []models.HolidayOccurrence{}
	}
	return c.JSON(models.HolidayListResponse{Holidays: occ})
}

// Create godoc
// @Summary Add Holiday
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param holiday body models.HolidayCreatePayload true "Holiday"
// @Success 201 {object} models.Holiday
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/holidays [post]
func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var payload models.HolidayCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	holiday := models.Holiday{
		ID:    uuid.NewString(),
		Name:  payload.Name,
		Date:  payload.Date,
		RRule: payload.RRule,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.holidays.Create(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrInvalidRecord) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(holiday)
}

// Delete godoc
// @Summary Delete Holiday
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/holidays/{id} [delete]
func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.holidays.Delete(ctx, c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrHolidayNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "holiday not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.MessageResponse{Message: "Holiday deleted"})
}
