package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/attendance"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/regularization"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

type AttendanceHandler struct {
	recorder *attendance.Recorder
	records  repository.AttendanceRepository
	holidays *repository.HolidayRepository
	workflow *regularization.Workflow
	metrics  *metrics.Metrics
	now      Clock
}

func NewAttendanceHandler(
	recorder *attendance.Recorder,
	records repository.AttendanceRepository,
	holidays *repository.HolidayRepository,
	workflow *regularization.Workflow,
	m *metrics.Metrics,
	now Clock,
) *AttendanceHandler {
	return &AttendanceHandler{
		recorder: recorder,
		records:  records,
		holidays: holidays,
		workflow: workflow,
		metrics:  m,
		now:      now,
	}
}

// Record godoc
// @Summary Record Attendance
// @Description Records a check-in (IN) or check-out (OUT) for today at the server's current time
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param action body models.AttendanceActionPayload true "IN or OUT"
// @Success 200 {object} models.AttendanceActionResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse "Unknown employee"
// @Failure 409 {object} models.ErrorResponse "Already checked in, not checked in, or already checked out"
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/record [post]
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var payload models.AttendanceActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	action := models.Action(payload.Action)
	rec, err := h.recorder.Record(ctx, sessionOf(c).EmployeeCode, action, h.now())
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrUnknownEmployee):
			h.metrics.AttendanceAction(payload.Action, "rejected")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, attendance.ErrInvalidAction):
			h.metrics.AttendanceAction(payload.Action, "rejected")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case attendance.IsRejection(err):
			h.metrics.AttendanceAction(payload.Action, "rejected")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		h.metrics.AttendanceAction(payload.Action, "error")
		log.Printf("Error recording %s for %s: %v", action, sessionOf(c).EmployeeCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record attendance"})
	}
	h.metrics.AttendanceAction(payload.Action, "ok")

	msg := fmt.Sprintf("Checked in at %s", rec.InTime)
	if action == models.ActionOut {
		msg = fmt.Sprintf("Checked out at %s", rec.OutTime)
	}
	return c.JSON(models.AttendanceActionResponse{Message: msg, Record: *rec})
}

// MyCalendar godoc
// @Summary My Attendance Calendar
// @Description Returns the month grid of the logged-in employee's attendance. Approved regularization requests are acknowledged (marked Completed) on view.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} models.CalendarResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/calendar [get]
func (h *AttendanceHandler) MyCalendar(c *fiber.Ctx) error {
	year, month, ok := monthQuery(c, h.now())
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}
	code := sessionOf(c).EmployeeCode

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	acknowledged, err := h.workflow.Acknowledge(ctx, code)
	if err != nil {
		log.Printf("Error acknowledging requests for %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update regularization requests"})
	}

	records, err := h.records.FindByEmployee(ctx, code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load attendance: %v", err)})
	}
	cal, err := h.calendar(ctx, year, month, records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.CalendarResponse{Calendar: cal, Acknowledged: acknowledged})
}

// AdminCalendar godoc
// @Summary Attendance Calendar (Admin)
// @Description Returns the month grid for one employee, or the head count and aggregate status of every employee when no code is given
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Param employee_code query string false "Employee code"
// @Success 200 {object} models.CalendarResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/attendance/calendar [get]
func (h *AttendanceHandler) AdminCalendar(c *fiber.Ctx) error {
	year, month, ok := monthQuery(c, h.now())
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var (
		records []models.AttendanceRecord
		err     error
	)
	if code := c.Query("employee_code"); code != "" {
		records, err = h.records.FindByEmployee(ctx, code)
	} else {
		records, err = h.records.FindAll(ctx)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to load attendance: %v", err)})
	}
	cal, err := h.calendar(ctx, year, month, records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.CalendarResponse{Calendar: cal})
}

func (h *AttendanceHandler) calendar(ctx context.Context, year int, month time.Month, records []models.AttendanceRecord) (models.CalendarMonth, error) {
	holidays, err := h.holidays.FindAll(ctx)
	if err != nil {
		return models.CalendarMonth{}, fmt.Errorf("failed to load holidays: %w", err)
	}
	occ, err := util.ExpandHolidays(holidays, year, h.now().Location())
	if err != nil {
		log.Printf("Warning: skipping holidays for %d: %v", year, err)
	}
	return attendance.BuildCalendar(year, month, records, util.HolidayMap(occ)), nil
}
