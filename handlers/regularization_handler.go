package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/regularization"
	util "Employee-Attendance-Portal/pkg/utils"
)

type RegularizationHandler struct {
	workflow *regularization.Workflow
	metrics  *metrics.Metrics
	now      Clock
}

func NewRegularizationHandler(workflow *regularization.Workflow, m *metrics.Metrics, now Clock) *RegularizationHandler {
	return &RegularizationHandler{workflow: workflow, metrics: m, now: now}
}

func isSubmitRejection(err error) bool {
	return errors.Is(err, regularization.ErrReasonRequired) ||
		errors.Is(err, regularization.ErrInvalidDate) ||
		errors.Is(err, regularization.ErrFutureDate) ||
		errors.Is(err, regularization.ErrInvalidRequestType) ||
		errors.Is(err, regularization.ErrInvalidTime)
}

// Submit godoc
// @Summary Submit Regularization Request
// @Description Asks an admin to correct the in-time or out-time of a past or current day
// @Tags Regularization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RegularizationCreatePayload true "Correction request"
// @Success 201 {object} models.RegularizationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /regularizations [post]
func (h *RegularizationHandler) Submit(c *fiber.Ctx) error {
	var payload models.RegularizationCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	req, err := h.workflow.Submit(ctx, regularization.SubmitInput{
		EmployeeCode: sessionOf(c).EmployeeCode,
		Date:         payload.Date,
		RequestType:  models.RequestType(payload.RequestType),
		Time:         payload.Time,
		Reason:       payload.Reason,
	}, h.now())
	if err != nil {
		if isSubmitRejection(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error submitting regularization: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit request"})
	}
	h.metrics.Regularization("submitted")

	return c.Status(fiber.StatusCreated).JSON(models.RegularizationResponse{Message: "Request submitted", Request: *req})
}

// Mine godoc
// @Summary My Regularization Requests
// @Description Lists the logged-in employee's requests, newest date first
// @Tags Regularization
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RegularizationListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /regularizations/mine [get]
func (h *RegularizationHandler) Mine(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	reqs, err := h.workflow.ListForEmployee(ctx, sessionOf(c).EmployeeCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if reqs == nil {
		reqs = []models.RegularizationRequest{}
	}
	return c.JSON(models.RegularizationListResponse{Requests: reqs, Total: len(reqs)})
}

// Pending godoc
// @Summary Pending Regularization Requests
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RegularizationListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/regularizations/pending [get]
func (h *RegularizationHandler) Pending(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	reqs, err := h.workflow.ListPending(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if reqs == nil {
		reqs = []models.RegularizationRequest{}
	}
	return c.JSON(models.RegularizationListResponse{Requests: reqs, Total: len(reqs)})
}

// Approve godoc
// @Summary Approve Regularization Request
// @Description Applies the correction to the day's attendance and marks the request Approved, as one commit
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} regularization.Decision
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Request is no longer pending or is malformed"
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/regularizations/{id}/approve [put]
func (h *RegularizationHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, "approved", h.workflow.Approve)
}

// Reject godoc
// @Summary Reject Regularization Request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} regularization.Decision
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Request is no longer pending or is malformed"
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/regularizations/{id}/reject [put]
func (h *RegularizationHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, "rejected", h.workflow.Reject)
}

func (h *RegularizationHandler) decide(c *fiber.Ctx, event string, fn func(context.Context, int) (*regularization.Decision, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	decision, err := fn(ctx, id)
	switch {
	case errors.Is(err, regularization.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, regularization.ErrNotPending), errors.Is(err, regularization.ErrMalformedRequest):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		log.Printf("Error processing regularization %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	h.metrics.Regularization(event)
	log.Printf("Regularization %d %s by %s", id, event, sessionOf(c).EmployeeCode)
	return c.JSON(decision)
}
