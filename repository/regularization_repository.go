package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
)

var regularizationColumns = []string{
	"id", "employee_code", "date", "request_type",
	"requested_in_time", "requested_out_time", "reason", "status", "request_timestamp",
}

type RegularizationRepository interface {
	FindAll(ctx context.Context) ([]models.RegularizationRequest, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]models.RegularizationRequest, error)
	SaveAll(ctx context.Context, requests []models.RegularizationRequest) error
	Stage(ctx context.Context, requests []models.RegularizationRequest) (tablestore.Change, error)
}

type regularizationRepository struct {
	store tablestore.Store
}

func NewRegularizationRepository(store tablestore.Store) RegularizationRepository {
	return &regularizationRepository{store: store}
}

func decodeRegularization(r tablestore.Row) (models.RegularizationRequest, bool) {
	id, err := strconv.Atoi(cell(r, "id"))
	if err != nil || id <= 0 {
		return models.RegularizationRequest{}, false
	}
	req := models.RegularizationRequest{
		ID:               id,
		EmployeeCode:     models.NormalizeEmployeeCode(r["employee_code"]),
		Date:             cell(r, "date"),
		RequestType:      models.RequestType(cell(r, "request_type")),
		RequestedInTime:  cell(r, "requested_in_time"),
		RequestedOutTime: cell(r, "requested_out_time"),
		Reason:           cell(r, "reason"),
		Status:           models.RequestStatus(cell(r, "status")),
		RequestTimestamp: cell(r, "request_timestamp"),
	}
	if !req.Status.Valid() {
		req.Status = models.RequestPending
	}
	return req, true
}

func encodeRegularization(req models.RegularizationRequest) tablestore.Row {
	return tablestore.Row{
		"id":                 strconv.Itoa(req.ID),
		"employee_code":      req.EmployeeCode,
		"date":               req.Date,
		"request_type":       string(req.RequestType),
		"requested_in_time":  req.RequestedInTime,
		"requested_out_time": req.RequestedOutTime,
		"reason":             req.Reason,
		"status":             string(req.Status),
		"request_timestamp":  req.RequestTimestamp,
	}
}

// ValidateRegularization checks a request row. Exactly one requested time is
// set and it matches the request type.
func ValidateRegularization(req models.RegularizationRequest) error {
	in, out := req.RequestedInTime != "", req.RequestedOutTime != ""
	switch {
	case req.ID <= 0:
		return fmt.Errorf("%w: request id must be positive", ErrInvalidRecord)
	case req.EmployeeCode == "":
		return fmt.Errorf("%w: request %d has no employee code", ErrInvalidRecord, req.ID)
	case !req.RequestType.Valid():
		return fmt.Errorf("%w: request %d has type %q", ErrInvalidRecord, req.ID, req.RequestType)
	case !req.Status.Valid():
		return fmt.Errorf("%w: request %d has status %q", ErrInvalidRecord, req.ID, req.Status)
	case strings.TrimSpace(req.Reason) == "":
		return fmt.Errorf("%w: request %d has no reason", ErrInvalidRecord, req.ID)
	case req.RequestType == models.RequestCorrectIn && (!in || out),
		req.RequestType == models.RequestCorrectOut && (!out || in):
		return fmt.Errorf("%w: request %d does not carry exactly one %s time", ErrInvalidRecord, req.ID, req.RequestType)
	}
	return nil
}

func (r *regularizationRepository) FindAll(ctx context.Context) ([]models.RegularizationRequest, error) {
	return loadRows(ctx, r.store, tablestore.RegularizationRequests, decodeRegularization)
}

// FindByEmployee returns the employee's requests, newest date first, then by status.
func (r *regularizationRepository) FindByEmployee(ctx context.Context, employeeCode string) ([]models.RegularizationRequest, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	code := models.NormalizeEmployeeCode(employeeCode)
	var out []models.RegularizationRequest
	for _, req := range all {
		if req.EmployeeCode == code {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Status < out[j].Status
	})
	return out, nil
}

func (r *regularizationRepository) Stage(ctx context.Context, requests []models.RegularizationRequest) (tablestore.Change, error) {
	return stageRows(ctx, r.store, tablestore.RegularizationRequests, regularizationColumns, requests,
		decodeRegularization, encodeRegularization, ValidateRegularization)
}

func (r *regularizationRepository) SaveAll(ctx context.Context, requests []models.RegularizationRequest) error {
	ch, err := r.Stage(ctx, requests)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, ch.Name, ch.Table); err != nil {
		return fmt.Errorf("failed to save regularization requests: %w", err)
	}
	return nil
}
