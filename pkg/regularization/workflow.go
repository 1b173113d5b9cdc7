package regularization

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/attendance"
	"Employee-Attendance-Portal/pkg/tablestore"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

var (
	ErrReasonRequired     = errors.New("a reason is required")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrFutureDate         = errors.New("cannot regularize a future date")
	ErrInvalidRequestType = errors.New("request type must be 'Correct In-Time' or 'Correct Out-Time'")
	ErrInvalidTime        = errors.New("time must be HH:MM or HH:MM:SS")
	ErrRequestNotFound    = errors.New("regularization request not found")
	ErrNotPending         = errors.New("regularization request is no longer pending")
	ErrMalformedRequest   = errors.New("regularization request is malformed")
)

type SubmitInput struct {
	EmployeeCode string
	Date         string
	RequestType  models.RequestType
	Time         string
	Reason       string
}

// Decision is the outcome of an approval. Record is nil for rejections.
type Decision struct {
	Request models.RegularizationRequest `json:"request"`
	Record  *models.AttendanceRecord     `json:"record,omitempty"`
}

// Workflow owns regularization requests from submission through acknowledgment.
type Workflow struct {
	store      tablestore.Store
	attendance repository.AttendanceRepository
	requests   repository.RegularizationRepository
}

func NewWorkflow(store tablestore.Store, attendance repository.AttendanceRepository, requests repository.RegularizationRepository) *Workflow {
	return &Workflow{store: store, attendance: attendance, requests: requests}
}

func (w *Workflow) Submit(ctx context.Context, in SubmitInput, now time.Time) (*models.RegularizationRequest, error) {
	code := models.NormalizeEmployeeCode(in.EmployeeCode)
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	date := tablestore.NormalizeDate(in.Date)
	if date == "" || date != strings.TrimSpace(in.Date) {
		return nil, ErrInvalidDate
	}
	if date > now.Format(tablestore.DateLayout) {
		return nil, ErrFutureDate
	}
	if !in.RequestType.Valid() {
		return nil, ErrInvalidRequestType
	}
	clock, err := util.NormalizeClock(in.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	all, err := w.requests.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	maxID := 0
	for _, r := range all {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	req := models.RegularizationRequest{
		ID:               maxID + 1,
		EmployeeCode:     code,
		Date:             date,
		RequestType:      in.RequestType,
		Reason:           reason,
		Status:           models.RequestPending,
		RequestTimestamp: now.Format(models.TimestampLayout),
	}
	if in.RequestType == models.RequestCorrectIn {
		req.RequestedInTime = clock
	} else {
		req.RequestedOutTime = clock
	}

	if err := w.requests.SaveAll(ctx, append(all, req)); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPending returns every pending request ordered by id.
func (w *Workflow) ListPending(ctx context.Context) ([]models.RegularizationRequest, error) {
	all, err := w.requests.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.RegularizationRequest
	for _, r := range all {
		if r.Status == models.RequestPending {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (w *Workflow) ListForEmployee(ctx context.Context, employeeCode string) ([]models.RegularizationRequest, error) {
	return w.requests.FindByEmployee(ctx, employeeCode)
}

// Approve applies the correction to the day's attendance and marks the request
// Approved. Both tables are committed together. A malformed request is refused
// before anything is written.
func (w *Workflow) Approve(ctx context.Context, id int) (*Decision, error) {
	reqs, idx, err := w.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := w.attendance.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records, rec, err := applyCorrection(records, reqs[idx])
	if err != nil {
		return nil, err
	}
	reqs[idx].Status = models.RequestApproved

	attChange, err := w.attendance.Stage(ctx, records)
	if err != nil {
		return nil, err
	}
	reqChange, err := w.requests.Stage(ctx, reqs)
	if err != nil {
		return nil, err
	}
	if err := w.store.SaveAll(ctx, attChange, reqChange); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return &Decision{Request: reqs[idx], Record: &rec}, nil
}

// Reject marks the request Rejected and leaves attendance untouched.
func (w *Workflow) Reject(ctx context.Context, id int) (*Decision, error) {
	reqs, idx, err := w.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	reqs[idx].Status = models.RequestRejected
	if err := w.requests.SaveAll(ctx, reqs); err != nil {
		return nil, err
	}
	return &Decision{Request: reqs[idx]}, nil
}

// Acknowledge moves the employee's Approved requests to Completed and returns
// how many changed. Malformed rows are left as they are. It runs when the employee opens their attendance page.
func (w *Workflow) Acknowledge(ctx context.Context, employeeCode string) (int, error) {
	code := models.NormalizeEmployeeCode(employeeCode)
	reqs, err := w.requests.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range reqs {
		if reqs[i].EmployeeCode == code && reqs[i].Status == models.RequestApproved && repository.ValidateRegularization(reqs[i]) == nil {
			reqs[i].Status = models.RequestCompleted
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	if err := w.requests.SaveAll(ctx, reqs); err != nil {
		return 0, err
	}
	return n, nil
}

func (w *Workflow) pending(ctx context.Context, id int) ([]models.RegularizationRequest, int, error) {
	reqs, err := w.requests.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i := range reqs {
		if reqs[i].ID != id {
			continue
		}
		if reqs[i].Status != models.RequestPending {
			return nil, 0, fmt.Errorf("%w: request %d is %s", ErrNotPending, id, reqs[i].Status)
		}
		if err := repository.ValidateRegularization(reqs[i]); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		return reqs, i, nil
	}
	return nil, 0, fmt.Errorf("%w: %d", ErrRequestNotFound, id)
}

// applyCorrection sets the requested side of the day's record, creating the
// record when the employee never punched that day.
func applyCorrection(records []models.AttendanceRecord, req models.RegularizationRequest) ([]models.AttendanceRecord, models.AttendanceRecord, error) {
	idx := -1
	for i := range records {
		if records[i].EmployeeCode == req.EmployeeCode && records[i].Date == req.Date {
			idx = i
			break
		}
	}
	if idx < 0 {
		records = append(records, models.AttendanceRecord{EmployeeCode: req.EmployeeCode, Date: req.Date})
		idx = len(records) - 1
	}

	rec := &records[idx]
	if req.RequestType == models.RequestCorrectIn {
		rec.InTime = req.RequestedInTime
	} else {
		rec.OutTime = req.RequestedOutTime
	}

	if rec.HasIn() && rec.HasOut() {
		hours, err := attendance.WorkingHours(rec.InTime, rec.OutTime)
		if err != nil {
			return nil, models.AttendanceRecord{}, err
		}
		rec.WorkingHours = &hours
		rec.Status = models.StatusPresent
	} else {
		rec.WorkingHours = nil
		rec.Status = models.StatusMissing
	}
	return records, *rec, nil
}
