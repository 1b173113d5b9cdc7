package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/repository"
)

var (
	ErrAlreadyRecorded   = errors.New("attendance already recorded for today")
	ErrNotCheckedIn      = errors.New("no check-in recorded for today")
	ErrAlreadyCheckedOut = errors.New("check-out already recorded for today")
	ErrUnknownEmployee   = errors.New("unknown employee")
	ErrInvalidAction     = errors.New("action must be IN or OUT")
)

// IsRejection reports whether err is a state-machine rejection rather than a
// storage failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrAlreadyRecorded) ||
		errors.Is(err, ErrNotCheckedIn) ||
		errors.Is(err, ErrAlreadyCheckedOut) ||
		errors.Is(err, ErrUnknownEmployee) ||
		errors.Is(err, ErrInvalidAction)
}

type EmployeeFinder interface {
	FindByCode(ctx context.Context, code string) (*models.Employee, error)
}

// Recorder moves a day's attendance through NoRecord -> InOnly -> Complete.
type Recorder struct {
	employees  EmployeeFinder
	attendance repository.AttendanceRepository
}

func NewRecorder(employees EmployeeFinder, attendance repository.AttendanceRepository) *Recorder {
	return &Recorder{employees: employees, attendance: attendance}
}

// Record applies an IN or OUT punch at now and returns the stored record.
// Rejected punches write nothing.
func (r *Recorder) Record(ctx context.Context, employeeCode string, action models.Action, now time.Time) (*models.AttendanceRecord, error) {
	code := models.NormalizeEmployeeCode(employeeCode)
	if action != models.ActionIn && action != models.ActionOut {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	emp, err := r.employees.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEmployee, code)
	}

	records, err := r.attendance.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	clock := now.Format(clockLayout)
	idx := -1
	for i := range records {
		if records[i].EmployeeCode == code && records[i].Date == today {
			idx = i
			break
		}
	}

	var rec models.AttendanceRecord
	switch action {
	case models.ActionIn:
		if idx >= 0 {
			return nil, ErrAlreadyRecorded
		}
		status := models.StatusMissing
		if IsLate(emp.Designation, now) {
			status = models.StatusLate
		}
		rec = models.AttendanceRecord{
			EmployeeCode: code,
			Date:         today,
			InTime:       clock,
			Status:       status,
		}
		records = append(records, rec)

	case models.ActionOut:
		if idx < 0 || !records[idx].HasIn() {
			return nil, ErrNotCheckedIn
		}
		if records[idx].HasOut() {
			return nil, ErrAlreadyCheckedOut
		}
		hours, err := WorkingHours(records[idx].InTime, clock)
		if err != nil {
			return nil, err
		}
		records[idx].OutTime = clock
		records[idx].WorkingHours = &hours
		if records[idx].Status != models.StatusLate {
			records[idx].Status = models.StatusPresent
		}
		rec = records[idx]
	}

	if err := r.attendance.SaveAll(ctx, records); err != nil {
		return nil, err
	}
	return &rec, nil
}
