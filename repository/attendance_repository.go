package repository

import (
	"context"
	"fmt"
	"strings"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
)

var attendanceColumns = []string{"employee_code", "date", "in_time", "out_time", "working_hours", "status"}

type AttendanceRepository interface {
	FindAll(ctx context.Context) ([]models.AttendanceRecord, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]models.AttendanceRecord, error)
	FindByEmployeeAndDate(ctx context.Context, employeeCode, date string) (*models.AttendanceRecord, error)
	SaveAll(ctx context.Context, records []models.AttendanceRecord) error
	// Stage encodes records for a multi-table commit without writing them.
	// Rows already stored pass through unvalidated.
	Stage(ctx context.Context, records []models.AttendanceRecord) (tablestore.Change, error)
}

type attendanceRepository struct {
	store tablestore.Store
}

func NewAttendanceRepository(store tablestore.Store) AttendanceRepository {
	return &attendanceRepository{store: store}
}

func decodeAttendance(r tablestore.Row) (models.AttendanceRecord, bool) {
	rec := models.AttendanceRecord{
		EmployeeCode: models.NormalizeEmployeeCode(r["employee_code"]),
		Date:         cell(r, "date"),
		InTime:       cell(r, "in_time"),
		OutTime:      cell(r, "out_time"),
		WorkingHours: parseFloat(cell(r, "working_hours")),
	}
	if rec.EmployeeCode == "" || rec.Date == "" {
		return rec, false
	}
	if s := models.AttendanceStatus(strings.ToUpper(cell(r, "status"))); s.Valid() {
		rec.Status = s
	}
	return rec, true
}

func encodeAttendance(rec models.AttendanceRecord) tablestore.Row {
	return tablestore.Row{
		"employee_code": rec.EmployeeCode,
		"date":          rec.Date,
		"in_time":       rec.InTime,
		"out_time":      rec.OutTime,
		"working_hours": formatFloat(rec.WorkingHours),
		"status":        string(rec.Status),
	}
}

func (r *attendanceRepository) FindAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	return loadRows(ctx, r.store, tablestore.AttendanceLogs, decodeAttendance)
}

func (r *attendanceRepository) FindByEmployee(ctx context.Context, employeeCode string) ([]models.AttendanceRecord, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	code := models.NormalizeEmployeeCode(employeeCode)
	var out []models.AttendanceRecord
	for _, rec := range all {
		if rec.EmployeeCode == code {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FindByEmployeeAndDate returns nil, nil when there is no record for that day.
func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeCode, date string) (*models.AttendanceRecord, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	code := models.NormalizeEmployeeCode(employeeCode)
	for i := range all {
		if all[i].EmployeeCode == code && all[i].Date == date {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *attendanceRepository) Stage(ctx context.Context, records []models.AttendanceRecord) (tablestore.Change, error) {
	return stageRows(ctx, r.store, tablestore.AttendanceLogs, attendanceColumns, records, decodeAttendance, encodeAttendance, validateAttendance)
}

func (r *attendanceRepository) SaveAll(ctx context.Context, records []models.AttendanceRecord) error {
	ch, err := r.Stage(ctx, records)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, ch.Name, ch.Table); err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}

func validateAttendance(rec models.AttendanceRecord) error {
	if rec.EmployeeCode == "" || tablestore.NormalizeDate(rec.Date) != rec.Date {
		return fmt.Errorf("%w: attendance needs an employee code and a YYYY-MM-DD date", ErrInvalidRecord)
	}
	if rec.InTime != "" && tablestore.NormalizeTime(rec.InTime) == "" {
		return fmt.Errorf("%w: in_time %q", ErrInvalidRecord, rec.InTime)
	}
	if rec.OutTime != "" && tablestore.NormalizeTime(rec.OutTime) == "" {
		return fmt.Errorf("%w: out_time %q", ErrInvalidRecord, rec.OutTime)
	}
	if rec.Status != "" && !rec.Status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidRecord, rec.Status)
	}
	return nil
}
