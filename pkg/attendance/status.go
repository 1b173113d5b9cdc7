package attendance

import (
	"fmt"
	"math"
	"time"

	"Employee-Attendance-Portal/models"
)

const clockLayout = "15:04:05"

// LateThreshold is the last on-time minute past the hour for a designation.
func LateThreshold(d models.Designation) int {
	switch d {
	case models.DesignationTrainer, models.DesignationHR:
		return 20
	default:
		return 15
	}
}

// IsLate reports whether a check-in at t counts as late. Only the minute of
// the hour is considered.
func IsLate(d models.Designation, t time.Time) bool {
	return t.Minute() > LateThreshold(d)
}

// WorkingHours is the elapsed time between two HH:MM:SS clocks, rounded to two
// decimals. An out time earlier than the in time is taken to be on the next day.
func WorkingHours(in, out string) (float64, error) {
	tin, err := time.Parse(clockLayout, in)
	if err != nil {
		return 0, fmt.Errorf("invalid in time %q: %w", in, err)
	}
	tout, err := time.Parse(clockLayout, out)
	if err != nil {
		return 0, fmt.Errorf("invalid out time %q: %w", out, err)
	}
	d := tout.Sub(tin)
	if d < 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*100) / 100, nil
}

// ProjectStatus gives the displayed status of a day. No record means absent.
// A record without a stored status is judged by which times it has.
func ProjectStatus(rec *models.AttendanceRecord) models.AttendanceStatus {
	if rec == nil {
		return models.StatusAbsent
	}
	if rec.Status.Valid() {
		return rec.Status
	}
	switch {
	case rec.HasIn() && rec.HasOut():
		return models.StatusPresent
	case rec.HasIn():
		return models.StatusMissing
	default:
		return models.StatusAbsent
	}
}

// AggregateStatus folds several employees' statuses for one day:
// P if anyone was present, else MIS if anyone has a missing punch, else A.
func AggregateStatus(statuses []models.AttendanceStatus) models.AttendanceStatus {
	hasMissing := false
	for _, s := range statuses {
		if s == models.StatusPresent {
			return models.StatusPresent
		}
		if s == models.StatusMissing {
			hasMissing = true
		}
	}
	if hasMissing {
		return models.StatusMissing
	}
	return models.StatusAbsent
}
