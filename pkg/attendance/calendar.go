package attendance

import (
	"fmt"
	"time"

	"Employee-Attendance-Portal/models"
)

// BuildCalendar lays out one month in Monday-first weeks. Each day carries the
// single matching record's details, or the head count and aggregate status
// when several employees have records that day.
func BuildCalendar(year int, month time.Month, records []models.AttendanceRecord, holidays map[string]string) models.CalendarMonth {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	byDate := make(map[string][]models.AttendanceRecord)
	for _, rec := range records {
		if len(rec.Date) == len(prefix)+2 && rec.Date[:len(prefix)] == prefix {
			byDate[rec.Date] = append(byDate[rec.Date], rec)
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	// Monday = 0
	lead := (int(first.Weekday()) + 6) % 7

	cal := models.CalendarMonth{Year: year, Month: int(month)}
	week := make([]models.CalendarDay, 0, 7)
	for i := 0; i < lead; i++ {
		week = append(week, models.CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%s%02d", prefix, day)
		week = append(week, buildDay(day, date, byDate[date], holidays[date]))
		if len(week) == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = make([]models.CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, models.CalendarDay{})
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}

func buildDay(day int, date string, recs []models.AttendanceRecord, holiday string) models.CalendarDay {
	cell := models.CalendarDay{Day: day, Date: date, Holiday: holiday, Employees: len(recs)}
	switch len(recs) {
	case 0:
		cell.Status = models.StatusAbsent
	case 1:
		rec := recs[0]
		cell.InTime = rec.InTime
		cell.OutTime = rec.OutTime
		cell.Hours = rec.WorkingHours
		cell.Status = ProjectStatus(&rec)
	default:
		statuses := make([]models.AttendanceStatus, 0, len(recs))
		for i := range recs {
			statuses = append(statuses, ProjectStatus(&recs[i]))
		}
		cell.Status = AggregateStatus(statuses)
	}
	return cell
}
