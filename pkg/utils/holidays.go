package util

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"Employee-Attendance-Portal/models"
)

// ExpandHolidays lists every holiday occurrence inside year, sorted by date.
// One-off holidays appear only in their own year; recurring ones are expanded
// from their start date with the stored RRULE.
func ExpandHolidays(holidays []models.Holiday, year int, loc *time.Location) ([]models.HolidayOccurrence, error) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, loc)

	var out []models.HolidayOccurrence
	for _, h := range holidays {
		first, err := time.ParseInLocation("2006-01-02", h.Date, loc)
		if err != nil {
			continue
		}
		if strings.TrimSpace(h.RRule) == "" {
			if first.Year() == year {
				out = append(out, models.HolidayOccurrence{Date: h.Date, Name: h.Name})
			}
			continue
		}

		opt, err := rrule.StrToROption(strings.TrimSpace(h.RRule))
		if err != nil {
			return nil, fmt.Errorf("holiday %q has an invalid recurrence: %w", h.Name, err)
		}
		opt.Dtstart = first
		r, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("holiday %q has an invalid recurrence: %w", h.Name, err)
		}
		for _, d := range r.Between(start, end, true) {
			out = append(out, models.HolidayOccurrence{Date: d.Format("2006-01-02"), Name: h.Name})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// HolidayMap indexes occurrences by date for calendar rendering.
func HolidayMap(occ []models.HolidayOccurrence) map[string]string {
	m := make(map[string]string, len(occ))
	for _, o := range occ {
		if existing, ok := m[o.Date]; ok {
			m[o.Date] = existing + ", " + o.Name
			continue
		}
		m[o.Date] = o.Name
	}
	return m
}
