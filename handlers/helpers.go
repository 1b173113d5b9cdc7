package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/config/middleware"
	"Employee-Attendance-Portal/pkg/session"
)

// Clock returns the current time in the portal's timezone.
type Clock func() time.Time

func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

func sessionOf(c *fiber.Ctx) session.Session {
	s, _ := middleware.CurrentSession(c)
	return s
}

// monthQuery reads ?year=&month=, defaulting to the month of now.
func monthQuery(c *fiber.Ctx, now time.Time) (int, time.Month, bool) {
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if year < 1900 || year > 9999 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
