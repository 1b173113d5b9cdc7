package models

// CalendarDay is one cell of a month grid. Day is 0 for padding cells.
type CalendarDay struct {
	Day       int              `json:"day"`
	Date      string           `json:"date,omitempty"`
	InTime    string           `json:"in_time,omitempty"`
	OutTime   string           `json:"out_time,omitempty"`
	Hours     *float64         `json:"working_hours,omitempty"`
	Status    AttendanceStatus `json:"status,omitempty"`
	Employees int              `json:"employees,omitempty"`
	Holiday   string           `json:"holiday,omitempty"`
}

// CalendarMonth lays a month out in Monday-first weeks.
type CalendarMonth struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}
