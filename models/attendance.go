package models

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "P"
	StatusAbsent  AttendanceStatus = "A"
	StatusMissing AttendanceStatus = "MIS"
	StatusLate    AttendanceStatus = "LA"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusMissing, StatusLate:
		return true
	}
	return false
}

type Action string

const (
	ActionIn  Action = "IN"
	ActionOut Action = "OUT"
)

// AttendanceRecord is one employee's attendance for one day. Times are
// HH:MM:SS and empty when missing.
type AttendanceRecord struct {
	EmployeeCode string           `json:"employee_code" example:"emp001"`
	Date         string           `json:"date" example:"2024-03-05"`
	InTime       string           `json:"in_time,omitempty" example:"09:12:45"`
	OutTime      string           `json:"out_time,omitempty" example:"18:01:10"`
	WorkingHours *float64         `json:"working_hours,omitempty" example:"8.81"`
	Status       AttendanceStatus `json:"status,omitempty" example:"P"`
}

func (r AttendanceRecord) HasIn() bool  { return r.InTime != "" }
func (r AttendanceRecord) HasOut() bool { return r.OutTime != "" }

type AttendanceActionPayload struct {
	Action string `json:"action" validate:"required,oneof=IN OUT"`
}
