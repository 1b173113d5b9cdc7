package models

// Holiday is a named day off. RRule, when set, repeats it from Date onward.
type Holiday struct {
	ID    string `json:"id" example:"0b8f5b8e-4c1e-4e0d-9a87-8f2a0a7f5c3e"`
	Name  string `json:"name" example:"Republic Day"`
	Date  string `json:"date" example:"2024-01-26"`
	RRule string `json:"rrule,omitempty" example:"FREQ=YEARLY"`
}

type HolidayOccurrence struct {
	Date string `json:"date" example:"2025-01-26"`
	Name string `json:"name" example:"Republic Day"`
}

type HolidayCreatePayload struct {
	Name  string `json:"name" validate:"required,max=100"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	RRule string `json:"rrule" validate:"omitempty,rrule"`
}
