package models

// Success Response Models

type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}

type LoginSuccessResponse struct {
	Message      string      `json:"message" example:"Login successful"`
	Token        string      `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	EmployeeCode string      `json:"employee_code" example:"emp001"`
	Name         string      `json:"name" example:"Asha Verma"`
	Designation  Designation `json:"designation" example:"EMPLOYEE"`
	ExpiresAt    string      `json:"expires_at" example:"2024-03-06T09:00:00Z"`
}

type ProfileResponse struct {
	Employee Employee `json:"employee"`
	PhotoURL string   `json:"photo_url,omitempty" example:"/api/v1/users/emp001/photo"`
}

type AttendanceActionResponse struct {
	Message string           `json:"message" example:"Checked in at 09:12:45"`
	Record  AttendanceRecord `json:"record"`
}

type CalendarResponse struct {
	Calendar     CalendarMonth `json:"calendar"`
	Acknowledged int           `json:"acknowledged" example:"1"`
}

type RegularizationResponse struct {
	Message string                `json:"message" example:"Request submitted"`
	Request RegularizationRequest `json:"request"`
}

type RegularizationListResponse struct {
	Requests []RegularizationRequest `json:"requests"`
	Total    int                     `json:"total" example:"3"`
}

type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
	Total     int        `json:"total" example:"10"`
}

type PostListResponse struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total" example:"4"`
}

type HolidayListResponse struct {
	Holidays []HolidayOccurrence `json:"holidays"`
}

type ReportedIPsResponse struct {
	ReportedIPs []string `json:"reported_ips"`
}

// Error Response Models

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type FieldError struct {
	Field   string `json:"field" example:"reason"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"Field 'reason' is required."`
}

type GateDeniedResponse struct {
	Error    string `json:"error" example:"Access denied from this network"`
	ClientIP string `json:"client_ip" example:"203.0.113.9"`
	Override string `json:"override" example:"/api/v1/gate/override"`
}
