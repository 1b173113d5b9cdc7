package models

type RequestType string

const (
	RequestCorrectIn  RequestType = "Correct In-Time"
	RequestCorrectOut RequestType = "Correct Out-Time"
)

func (t RequestType) Valid() bool {
	return t == RequestCorrectIn || t == RequestCorrectOut
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestApproved  RequestStatus = "Approved"
	RequestRejected  RequestStatus = "Rejected"
	RequestCompleted RequestStatus = "Completed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

const TimestampLayout = "2006-01-02 15:04:05"

// RegularizationRequest asks an admin to correct one side of a day's attendance.
// Exactly one of RequestedInTime and RequestedOutTime is set, matching RequestType.
type RegularizationRequest struct {
	ID               int           `json:"id" example:"4"`
	EmployeeCode     string        `json:"employee_code" example:"emp001"`
	Date             string        `json:"date" example:"2024-03-05"`
	RequestType      RequestType   `json:"request_type" example:"Correct In-Time"`
	RequestedInTime  string        `json:"requested_in_time,omitempty" example:"09:00:00"`
	RequestedOutTime string        `json:"requested_out_time,omitempty"`
	Reason           string        `json:"reason" example:"Badge reader was down"`
	Status           RequestStatus `json:"status" example:"Pending"`
	RequestTimestamp string        `json:"request_timestamp" example:"2024-03-05 10:02:11"`
}

// RequestedTime returns the corrected clock value regardless of side.
func (r RegularizationRequest) RequestedTime() string {
	if r.RequestType == RequestCorrectIn {
		return r.RequestedInTime
	}
	return r.RequestedOutTime
}

type RegularizationCreatePayload struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	RequestType string `json:"request_type" validate:"required,oneof='Correct In-Time' 'Correct Out-Time'"`
	Time        string `json:"time" validate:"required,clock"`
	Reason      string `json:"reason" validate:"required"`
}
