package models

type IPConfigUpdatePayload struct {
	Enabled     *bool    `json:"enabled"`
	AllowedIPs  []string `json:"allowed_ips" validate:"omitempty,dive,ip"`
	Description string   `json:"description"`
}

type OverridePayload struct {
	Code string `json:"code" validate:"required"`
}

type IPReportPayload struct {
	PrivateIP string `json:"private_ip"`
}

type GateDecision struct {
	Allowed  bool   `json:"allowed"`
	ClientIP string `json:"client_ip"`
	Reason   string `json:"reason"`
}

type IPConfigResponse struct {
	Enabled           bool     `json:"enabled" example:"true"`
	AllowedIPs        []string `json:"allowed_ips" example:"127.0.0.1,10.0.0.12"`
	Description       string   `json:"description,omitempty" example:"Office network"`
	RestrictionActive bool     `json:"restriction_active" example:"true"`
}

type OverrideResponse struct {
	Message string `json:"message" example:"Admin override granted"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
}
