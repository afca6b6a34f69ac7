package domain

// InteractionRequest is the body of the click and view endpoints
type InteractionRequest struct {
	TargetID  string `json:"target_id" validate:"required,max=128" example:"wdg_123"`
	SessionID string `json:"session_id" validate:"max=128" example:"sess_8f2c"`
	Referrer  string `json:"referrer" validate:"max=2048" example:"https://instagram.com/"`
}

// ReportQuery holds the query parameters shared by the report endpoints
type ReportQuery struct {
	Range       string `query:"range" validate:"max=32" example:"weekly"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=500" example:"50"`
	TargetID    string `query:"target_id" validate:"max=128" example:"pg_1"`
	GroupBy     string `query:"group_by" validate:"omitempty,oneof=hour day all" example:"hour"`
	Granularity string `query:"granularity" validate:"omitempty,oneof=hour day week month" example:"day"`
	Include     string `query:"include" validate:"max=256" example:"locations,links,peak_hours"`
	Minutes     int    `query:"minutes" validate:"omitempty,min=1,max=1440" example:"30"`
}
