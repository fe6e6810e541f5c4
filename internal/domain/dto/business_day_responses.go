package dto

// AdvanceResponse is returned by GET /api/v1/business-days/advance.
//
// Dates are rendered as YYYY-MM-DD; the result is always a plain calendar
// date even when the anchor carried a time of day.
type AdvanceResponse struct {
	Calendar     string `json:"calendar" example:"USNYSE"`
	Anchor       string `json:"anchor" example:"2023-01-03"`
	BusinessDays int64  `json:"business_days" example:"5"`
	Result       string `json:"result" example:"2023-01-10"`
}

// CountResponse is returned by GET /api/v1/business-days/count.
type CountResponse struct {
	Calendar     string `json:"calendar" example:"USNYSE"`
	From         string `json:"from" example:"2023-01-03"`
	To           string `json:"to" example:"2023-01-10"`
	BusinessDays int    `json:"business_days" example:"6"`
}
