package models

import "time"

// CalendarInfo describes one registered holiday calendar.
//
// Fields:
//   - Name: the short name used to resolve the calendar (e.g. "USNYSE").
//   - Description: a one-line human description.
//
// swagger:model CalendarInfo
type CalendarInfo struct {
	Name        string `json:"name" example:"USNYSE"`
	Description string `json:"description" example:"New York Stock Exchange trading days"`
}

// Holiday is one stored holiday date belonging to a custom calendar.
type Holiday struct {
	CalendarName string    `json:"calendar_name" example:"B3LOCAL"`
	Day          time.Time `json:"day" example:"2024-05-15T00:00:00Z"`
}
