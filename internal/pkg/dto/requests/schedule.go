package requests

// ScheduleQuery carries the optional query parameters accepted by the schedule endpoints.
// Empty fields mean "use the server clock".
type ScheduleQuery struct {
	Day string `json:"day" validate:"omitempty,weekday"`
	At  string `json:"at" validate:"omitempty,hhmm"`
}
