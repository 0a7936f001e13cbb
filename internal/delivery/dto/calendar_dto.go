package dto

// Response DTOs

// MonthGridResponse describes one month of the appointment calendar.
// FirstWeekday (0=Sunday..6=Saturday) tells the client how many empty cells
// pad the first row.
type MonthGridResponse struct {
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	MonthName     string   `json:"month_name"`
	Days          int      `json:"days"`
	FirstWeekday  int      `json:"first_weekday"`
	WeekdayLabels []string `json:"weekday_labels"`
}

type TimeSlotsResponse struct {
	Rows [][]string `json:"rows"`
}
