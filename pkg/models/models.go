package models

// WeekendReport describes the weekend convention of a single locale
type WeekendReport struct {
	Locale string   `json:"locale"`
	FriSat bool     `json:"fri_sat"`
	Days   []string `json:"days"` // English day names, in weekend order
}
