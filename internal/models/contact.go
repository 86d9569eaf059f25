package models

// EmergencyContact - человек, которого оповещают, когда пользователь в опасности.
// Priority 1 оповещается первым.
type EmergencyContact struct {
	ID           int64  `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
	Priority     int    `json:"priority"`
}
