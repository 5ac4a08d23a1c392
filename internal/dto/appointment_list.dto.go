package dto

import "time"

type AppointmentListDTO struct {
	ID         string    `json:"id"`
	SchoolCode int       `json:"school_code"`
	SchoolName string    `json:"school_name"`
	CourseID   string    `json:"course_id,omitempty"`
	Type       string    `json:"type"`
	DateTime   time.Time `json:"date_time"`
	Notes      string    `json:"notes,omitempty"`
}
