package models

import "time"

type AppointmentType string

const (
	AppointmentSchoolVisit AppointmentType = "school_visit"
	AppointmentSchoolCall  AppointmentType = "school_call"
	AppointmentCourseVisit AppointmentType = "course_visit"
)

// IsCall reporta se o tipo é uma ligação (sem presença física).
func (t AppointmentType) IsCall() bool {
	return t == AppointmentSchoolCall
}

func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentSchoolVisit, AppointmentSchoolCall, AppointmentCourseVisit:
		return true
	}
	return false
}

// Appointment é um registro imutável do ledger; correções são
// remoção + recriação, nunca update-in-place.
type Appointment struct {
	ID         string          `json:"id"`
	SchoolCode int             `json:"school_code"`
	CourseID   string          `json:"course_id,omitempty"`
	Type       AppointmentType `json:"type"`
	DateTime   time.Time       `json:"date_time"`
	Notes      string          `json:"notes,omitempty"`
}
