package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/models"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleAppointmentInput struct {
	SchoolCode int
	CourseID   string
	Type       models.AppointmentType

	Date  string // 2006-01-02
	Time  string // 15:04
	Notes string

	// Force pula a checagem de conflito; só o cliente decide isso,
	// depois de ver o agendamento que colide.
	Force bool
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	state *session.State
	audit *audit.Dispatcher
}

func NewScheduleAppointment(
	state *session.State,
	audit *audit.Dispatcher,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		state: state,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*models.Appointment, error) {

	if !in.Type.Valid() {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	// courseId presente se e somente se o tipo é visita de curso
	if in.Type == models.AppointmentCourseVisit && in.CourseID == "" {
		return nil, httperr.ErrBusiness("course_required")
	}
	if in.Type != models.AppointmentCourseVisit && in.CourseID != "" {
		return nil, httperr.ErrBusiness("unexpected_course")
	}

	when, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.state.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	uc.state.Lock()
	defer uc.state.Unlock()

	school, ok := uc.state.SchoolByCodeLocked(in.SchoolCode)
	if !ok {
		return nil, httperr.ErrBusiness("school_not_found")
	}

	if in.Type == models.AppointmentCourseVisit {
		found := false
		for _, course := range school.Courses {
			if course.ID == in.CourseID {
				found = true
				break
			}
		}
		if !found {
			return nil, httperr.ErrBusiness("course_not_found")
		}
	}

	if !in.Force {
		if conflict := schedule.CheckConflict(uc.state.Ledger(), when); conflict != nil {
			return nil, &schedule.ConflictError{Existing: *conflict}
		}
	}

	ap := uc.state.Ledger().Add(models.Appointment{
		SchoolCode: in.SchoolCode,
		CourseID:   in.CourseID,
		Type:       in.Type,
		DateTime:   when,
		Notes:      in.Notes,
	})

	// projeção é um passo explícito depois da mutação do ledger
	schedule.ApplyAppointment(uc.state.Status(), ap)

	uc.state.Persist()

	action := "appointment_created"
	if in.Force {
		action = "appointment_conflict_overridden"
	}
	uc.audit.Dispatch(audit.Event{
		Action:     action,
		SchoolCode: in.SchoolCode,
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata: map[string]any{
			"type":      string(in.Type),
			"date_time": ap.DateTime,
		},
	})

	return &ap, nil
}
