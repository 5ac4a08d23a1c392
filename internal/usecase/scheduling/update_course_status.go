package scheduling

import (
	"context"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
)

type UpdateCourseStatusInput struct {
	SchoolCode int
	CourseID   string
	Status     schedule.CourseVisitStatus
	Notes      string
}

type UpdateCourseStatus struct {
	state *session.State
	audit *audit.Dispatcher
}

func NewUpdateCourseStatus(
	state *session.State,
	audit *audit.Dispatcher,
) *UpdateCourseStatus {
	return &UpdateCourseStatus{
		state: state,
		audit: audit,
	}
}

// Execute sobrescreve o status do curso e, num rebaixamento, revoga os
// agendamentos do par (school, course). Identificadores desconhecidos
// não são erro: só criam uma entrada nova (conjunto de entrada fechado
// e confiável).
func (uc *UpdateCourseStatus) Execute(
	ctx context.Context,
	in UpdateCourseStatusInput,
) error {

	if !in.Status.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	uc.state.Lock()
	defer uc.state.Unlock()

	removed := schedule.UpdateCourseStatus(
		uc.state.Status(),
		uc.state.Ledger(),
		in.SchoolCode,
		in.CourseID,
		in.Status,
		in.Notes,
	)

	uc.state.Persist()

	uc.audit.Dispatch(audit.Event{
		Action:     "course_status_updated",
		SchoolCode: in.SchoolCode,
		Entity:     "course",
		EntityID:   in.CourseID,
		Metadata: map[string]any{
			"status":               string(in.Status),
			"appointments_removed": removed,
		},
	})

	return nil
}
