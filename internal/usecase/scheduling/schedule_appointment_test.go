package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/extraction"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/models"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
)

type stubSource struct {
	rows []extraction.RawSchoolRecord
	err  error
}

func (s *stubSource) Fetch(ctx context.Context) ([]extraction.RawSchoolRecord, error) {
	return s.rows, s.err
}

func newTestState(t *testing.T) *session.State {
	t.Helper()

	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	source := &stubSource{rows: []extraction.RawSchoolRecord{
		{Code: 100, SchoolName: "Colegio San Martín", CourseLevel: "7", CourseLetter: "A"},
		{Code: 100, SchoolName: "Colegio San Martín", CourseLevel: "8", CourseLetter: "B"},
		{Code: 10645, SchoolName: "Colegio Cerrado", CourseLevel: "1", CourseLetter: "A"},
	}}

	state := session.NewState(zap.NewNop(), nil, loc)
	state.Bootstrap(context.Background(), source)

	if !state.Ready() {
		t.Fatal("session must be ready after bootstrap")
	}
	return state
}

func businessCode(t *testing.T, err error) string {
	t.Helper()
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		t.Fatalf("expected a business error, got %v", err)
	}
	return be.Code
}

func TestScheduleCourseVisit(t *testing.T) {
	state := newTestState(t)
	uc := NewScheduleAppointment(state, audit.NewDispatcher(zap.NewNop()))

	ap, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		CourseID:   "7-A",
		Type:       models.AppointmentCourseVisit,
		Date:       "2024-03-10",
		Time:       "09:00",
		Notes:      "llevar folletos",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ap.ID == "" {
		t.Error("appointment must get an id")
	}
	if ap.DateTime.Format("2006-01-02 15:04") != "2024-03-10 09:00" {
		t.Errorf("unexpected date-time %v", ap.DateTime)
	}

	state.Lock()
	defer state.Unlock()

	if state.Ledger().Len() != 1 {
		t.Errorf("Expected 1 ledger entry, got %d", state.Ledger().Len())
	}
	entry := state.Status().CourseFor(100, "7-A")
	if entry.Status != schedule.CourseStatusScheduled {
		t.Errorf("Expected scheduled, got %s", entry.Status)
	}
	if entry.Notes != "llevar folletos" {
		t.Errorf("Expected notes projected, got %q", entry.Notes)
	}

	// dentro da janela de duas horas → conflito; fora → livre
	if got := schedule.CheckConflict(state.Ledger(), mustTime(t, state, "2024-03-10 10:00")); got == nil || got.ID != ap.ID {
		t.Error("10:00 must conflict with the 09:00 visit")
	}
	if got := schedule.CheckConflict(state.Ledger(), mustTime(t, state, "2024-03-10 12:00")); got != nil {
		t.Error("12:00 is outside the window")
	}
}

func TestScheduleConflictAndForce(t *testing.T) {
	state := newTestState(t)
	uc := NewScheduleAppointment(state, audit.NewDispatcher(zap.NewNop()))

	if _, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		Type:       models.AppointmentSchoolVisit,
		Date:       "2024-03-10",
		Time:       "09:00",
	}); err != nil {
		t.Fatalf("first visit: %v", err)
	}

	_, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 10645,
		Type:       models.AppointmentSchoolVisit,
		Date:       "2024-03-10",
		Time:       "10:00",
	})
	var conflict *schedule.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected a conflict error, got %v", err)
	}
	if conflict.Existing.SchoolCode != 100 {
		t.Errorf("conflict must report the existing appointment, got %+v", conflict.Existing)
	}

	// Force repete a mesma chamada ignorando a janela
	if _, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 10645,
		Type:       models.AppointmentSchoolVisit,
		Date:       "2024-03-10",
		Time:       "10:00",
		Force:      true,
	}); err != nil {
		t.Fatalf("forced visit: %v", err)
	}

	state.Lock()
	defer state.Unlock()
	if state.Ledger().Len() != 2 {
		t.Errorf("Expected 2 ledger entries, got %d", state.Ledger().Len())
	}
}

func TestScheduleProposedCallStillChecked(t *testing.T) {
	state := newTestState(t)
	uc := NewScheduleAppointment(state, audit.NewDispatcher(zap.NewNop()))

	if _, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		Type:       models.AppointmentSchoolVisit,
		Date:       "2024-03-10",
		Time:       "09:00",
	}); err != nil {
		t.Fatalf("visit: %v", err)
	}

	// só ligações existentes saem da varredura; uma ligação proposta
	// dentro da janela ainda colide com a visita
	_, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		Type:       models.AppointmentSchoolCall,
		Date:       "2024-03-10",
		Time:       "10:00",
	})
	var conflict *schedule.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected a conflict for the proposed call, got %v", err)
	}

	// a três horas passa e marca a escola como contatada
	if _, err := uc.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		Type:       models.AppointmentSchoolCall,
		Date:       "2024-03-10",
		Time:       "12:00",
	}); err != nil {
		t.Fatalf("call: %v", err)
	}

	state.Lock()
	defer state.Unlock()
	if state.Status().ContactFor(100) != schedule.ContactStatusContacted {
		t.Error("call must mark the school contacted")
	}
}

func TestScheduleValidation(t *testing.T) {
	state := newTestState(t)
	uc := NewScheduleAppointment(state, audit.NewDispatcher(zap.NewNop()))

	tests := []struct {
		name string
		in   ScheduleAppointmentInput
		code string
	}{
		{
			"invalid type",
			ScheduleAppointmentInput{SchoolCode: 100, Type: "meeting", Date: "2024-03-10", Time: "09:00"},
			"invalid_type",
		},
		{
			"course visit without course",
			ScheduleAppointmentInput{SchoolCode: 100, Type: models.AppointmentCourseVisit, Date: "2024-03-10", Time: "09:00"},
			"course_required",
		},
		{
			"school visit with course",
			ScheduleAppointmentInput{SchoolCode: 100, CourseID: "7-A", Type: models.AppointmentSchoolVisit, Date: "2024-03-10", Time: "09:00"},
			"unexpected_course",
		},
		{
			"bad date",
			ScheduleAppointmentInput{SchoolCode: 100, Type: models.AppointmentSchoolVisit, Date: "2024-13-10", Time: "09:00"},
			"invalid_date_or_time",
		},
		{
			"bad time",
			ScheduleAppointmentInput{SchoolCode: 100, Type: models.AppointmentSchoolVisit, Date: "2024-03-10", Time: "25:00"},
			"invalid_date_or_time",
		},
		{
			"unknown school",
			ScheduleAppointmentInput{SchoolCode: 999, Type: models.AppointmentSchoolVisit, Date: "2024-03-10", Time: "09:00"},
			"school_not_found",
		},
		{
			"unknown course",
			ScheduleAppointmentInput{SchoolCode: 100, CourseID: "4-Z", Type: models.AppointmentCourseVisit, Date: "2024-03-10", Time: "09:00"},
			"course_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			if got := businessCode(t, err); got != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, got)
			}
		})
	}

	state.Lock()
	defer state.Unlock()
	if state.Ledger().Len() != 0 {
		t.Error("rejected inputs must not touch the ledger")
	}
}

func TestRejectCourseRevokesAppointment(t *testing.T) {
	state := newTestState(t)
	dispatcher := audit.NewDispatcher(zap.NewNop())
	create := NewScheduleAppointment(state, dispatcher)
	reject := NewUpdateCourseStatus(state, dispatcher)

	ap, err := create.Execute(context.Background(), ScheduleAppointmentInput{
		SchoolCode: 100,
		CourseID:   "7-A",
		Type:       models.AppointmentCourseVisit,
		Date:       "2024-03-10",
		Time:       "09:00",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if err := reject.Execute(context.Background(), UpdateCourseStatusInput{
		SchoolCode: 100,
		CourseID:   "7-A",
		Status:     schedule.CourseStatusRejected,
		Notes:      "no disponible",
	}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	state.Lock()
	defer state.Unlock()

	if state.Ledger().Len() != 0 {
		t.Error("rejection must revoke the course-visit ledger entry")
	}
	for _, existing := range state.Ledger().All() {
		if existing.ID == ap.ID {
			t.Error("revoked appointment still present")
		}
	}
	entry := state.Status().CourseFor(100, "7-A")
	if entry.Status != schedule.CourseStatusRejected || entry.Notes != "no disponible" {
		t.Errorf("Expected rejected with notes, got %+v", entry)
	}

	// janela livre depois da revogação
	if got := schedule.CheckConflict(state.Ledger(), mustTime(t, state, "2024-03-10 10:00")); got != nil {
		t.Error("window must be free after the rejection")
	}
}

func TestUpdateCourseStatusInvalid(t *testing.T) {
	state := newTestState(t)
	uc := NewUpdateCourseStatus(state, audit.NewDispatcher(zap.NewNop()))

	err := uc.Execute(context.Background(), UpdateCourseStatusInput{
		SchoolCode: 100,
		CourseID:   "7-A",
		Status:     "maybe",
	})
	if got := businessCode(t, err); got != "invalid_status" {
		t.Errorf("Expected invalid_status, got %s", got)
	}
}

func mustTime(t *testing.T, state *session.State, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, state.Location())
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}
