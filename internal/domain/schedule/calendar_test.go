package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

func TestGroupByDateExcludesCalls(t *testing.T) {
	appointments := []models.Appointment{
		{SchoolCode: 100, Type: models.AppointmentSchoolCall, DateTime: mustTime(t, "2024-03-10 09:00")},
		{SchoolCode: 100, Type: models.AppointmentSchoolCall, DateTime: mustTime(t, "2024-03-10 15:00")},
		{SchoolCode: 200, Type: models.AppointmentSchoolVisit, DateTime: mustTime(t, "2024-03-11 09:00")},
	}

	byDate := GroupByDate(appointments, time.UTC)

	// um dia só com ligações não aparece na agregação
	if _, ok := byDate["2024-03-10"]; ok {
		t.Error("a date holding only calls must produce no group")
	}
	if got := len(byDate["2024-03-11"]); got != 1 {
		t.Errorf("Expected 1 appointment on 2024-03-11, got %d", got)
	}
}

func TestBuildMonthGridPadding(t *testing.T) {
	// março de 2024: dia 1 é sexta (5 pads à esquerda),
	// dia 31 é domingo (6 pads à direita)
	now := mustTime(t, "2024-03-15 12:00")

	byDate := map[string][]models.Appointment{
		"2024-03-10": {{SchoolCode: 100, Type: models.AppointmentSchoolVisit}},
	}

	cells := BuildMonthGrid(2024, time.March, byDate, now, time.UTC)

	if len(cells) != 42 {
		t.Fatalf("Expected 42 cells (5 + 31 + 6), got %d", len(cells))
	}

	for i := 0; i < 5; i++ {
		if !cells[i].Padding {
			t.Errorf("cell %d should be leading padding", i)
		}
	}
	for i := 36; i < 42; i++ {
		if !cells[i].Padding {
			t.Errorf("cell %d should be trailing padding", i)
		}
	}

	first := cells[5]
	if first.Padding || first.Day != 1 {
		t.Errorf("cell 5 should be day 1, got %+v", first)
	}

	day10 := cells[5+9]
	if day10.Day != 10 || !day10.HasAppointments {
		t.Errorf("day 10 should carry the appointment indicator, got %+v", day10)
	}

	day15 := cells[5+14]
	if !day15.IsToday {
		t.Errorf("day 15 should be marked as today, got %+v", day15)
	}
	if day15.HasAppointments {
		t.Error("day 15 has no appointments")
	}

	day11 := cells[5+10]
	if day11.HasAppointments {
		t.Error("day 11 has no appointments")
	}
}

func TestBuildMonthGridNoLeadingPadding(t *testing.T) {
	// setembro de 2024 começa num domingo: zero pads à esquerda
	cells := BuildMonthGrid(2024, time.September, nil, mustTime(t, "2024-09-01 00:00"), time.UTC)

	if cells[0].Padding {
		t.Error("month starting on Sunday needs no leading padding")
	}
	// dia 30 é segunda → 5 pads à direita, total 35
	if len(cells) != 35 {
		t.Errorf("Expected 35 cells, got %d", len(cells))
	}
}

func TestDayAppointmentsSortedAndCallFree(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "late", SchoolCode: 100, Type: models.AppointmentSchoolVisit, DateTime: mustTime(t, "2024-03-10 16:00")},
		{ID: "call", SchoolCode: 100, Type: models.AppointmentSchoolCall, DateTime: mustTime(t, "2024-03-10 10:00")},
		{ID: "early", SchoolCode: 200, CourseID: "7-A", Type: models.AppointmentCourseVisit, DateTime: mustTime(t, "2024-03-10 09:00")},
		{ID: "other-day", SchoolCode: 300, Type: models.AppointmentSchoolVisit, DateTime: mustTime(t, "2024-03-11 09:00")},
	}

	got := DayAppointments(appointments, mustTime(t, "2024-03-10 00:00"), time.UTC)

	if len(got) != 2 {
		t.Fatalf("Expected 2 appointments, got %d", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Errorf("Expected ascending order [early late], got [%s %s]", got[0].ID, got[1].ID)
	}
}
