package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/dto"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
)

type CalendarHandler struct {
	state *session.State
}

func NewCalendarHandler(state *session.State) *CalendarHandler {
	return &CalendarHandler{state: state}
}

// ======================================================
// MONTH (grade de 7 colunas começando no domingo)
// ======================================================

func (h *CalendarHandler) Month(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Year out of range.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Month must be 1-12.")
		return
	}

	loc := h.state.Location()

	h.state.Lock()
	byDate := schedule.GroupByDate(h.state.Ledger().All(), loc)
	h.state.Unlock()

	cells := schedule.BuildMonthGrid(year, time.Month(month), byDate, time.Now(), loc)

	httpresp.OK(c, gin.H{
		"year":  year,
		"month": month,
		"cells": cells,
	})
}

// ======================================================
// DAY (drill-down, ordenado por horário)
// ======================================================

func (h *CalendarHandler) Day(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	loc := h.state.Location()

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	h.state.Lock()
	appointments := schedule.DayAppointments(h.state.Ledger().All(), date, loc)

	names := make(map[int]string)
	for _, school := range h.state.SchoolsLocked() {
		names[school.Code] = school.Name
	}
	h.state.Unlock()

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			SchoolCode: ap.SchoolCode,
			SchoolName: names[ap.SchoolCode],
			CourseID:   ap.CourseID,
			Type:       string(ap.Type),
			DateTime:   ap.DateTime,
			Notes:      ap.Notes,
		})
	}

	httpresp.List(c, out)
}
