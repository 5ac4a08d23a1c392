package handlers

import (
	"errors"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/dto"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/school-scheduler/internal/models"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
	ucScheduling "github.com/BruksfildServices01/school-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	state      *session.State
	scheduleUC *ucScheduling.ScheduleAppointment
	statusUC   *ucScheduling.UpdateCourseStatus
}

func NewAppointmentHandler(
	state *session.State,
	scheduleUC *ucScheduling.ScheduleAppointment,
	statusUC *ucScheduling.UpdateCourseStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		state:      state,
		scheduleUC: scheduleUC,
		statusUC:   statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	SchoolCode int    `json:"school_code" binding:"required"`
	CourseID   string `json:"course_id"`
	Type       string `json:"type" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
	Force      bool   `json:"force"`
}

type UpdateCourseStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE (com force-confirm em conflito)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.scheduleUC.Execute(c.Request.Context(), ucScheduling.ScheduleAppointmentInput{
		SchoolCode: req.SchoolCode,
		CourseID:   req.CourseID,
		Type:       models.AppointmentType(req.Type),
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
		Force:      req.Force,
	})
	if err != nil {
		var conflict *schedule.ConflictError
		if errors.As(err, &conflict) {
			httperr.Conflict(c, "time_conflict",
				"An appointment already exists within 2 hours of the selected time.",
				conflict.Existing,
			)
			return
		}

		for _, code := range []string{
			"invalid_type", "course_required", "unexpected_course",
			"invalid_date_or_time", "course_not_found",
		} {
			if httperr.IsBusiness(err, code) {
				httperr.BadRequest(c, code, "Invalid scheduling request.")
				return
			}
		}
		if httperr.IsBusiness(err, "school_not_found") {
			httperr.NotFound(c, "school_not_found", "School not found.")
			return
		}

		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST POR ESCOLA (ordenado por data/hora para exibição)
// ======================================================

func (h *AppointmentHandler) ListBySchool(c *gin.Context) {
	code, ok := schoolCodeParam(c)
	if !ok {
		return
	}

	h.state.Lock()
	defer h.state.Unlock()

	school, found := h.state.SchoolByCodeLocked(code)
	if !found {
		httperr.NotFound(c, "school_not_found", "School not found.")
		return
	}

	appointments := h.state.Ledger().ListForSchool(code)
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].DateTime.Before(appointments[j].DateTime)
	})

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			SchoolCode: ap.SchoolCode,
			SchoolName: school.Name,
			CourseID:   ap.CourseID,
			Type:       string(ap.Type),
			DateTime:   ap.DateTime,
			Notes:      ap.Notes,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// COURSE STATUS (rebaixar revoga agendamentos)
// ======================================================

func (h *AppointmentHandler) UpdateCourseStatus(c *gin.Context) {
	code, ok := schoolCodeParam(c)
	if !ok {
		return
	}
	courseID := c.Param("courseId")

	var req UpdateCourseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	err := h.statusUC.Execute(c.Request.Context(), ucScheduling.UpdateCourseStatusInput{
		SchoolCode: code,
		CourseID:   courseID,
		Status:     schedule.CourseVisitStatus(req.Status),
		Notes:      req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Unknown course status.")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update course status.")
		return
	}

	httpresp.OK(c, gin.H{"status": req.Status})
}
