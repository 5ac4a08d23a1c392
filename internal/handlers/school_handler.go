package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/dto"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
	"github.com/BruksfildServices01/school-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type SchoolHandler struct {
	state *session.State
	audit *audit.Dispatcher
}

func NewSchoolHandler(state *session.State, audit *audit.Dispatcher) *SchoolHandler {
	return &SchoolHandler{
		state: state,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateSchoolRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Director  string  `json:"director"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *SchoolHandler) List(c *gin.Context) {
	h.state.Lock()
	defer h.state.Unlock()

	schools := h.state.SchoolsLocked()
	status := h.state.Status()

	out := make([]dto.SchoolListDTO, 0, len(schools))
	for _, school := range schools {
		item := dto.SchoolListDTO{
			Code:             school.Code,
			Name:             school.Name,
			Phone:            school.Phone,
			Email:            school.Email,
			Director:         school.Director,
			ContactStatus:    string(status.ContactFor(school.Code)),
			ManagementStatus: string(status.ManagementFor(school.Code)),
			CourseCount:      len(school.Courses),
		}
		if len(school.Notes) > 0 {
			item.LastNote = school.Notes[0].Content
		}
		out = append(out, item)
	}

	httpresp.List(c, out)
}

// ======================================================
// GET (drill-down com status por curso)
// ======================================================

func (h *SchoolHandler) Get(c *gin.Context) {
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

	status := h.state.Status()

	courseStatus := make(map[string]gin.H, len(school.Courses))
	for _, course := range school.Courses {
		entry := status.CourseFor(school.Code, course.ID)
		courseStatus[course.ID] = gin.H{
			"status": entry.Status,
			"notes":  entry.Notes,
		}
	}

	httpresp.OK(c, gin.H{
		"school":            school,
		"contact_status":    status.ContactFor(school.Code),
		"management_status": status.ManagementFor(school.Code),
		"course_status":     courseStatus,
	})
}

// ======================================================
// UPDATE (substitui os campos de contato)
// ======================================================

func (h *SchoolHandler) Update(c *gin.Context) {
	code, ok := schoolCodeParam(c)
	if !ok {
		return
	}

	var req UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid school data.")
		return
	}

	if req.Email != "" && !validators.IsContactEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Contact e-mail is malformed.")
		return
	}
	if !validators.IsCoordinateValid(req.Latitude, req.Longitude) {
		httperr.BadRequest(c, "invalid_coordinates", "Coordinates out of range.")
		return
	}

	school, err := h.state.UpdateSchool(code, session.SchoolEdit{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Director:  req.Director,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		httperr.NotFound(c, "school_not_found", "School not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:     "school_updated",
		SchoolCode: code,
		Entity:     "school",
	})

	httpresp.OK(c, school)
}

// ======================================================
// NOTES (append-only, mais recente primeiro)
// ======================================================

func (h *SchoolHandler) CreateNote(c *gin.Context) {
	code, ok := schoolCodeParam(c)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Note content is required.")
		return
	}

	note, err := h.state.AddNote(code, req.Content)
	if err != nil {
		httperr.NotFound(c, "school_not_found", "School not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:     "note_added",
		SchoolCode: code,
		Entity:     "note",
		EntityID:   note.ID,
	})

	httpresp.Created(c, note)
}

// ======================================================
// HELPERS
// ======================================================

func schoolCodeParam(c *gin.Context) (int, bool) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		httperr.BadRequest(c, "invalid_school_code", "School code must be numeric.")
		return 0, false
	}
	return code, true
}
