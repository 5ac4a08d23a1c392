package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
)

type SessionHandler struct {
	state *session.State
	audit *audit.Dispatcher
}

func NewSessionHandler(state *session.State, audit *audit.Dispatcher) *SessionHandler {
	return &SessionHandler{
		state: state,
		audit: audit,
	}
}

type SelectSchoolRequest struct {
	SchoolCode int `json:"school_code"`
}

type UpdateManagementStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetState expõe prontidão e o aviso recuperável da carga, além da
// seleção persistida; funciona mesmo com a sessão indisponível.
func (h *SessionHandler) GetState(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"ready":                h.state.Ready(),
		"notice":               h.state.Notice(),
		"selected_school_code": h.state.SelectedSchool(),
	})
}

// Select persiste o colégio selecionado (0 limpa a seleção).
func (h *SessionHandler) Select(c *gin.Context) {
	var req SelectSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid selection.")
		return
	}

	if err := h.state.Select(req.SchoolCode); err != nil {
		httperr.NotFound(c, "school_not_found", "School not found.")
		return
	}

	httpresp.OK(c, gin.H{"selected_school_code": req.SchoolCode})
}

// UpdateManagementStatus é um toggle direto, sem cascata.
func (h *SessionHandler) UpdateManagementStatus(c *gin.Context) {
	code, ok := schoolCodeParam(c)
	if !ok {
		return
	}

	var req UpdateManagementStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	status := schedule.ManagementStatus(req.Status)
	if !status.Valid() {
		httperr.BadRequest(c, "invalid_status", "Unknown management status.")
		return
	}

	h.state.UpdateManagementStatus(code, status)

	h.audit.Dispatch(audit.Event{
		Action:     "management_status_updated",
		SchoolCode: code,
		Entity:     "school",
		Metadata:   map[string]any{"status": req.Status},
	})

	httpresp.OK(c, gin.H{"status": req.Status})
}
