package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/school-scheduler/internal/audit"
	"github.com/BruksfildServices01/school-scheduler/internal/config"
	"github.com/BruksfildServices01/school-scheduler/internal/handlers"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/middleware"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
	ucScheduling "github.com/BruksfildServices01/school-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, state *session.State, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(log)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING
	// ======================================================
	scheduleAppointmentUC := ucScheduling.NewScheduleAppointment(
		state,
		auditDispatcher,
	)

	updateCourseStatusUC := ucScheduling.NewUpdateCourseStatus(
		state,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	sessionHandler := handlers.NewSessionHandler(state, auditDispatcher)
	schoolHandler := handlers.NewSchoolHandler(state, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		state,
		scheduleAppointmentUC,
		updateCourseStatusUC,
	)

	calendarHandler := handlers.NewCalendarHandler(state)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// estado da sessão responde mesmo sem dados carregados,
			// para o cliente exibir o erro de carga
			secured.GET("/state", sessionHandler.GetState)

			loaded := secured.Group("/")
			loaded.Use(requireLoaded(state))
			{
				loaded.PUT("/selection", sessionHandler.Select)

				loaded.GET("/schools", schoolHandler.List)
				loaded.GET("/schools/:code", schoolHandler.Get)
				loaded.PATCH("/schools/:code", schoolHandler.Update)
				loaded.POST("/schools/:code/notes", schoolHandler.CreateNote)
				loaded.PATCH("/schools/:code/management", sessionHandler.UpdateManagementStatus)

				// ------------------------------
				// APPOINTMENTS
				// ------------------------------
				loaded.POST("/appointments", appointmentHandler.Create)
				loaded.GET("/schools/:code/appointments", appointmentHandler.ListBySchool)
				loaded.PATCH("/schools/:code/courses/:courseId/status", appointmentHandler.UpdateCourseStatus)

				loaded.GET("/calendar/month", calendarHandler.Month)
				loaded.GET("/calendar/day", calendarHandler.Day)
			}
		}
	}
}

// requireLoaded bloqueia as rotas de dados enquanto a extração inicial
// não populou a sessão (ou falhou).
func requireLoaded(state *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !state.Ready() {
			httperr.Unavailable(c, "data_unavailable", "School data could not be loaded.")
			c.Abort()
			return
		}
		c.Next()
	}
}
