package schedule

import "github.com/BruksfildServices01/school-scheduler/internal/models"

// ===============================
// Projeções (reações explícitas a mutações do ledger)
// ===============================

// ApplyAppointment projeta um agendamento recém-inserido nos mapas de
// status. Idempotente: repetir a mesma projeção não muda nada.
// Uma visita de curso sobrescreve inclusive um status "rejected"
// anterior; agendar de novo reabre o curso.
func ApplyAppointment(status *StatusStore, ap models.Appointment) {
	switch ap.Type {
	case models.AppointmentCourseVisit:
		status.Course[CourseKey(ap.SchoolCode, ap.CourseID)] = CourseStatusEntry{
			Status: CourseStatusScheduled,
			Notes:  ap.Notes,
		}
	case models.AppointmentSchoolCall, models.AppointmentSchoolVisit:
		status.Contact[ap.SchoolCode] = ContactStatusContacted
	}
}

// UpdateCourseStatus sobrescreve o status do curso incondicionalmente.
// Rebaixar para fora de "scheduled" revoga qualquer agendamento do par
// (school, course); marcar "scheduled" não cria nem remove nada — a
// criação passa sempre pelo fluxo de agendamento. Identificadores
// desconhecidos apenas criam uma entrada nova, sem erro.
// Retorna quantos registros do ledger foram removidos.
func UpdateCourseStatus(
	status *StatusStore,
	ledger *Ledger,
	schoolCode int,
	courseID string,
	next CourseVisitStatus,
	notes string,
) int {
	status.Course[CourseKey(schoolCode, courseID)] = CourseStatusEntry{
		Status: next,
		Notes:  notes,
	}

	if next == CourseStatusScheduled {
		return 0
	}

	return ledger.RemoveWhere(schoolCode, courseID)
}

// UpdateManagementStatus é um toggle direto, sem efeitos em cascata.
func UpdateManagementStatus(status *StatusStore, schoolCode int, next ManagementStatus) {
	status.Management[schoolCode] = next
}

// Reconcile realinha os mapas de status com o ledger depois de uma
// carga de snapshot:
//   - marcas "scheduled"/"contacted" ausentes são rederivadas dos
//     registros existentes;
//   - uma entrada "scheduled" sem registro correspondente no ledger é
//     rebaixada para "not_scheduled" (as notas ficam).
//
// Toggles explícitos (management, rejected) são confiados como estão.
func Reconcile(status *StatusStore, ledger *Ledger) {
	backed := make(map[string]bool)
	for _, ap := range ledger.entries {
		if ap.Type == models.AppointmentCourseVisit {
			backed[CourseKey(ap.SchoolCode, ap.CourseID)] = true
		}
		ApplyAppointment(status, ap)
	}

	for key, entry := range status.Course {
		if entry.Status == CourseStatusScheduled && !backed[key] {
			entry.Status = CourseStatusNotScheduled
			status.Course[key] = entry
		}
	}
}
