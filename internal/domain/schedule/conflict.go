package schedule

import (
	"time"

	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

// ConflictWindow é a banda simétrica em torno do horário proposto
// dentro da qual duas presenças físicas colidem.
const ConflictWindow = 2 * time.Hour

// ConflictError carrega o agendamento existente que colide, para o
// chamador exibir e exigir confirmação explícita antes de forçar.
type ConflictError struct {
	Existing models.Appointment
}

func (e *ConflictError) Error() string {
	return "time_conflict"
}

// CheckConflict varre o ledger inteiro (todas as escolas: o agente não
// consegue estar em dois lugares dentro de 2h) procurando um
// agendamento não-ligação com |existente - proposto| < 2h, estrito.
// Ligações existentes não ocupam horário físico e ficam fora da
// varredura; o tipo proposto não recebe tratamento especial.
// Retorna o primeiro que casar, sem garantia de ordem.
func CheckConflict(l *Ledger, proposed time.Time) *models.Appointment {
	for _, ap := range l.entries {
		if ap.Type.IsCall() {
			continue
		}
		diff := ap.DateTime.Sub(proposed)
		if diff < 0 {
			diff = -diff
		}
		if diff < ConflictWindow {
			found := ap
			return &found
		}
	}
	return nil
}
