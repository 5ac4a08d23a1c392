package schedule

import (
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

// Ledger é a lista autoritativa de agendamentos. Append-only com
// remoção pontual por (school, course); sem update-in-place.
type Ledger struct {
	entries []models.Appointment
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add atribui um id novo e insere o registro. Nenhuma projeção de
// status acontece aqui; é um passo explícito do chamador.
func (l *Ledger) Add(ap models.Appointment) models.Appointment {
	ap.ID = uuid.NewString()
	l.entries = append(l.entries, ap)
	return ap
}

// RemoveWhere apaga todo agendamento que casa exatamente com o par
// (schoolCode, courseID). Retorna quantos foram removidos.
func (l *Ledger) RemoveWhere(schoolCode int, courseID string) int {
	kept := l.entries[:0]
	removed := 0
	for _, ap := range l.entries {
		if ap.SchoolCode == schoolCode && ap.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, ap)
	}
	l.entries = kept
	return removed
}

func (l *Ledger) ListForSchool(schoolCode int) []models.Appointment {
	var out []models.Appointment
	for _, ap := range l.entries {
		if ap.SchoolCode == schoolCode {
			out = append(out, ap)
		}
	}
	return out
}

// All retorna uma cópia da visão global, ordenada por data/hora
// (ordem de inserção não tem significado).
func (l *Ledger) All() []models.Appointment {
	out := make([]models.Appointment, len(l.entries))
	copy(out, l.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Replace troca o conteúdo inteiro; usado na reidratação do snapshot.
func (l *Ledger) Replace(entries []models.Appointment) {
	l.entries = make([]models.Appointment, len(entries))
	copy(l.entries, entries)
}
