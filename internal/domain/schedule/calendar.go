package schedule

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

const dateKeyLayout = "2006-01-02"

// DateKey produz a chave YYYY-MM-DD no fuso fixo da sessão.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateKeyLayout)
}

// GroupByDate agrupa os agendamentos por dia. Ligações ficam de fora:
// não ocupam um horário físico que valha marcar no calendário.
func GroupByDate(appointments []models.Appointment, loc *time.Location) map[string][]models.Appointment {
	byDate := make(map[string][]models.Appointment)
	for _, ap := range appointments {
		if ap.Type.IsCall() {
			continue
		}
		key := DateKey(ap.DateTime, loc)
		byDate[key] = append(byDate[key], ap)
	}
	return byDate
}

// DayCell é uma célula da grade mensal de 7 colunas começando no
// domingo. Células de padding não carregam dia.
type DayCell struct {
	Day             int    `json:"day,omitempty"`
	Date            string `json:"date,omitempty"`
	Padding         bool   `json:"padding,omitempty"`
	IsToday         bool   `json:"is_today,omitempty"`
	HasAppointments bool   `json:"has_appointments,omitempty"`
}

// BuildMonthGrid monta a grade do mês: padding à esquerda até o dia da
// semana do dia 1, os dias do mês, e padding à direita contando
// 6 - weekday do último dia para fechar a última semana.
func BuildMonthGrid(
	year int,
	month time.Month,
	byDate map[string][]models.Appointment,
	now time.Time,
	loc *time.Location,
) []DayCell {

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	todayKey := now.In(loc).Format(dateKeyLayout)

	cells := make([]DayCell, 0, 42)

	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Padding: true})
	}

	for day := 1; day <= last.Day(); day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, loc).Format(dateKeyLayout)
		_, has := byDate[key]
		cells = append(cells, DayCell{
			Day:             day,
			Date:            key,
			IsToday:         key == todayKey,
			HasAppointments: has,
		})
	}

	for i := 0; i < 6-int(last.Weekday()); i++ {
		cells = append(cells, DayCell{Padding: true})
	}

	return cells
}

// DayAppointments devolve os agendamentos não-ligação de um dia,
// ordenados por horário, para o drill-down.
func DayAppointments(appointments []models.Appointment, date time.Time, loc *time.Location) []models.Appointment {
	key := DateKey(date, loc)

	var out []models.Appointment
	for _, ap := range appointments {
		if ap.Type.IsCall() {
			continue
		}
		if DateKey(ap.DateTime, loc) == key {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out
}
