package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

// ErrCorrupt indica um blob persistido que não desserializa; o chamador
// deve descartá-lo e recarregar da extração.
var ErrCorrupt = errors.New("snapshot: corrupt state blob")

// State é o blob único de sessão persistido sob uma chave fixa.
// time.Time serializa como ISO-8601 e reidrata sem perda de minuto.
type State struct {
	Schools            []models.School                        `json:"schools"`
	Appointments       []models.Appointment                   `json:"appointments"`
	SchoolStatus       map[int]schedule.ContactStatus         `json:"school_status"`
	ManagementStatus   map[int]schedule.ManagementStatus      `json:"management_status"`
	CourseStatus       map[string]schedule.CourseStatusEntry  `json:"course_status"`
	SelectedSchoolCode int                                    `json:"selected_school_code,omitempty"`
	SavedAt            time.Time                              `json:"saved_at"`
}

func (s *State) Encode() ([]byte, error) {
	return json.Marshal(s)
}

func Decode(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if st.SchoolStatus == nil {
		st.SchoolStatus = make(map[int]schedule.ContactStatus)
	}
	if st.ManagementStatus == nil {
		st.ManagementStatus = make(map[int]schedule.ManagementStatus)
	}
	if st.CourseStatus == nil {
		st.CourseStatus = make(map[string]schedule.CourseStatusEntry)
	}
	return &st, nil
}
