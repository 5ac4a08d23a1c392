package schedule

import "fmt"

// ===============================
// Status maps (derived state)
// ===============================

type ContactStatus string

const (
	ContactStatusContacted    ContactStatus = "contacted"
	ContactStatusNotContacted ContactStatus = "not_contacted"
)

type ManagementStatus string

const (
	ManagementStatusPending   ManagementStatus = "pending"
	ManagementStatusCompleted ManagementStatus = "completed"
)

func (s ManagementStatus) Valid() bool {
	return s == ManagementStatusPending || s == ManagementStatusCompleted
}

type CourseVisitStatus string

const (
	CourseStatusScheduled    CourseVisitStatus = "scheduled"
	CourseStatusNotScheduled CourseVisitStatus = "not_scheduled"
	CourseStatusRejected     CourseVisitStatus = "rejected"
)

func (s CourseVisitStatus) Valid() bool {
	switch s {
	case CourseStatusScheduled, CourseStatusNotScheduled, CourseStatusRejected:
		return true
	}
	return false
}

type CourseStatusEntry struct {
	Status CourseVisitStatus `json:"status"`
	Notes  string            `json:"notes,omitempty"`
}

// StatusStore guarda os três mapas de status. São caches derivados do
// ledger + toggles explícitos, nunca fonte de verdade.
type StatusStore struct {
	Contact    map[int]ContactStatus        `json:"school_status"`
	Management map[int]ManagementStatus     `json:"management_status"`
	Course     map[string]CourseStatusEntry `json:"course_status"`
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		Contact:    make(map[int]ContactStatus),
		Management: make(map[int]ManagementStatus),
		Course:     make(map[string]CourseStatusEntry),
	}
}

// CourseKey mantém o formato "<code>-<courseId>" para que o snapshot
// persista os mesmos identificadores que o restante do sistema usa.
func CourseKey(schoolCode int, courseID string) string {
	return fmt.Sprintf("%d-%s", schoolCode, courseID)
}

func (s *StatusStore) ContactFor(schoolCode int) ContactStatus {
	if st, ok := s.Contact[schoolCode]; ok {
		return st
	}
	return ContactStatusNotContacted
}

func (s *StatusStore) ManagementFor(schoolCode int) ManagementStatus {
	if st, ok := s.Management[schoolCode]; ok {
		return st
	}
	return ManagementStatusPending
}

func (s *StatusStore) CourseFor(schoolCode int, courseID string) CourseStatusEntry {
	if entry, ok := s.Course[CourseKey(schoolCode, courseID)]; ok {
		return entry
	}
	return CourseStatusEntry{Status: CourseStatusNotScheduled}
}
