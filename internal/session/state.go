package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/httperr"
	"github.com/BruksfildServices01/school-scheduler/internal/models"
	"github.com/BruksfildServices01/school-scheduler/internal/snapshot"
)

const persistTimeout = 5 * time.Second

// State é o contexto de aplicação da sessão única: escolas, ledger,
// mapas de status e seleção, tudo atrás de um mutex porque o servidor
// HTTP é concorrente mesmo que a sessão lógica seja de um ator só.
type State struct {
	mu    sync.Mutex
	log   *zap.Logger
	store snapshot.Store
	loc   *time.Location

	schools  []models.School
	ledger   *schedule.Ledger
	status   *schedule.StatusStore
	selected int

	ready  bool
	notice string
}

func NewState(log *zap.Logger, store snapshot.Store, loc *time.Location) *State {
	return &State{
		log:    log,
		store:  store,
		loc:    loc,
		ledger: schedule.NewLedger(),
		status: schedule.NewStatusStore(),
	}
}

// Lock/Unlock são expostos para fluxos de múltiplos passos (conflito →
// insert → projeção) rodarem sob uma seção crítica só.
func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

func (s *State) Location() *time.Location { return s.loc }

// Ledger: chamador precisa estar com o Lock.
func (s *State) Ledger() *schedule.Ledger { return s.ledger }

// Status: chamador precisa estar com o Lock.
func (s *State) Status() *schedule.StatusStore { return s.status }

func (s *State) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Notice devolve o aviso recuperável da carga (blob corrompido), se houver.
func (s *State) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

func (s *State) SelectedSchool() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// ===============================
// Escolas
// ===============================

func (s *State) Schools() []models.School {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SchoolsLocked()
}

// SchoolsLocked: chamador precisa estar com o Lock.
func (s *State) SchoolsLocked() []models.School {
	out := make([]models.School, len(s.schools))
	copy(out, s.schools)
	return out
}

func (s *State) SchoolByCode(code int) (models.School, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schoolByCode(code)
}

// SchoolByCodeLocked: chamador precisa estar com o Lock.
func (s *State) SchoolByCodeLocked(code int) (models.School, bool) {
	return s.schoolByCode(code)
}

func (s *State) schoolByCode(code int) (models.School, bool) {
	for _, school := range s.schools {
		if school.Code == code {
			return school, true
		}
	}
	return models.School{}, false
}

type SchoolEdit struct {
	Name      string
	Phone     string
	Email     string
	Director  string
	Latitude  float64
	Longitude float64
}

// UpdateSchool substitui os campos de contato in-place; cursos e notas
// não são tocados.
func (s *State) UpdateSchool(code int, edit SchoolEdit) (models.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schools {
		if s.schools[i].Code != code {
			continue
		}
		s.schools[i].Name = edit.Name
		s.schools[i].Phone = edit.Phone
		s.schools[i].Email = edit.Email
		s.schools[i].Director = edit.Director
		s.schools[i].Latitude = edit.Latitude
		s.schools[i].Longitude = edit.Longitude

		s.Persist()
		return s.schools[i], nil
	}

	return models.School{}, httperr.ErrBusiness("school_not_found")
}

// AddNote cria a nota e a insere no início da lista da escola.
func (s *State) AddNote(code int, content string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schools {
		if s.schools[i].Code != code {
			continue
		}
		note := models.Note{
			ID:        uuid.NewString(),
			Content:   content,
			Timestamp: time.Now().In(s.loc),
		}
		s.schools[i].Notes = append([]models.Note{note}, s.schools[i].Notes...)

		s.Persist()
		return note, nil
	}

	return models.Note{}, httperr.ErrBusiness("school_not_found")
}

func (s *State) Select(code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code != 0 {
		if _, ok := s.schoolByCode(code); !ok {
			return httperr.ErrBusiness("school_not_found")
		}
	}
	s.selected = code
	s.Persist()
	return nil
}

// UpdateManagementStatus é overwrite direto, sem cascata.
func (s *State) UpdateManagementStatus(code int, next schedule.ManagementStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule.UpdateManagementStatus(s.status, code, next)
	s.Persist()
}

// ===============================
// Persistência (fire-and-forget)
// ===============================

// Persist tira uma foto do estado sob o lock já em posse do chamador e
// salva em background; falha só gera log. Não há garantia transacional
// entre os mapas (aceito pelo escopo da ferramenta).
func (s *State) Persist() {
	if s.store == nil {
		return
	}

	st := s.snapshotLocked()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.store.Save(ctx, st); err != nil {
			s.log.Error("failed to persist session snapshot", zap.Error(err))
		}
	}()
}

func (s *State) snapshotLocked() *snapshot.State {
	schools := make([]models.School, len(s.schools))
	copy(schools, s.schools)
	for i := range schools {
		notes := make([]models.Note, len(schools[i].Notes))
		copy(notes, schools[i].Notes)
		schools[i].Notes = notes
	}

	contact := make(map[int]schedule.ContactStatus, len(s.status.Contact))
	for k, v := range s.status.Contact {
		contact[k] = v
	}
	management := make(map[int]schedule.ManagementStatus, len(s.status.Management))
	for k, v := range s.status.Management {
		management[k] = v
	}
	course := make(map[string]schedule.CourseStatusEntry, len(s.status.Course))
	for k, v := range s.status.Course {
		course[k] = v
	}

	return &snapshot.State{
		Schools:            schools,
		Appointments:       s.ledger.All(),
		SchoolStatus:       contact,
		ManagementStatus:   management,
		CourseStatus:       course,
		SelectedSchoolCode: s.selected,
	}
}
