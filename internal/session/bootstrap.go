package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/school-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/school-scheduler/internal/extraction"
	"github.com/BruksfildServices01/school-scheduler/internal/snapshot"
)

// Colégio 10645 foi fechado antes da ferramenta existir; entra com a
// gestão já terminada na carga inicial.
const seededCompletedSchool = 10645

// Bootstrap carrega a sessão: snapshot salvo primeiro; blob corrompido
// é descartado (aviso recuperável) e cai para a extração; se a extração
// falhar, o estado fica vazio e indisponível.
func (s *State) Bootstrap(ctx context.Context, source extraction.Source) {
	if s.store != nil {
		saved, err := s.store.Load(ctx)
		switch {
		case err == nil:
			s.restore(saved)
			return
		case errors.Is(err, snapshot.ErrNotFound):
			// primeira execução, segue para a extração
		case errors.Is(err, snapshot.ErrCorrupt):
			s.log.Warn("discarding corrupt session snapshot", zap.Error(err))
			if err := s.store.Clear(ctx); err != nil {
				s.log.Error("failed to clear corrupt snapshot", zap.Error(err))
			}
			s.mu.Lock()
			s.notice = "Saved state was corrupted and has been reset from the extraction source."
			s.mu.Unlock()
		default:
			s.log.Error("snapshot store unavailable, falling back to extraction", zap.Error(err))
		}
	}

	s.loadFromExtraction(ctx, source)
}

func (s *State) loadFromExtraction(ctx context.Context, source extraction.Source) {
	if source == nil {
		s.log.Error("extraction source not configured, session stays empty")
		return
	}

	rows, err := source.Fetch(ctx)
	if err != nil {
		s.log.Error("extraction failed, session stays empty", zap.Error(err))
		return
	}

	schools := extraction.Group(rows)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.schools = schools
	s.ledger = schedule.NewLedger()
	s.status = schedule.NewStatusStore()
	s.selected = 0

	for _, school := range schools {
		if school.Code == seededCompletedSchool {
			s.status.Management[school.Code] = schedule.ManagementStatusCompleted
		} else {
			s.status.Management[school.Code] = schedule.ManagementStatusPending
		}
	}

	s.ready = true
	s.Persist()
	s.log.Info("session loaded from extraction", zap.Int("schools", len(schools)))
}

// restore reidrata a sessão a partir do blob e realinha os mapas de
// status com o ledger (os mapas são cache, não fonte de verdade).
func (s *State) restore(saved *snapshot.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schools = saved.Schools
	s.ledger = schedule.NewLedger()
	s.ledger.Replace(saved.Appointments)

	s.status = &schedule.StatusStore{
		Contact:    saved.SchoolStatus,
		Management: saved.ManagementStatus,
		Course:     saved.CourseStatus,
	}
	schedule.Reconcile(s.status, s.ledger)

	s.selected = 0
	if _, ok := s.schoolByCode(saved.SelectedSchoolCode); ok {
		s.selected = saved.SelectedSchoolCode
	}

	s.ready = true
	s.log.Info("session restored from snapshot",
		zap.Int("schools", len(s.schools)),
		zap.Int("appointments", s.ledger.Len()),
	)
}
