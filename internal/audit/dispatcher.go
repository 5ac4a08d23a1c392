package audit

import "go.uber.org/zap"

type Event struct {
	Action     string
	SchoolCode int
	Entity     string
	EntityID   string
	Metadata   map[string]any
}

// Dispatcher registra eventos de atividade fora do caminho da request.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		fields := []zap.Field{
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
		}
		if ev.SchoolCode != 0 {
			fields = append(fields, zap.Int("school_code", ev.SchoolCode))
		}
		if ev.EntityID != "" {
			fields = append(fields, zap.String("entity_id", ev.EntityID))
		}
		if ev.Metadata != nil {
			fields = append(fields, zap.Any("metadata", ev.Metadata))
		}
		d.log.Info("audit", fields...)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar a API)
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
